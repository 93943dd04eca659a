package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/they4kman/gosweep/game"
)

const commandHelp = `commands:
  r X Y           reveal a cell
  f X Y           flag or unflag a cell
  c X Y           reveal the unflagged neighbors of a number
  n [DIFFICULTY]  start a new game
  q               quit
`

// play reads commands from in until it is exhausted or the player quits,
// redrawing the board after every move
func play(in io.Reader, out io.Writer, g *game.GamePlay) error {
	if err := render(out, g); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit":
			return nil
		case "n", "new":
			if err := newRound(g, fields[1:]); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
		case "r", "f", "c":
			x, y, err := parseCoords(fields[1:])
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}

			switch fields[0] {
			case "r":
				g.OnClick(x, y)
			case "f":
				g.OnRightClick(x, y)
			case "c":
				g.ExpandSiblings(x, y)
			}
		default:
			fmt.Fprint(out, commandHelp)
			continue
		}

		if err := render(out, g); err != nil {
			return err
		}
	}

	return errors.Wrap(scanner.Err(), "reading commands")
}

func newRound(g *game.GamePlay, args []string) error {
	if len(args) == 0 {
		if g.Difficulty() == game.Custom {
			return g.ResetCustom(g.Params())
		}
		return g.Reset(g.Difficulty())
	}

	difficulty, err := game.ParseDifficulty(args[0])
	if err != nil {
		return err
	}
	if difficulty == game.Custom {
		return g.ResetCustom(g.Params())
	}
	return g.Reset(difficulty)
}

func parseCoords(args []string) (uint, uint, error) {
	if len(args) != 2 {
		return 0, 0, errors.New("expected two coordinates: X Y")
	}

	x, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid x %q", args[0])
	}
	y, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid y %q", args[1])
	}
	return uint(x), uint(y), nil
}

// autoplay lets director play the game to its end
func autoplay(out io.Writer, g *game.GamePlay, director game.Director, delay time.Duration) error {
	var renderErr error
	steps := game.Autoplay(g, director, func() {
		if delay > 0 && renderErr == nil {
			renderErr = render(out, g)
			time.Sleep(delay)
		}
	})
	if renderErr != nil {
		return renderErr
	}

	if err := render(out, g); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%s after %d moves\n", g.Phase(), steps)
	return errors.Wrap(err, "writing result")
}

func render(out io.Writer, g *game.GamePlay) error {
	var board strings.Builder

	fmt.Fprintf(&board, "%03d  %03ds", g.RemainingMines(), g.ElapsedSeconds())
	switch g.Phase() {
	case game.Won:
		board.WriteString("   WIN!")
	case game.Lost:
		board.WriteString("   LOSE :(")
	}

	board.WriteString("\n    ")
	for x := uint(0); x < g.Width(); x++ {
		board.WriteByte(byte('0' + x%10))
	}

	for y, row := range g.CellStates() {
		fmt.Fprintf(&board, "\n%3d ", y)
		for _, state := range row {
			board.WriteRune(state.Rune())
		}
	}
	board.WriteByte('\n')

	_, err := io.WriteString(out, board.String())
	return errors.Wrap(err, "rendering board")
}
