package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a plain-text picture of a board, one character per cell:
//
//	*  the mine that lost the game
//	F  flagged mine
//	O  mine
//	f  flagged safe cell
//	.  revealed safe cell
//	#  covered safe cell
type BoardSnapshot struct {
	Session         string `yaml:"session,omitempty"`
	Seed            int64  `yaml:"seed"`
	Difficulty      string `yaml:"difficulty,omitempty"`
	Phase           string `yaml:"phase,omitempty"`
	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "marshalling board snapshot")
	}
	return string(out), nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "unmarshalling board snapshot")
	}
	return &snapshot, nil
}

// Snapshot captures the current board, including the hidden mine layout
func (g *GamePlay) Snapshot() *BoardSnapshot {
	var board strings.Builder
	for y, row := range g.board.cells {
		if y > 0 {
			board.WriteByte('\n')
		}
		for x := range row {
			board.WriteString(row[x].serialize())
		}
	}

	return &BoardSnapshot{
		Session:         g.sessionID.String(),
		Seed:            g.seed,
		Difficulty:      g.difficulty.String(),
		Phase:           g.phase.String(),
		SerializedBoard: board.String(),
	}
}

// NewGamePlayFromSnapshot starts a game on the mine layout of snapshot. With
// fresh set, every cell starts out covered and unflagged; otherwise the game
// picks up where the snapshot left off. Mines are never moved, so the first
// click on such a board is not guaranteed to be safe.
func NewGamePlayFromSnapshot(config GameConfig, snapshot *BoardSnapshot, fresh bool) (*GamePlay, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}

	params := Params{
		Width:  uint(len(rows[0])),
		Height: uint(len(rows)),
	}
	if params.Width == 0 {
		return nil, &ConfigError{Params: params, Err: ErrInvalidSize}
	}

	g := newGamePlay(config)
	g.nextSeed = snapshot.Seed
	g.reset(Custom, params)
	g.unrevealedSafe = 0

	var anyRevealed bool
	for y, row := range rows {
		if uint(len(row)) != params.Width {
			return nil, errors.Errorf("snapshot row %d is %d cells wide, expected %d", y, len(row), params.Width)
		}

		for x, c := range row {
			cell := g.board.CellAt(uint(x), uint(y))
			if !cell.deserialize(c, fresh) {
				return nil, errors.Errorf("invalid snapshot cell %q at (%d, %d)", c, x, y)
			}

			if cell.isMine {
				params.NumMines++
			}
			if cell.isFlagged {
				g.flagCount++
			}
			if cell.isRevealed {
				anyRevealed = true
			}
			if !cell.isMine && !cell.isRevealed {
				g.unrevealedSafe++
			}
		}
	}

	g.board.countAdjacent()
	g.params = params
	g.difficulty = difficultyOf(params)
	g.fixedLayout = true

	if !fresh {
		g.phase = parsePhase(snapshot.Phase)
		g.mineGenerated = anyRevealed || g.phase != Playing

		// Only the losing mine is marked in the snapshot; a lost board shows
		// every mine
		if g.phase == Lost {
			for _, cell := range g.board.Cells() {
				if cell.isMine {
					cell.isRevealed = true
				}
			}
		}
	}

	return g, nil
}
