package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gosweep/director/constraint"
	"github.com/they4kman/gosweep/game"
)

var gameConfig = game.NewGameConfig()
var directorName = ""
var directorDelay = 250 * time.Millisecond
var boardPath = ""
var configPath = ""
var dumpSnapshot = false
var verbose = false

var rootCmd = &cobra.Command{
	Use:   "gosweep",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `gosweep is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually
	gosweep

Use the director flag to make the computer play for you
	gosweep -d constraint
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			game.Log.SetLevel(logrus.DebugLevel)
			constraint.Log.SetLevel(logrus.DebugLevel)
		}

		if configPath != "" {
			if err := applyConfigFile(cmd, configPath); err != nil {
				return err
			}
		}
		resolveCustomBoard(cmd)

		g, err := newGame()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if directorName != "" {
			err = autoplay(out, g, newDirector(directorName), directorDelay)
		} else {
			err = play(cmd.InOrStdin(), out, g)
		}
		if err != nil {
			return err
		}

		if dumpSnapshot {
			return dump(out, g)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolveCustomBoard switches to a custom board when any of its dimensions
// were given, filling the rest in from the chosen difficulty
func resolveCustomBoard(cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("width") && !flags.Changed("height") && !flags.Changed("mines") {
		return
	}

	preset, ok := gameConfig.Difficulty.Params()
	if !ok {
		preset, _ = game.Medium.Params()
	}
	if !flags.Changed("width") {
		gameConfig.Params.Width = preset.Width
	}
	if !flags.Changed("height") {
		gameConfig.Params.Height = preset.Height
	}
	if !flags.Changed("mines") {
		gameConfig.Params.NumMines = preset.NumMines
	}
	gameConfig.Difficulty = game.Custom
}

func newGame() (*game.GamePlay, error) {
	if boardPath == "" {
		return game.NewGamePlay(gameConfig)
	}

	in, err := os.ReadFile(boardPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading board %s", boardPath)
	}
	snapshot, err := game.LoadSnapshot(string(in))
	if err != nil {
		return nil, errors.Wrapf(err, "loading board %s", boardPath)
	}
	return game.NewGamePlayFromSnapshot(gameConfig, snapshot, true)
}

func dump(out io.Writer, g *game.GamePlay) error {
	serialized, err := g.Snapshot().Serialize()
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, serialized)
	return err
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().VarP(newDifficultyValue(game.Medium, &gameConfig.Difficulty), "difficulty", "l", "Preset board: easy (8x8, 10 mines), medium (16x16, 40 mines) or hard (30x16, 99 mines)")
	rootCmd.Flags().UintVarP(&gameConfig.Params.Width, "width", "w", 0, "Width of a custom game board, in cells")
	rootCmd.Flags().UintVarP(&gameConfig.Params.Height, "height", "h", 0, "Height of a custom game board, in cells")
	rootCmd.Flags().UintVarP(&gameConfig.Params.NumMines, "mines", "m", 0, "Number of mines to place in a custom game board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", gameConfig.Seed, "Seed for mine placement")
	rootCmd.Flags().BoolVar(&gameConfig.DevMode, "dev", false, "Show where the mines are")
	rootCmd.Flags().BoolVar(&gameConfig.StrictChord, "strict-chord", false, `Only chord a number once all of its mines are flagged`)
	rootCmd.Flags().VarP(newDirectorValue(&directorName), "director", "d", "Make the computer play: random or constraint")
	rootCmd.Flags().DurationVar(&directorDelay, "delay", directorDelay, "Pause between director moves")
	rootCmd.Flags().StringVar(&boardPath, "board", "", "Play the mine layout of a saved board snapshot")
	rootCmd.Flags().BoolVar(&dumpSnapshot, "dump", false, "Print a snapshot of the board when done")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file of flag defaults")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log game events")
}
