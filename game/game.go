package game

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type GameConfig struct {
	Difficulty Difficulty
	// Board to play when Difficulty is Custom
	Params Params

	// Seed of the first game; each reset derives the next seed from the
	// previous game's random source
	Seed int64

	// Source of start and end times. Defaults to the wall clock.
	Clock clock.Clock

	// Show unrevealed mines in CellStates
	DevMode bool
	// Only chord when the flagged neighbors account for the cell's number
	StrictChord bool
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Difficulty: Medium,
		Seed:       time.Now().UnixNano(),
		Clock:      clock.New(),
	}
}

// board resolves the difficulty and dimensions of the first game
func (config GameConfig) board() (Difficulty, Params, error) {
	if config.Difficulty == Custom {
		if err := config.Params.Validate(); err != nil {
			return Custom, config.Params, err
		}
		return difficultyOf(config.Params), config.Params, nil
	}

	params, ok := config.Difficulty.Params()
	if !ok {
		return config.Difficulty, params, &ConfigError{Params: params, Err: ErrUnknownDifficulty}
	}
	return config.Difficulty, params, nil
}
