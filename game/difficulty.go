package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Custom
)

// Params are the dimensions and mine count of a single game
type Params struct {
	Width, Height uint
	NumMines      uint
}

var presets = map[Difficulty]Params{
	Easy:   {Width: 8, Height: 8, NumMines: 10},
	Medium: {Width: 16, Height: 16, NumMines: 40},
	Hard:   {Width: 30, Height: 16, NumMines: 99},
}

var difficultyNames = map[Difficulty]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
	Custom: "custom",
}

func (difficulty Difficulty) String() string {
	if name, ok := difficultyNames[difficulty]; ok {
		return name
	}
	return fmt.Sprintf("Difficulty(%d)", int(difficulty))
}

// Params returns the preset board for the difficulty. Custom has no preset.
func (difficulty Difficulty) Params() (Params, bool) {
	params, ok := presets[difficulty]
	return params, ok
}

func ParseDifficulty(name string) (Difficulty, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for difficulty, difficultyName := range difficultyNames {
		if difficultyName == name {
			return difficulty, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownDifficulty, "%q", name)
}

// difficultyOf returns the preset matching params, or Custom
func difficultyOf(params Params) Difficulty {
	for difficulty, preset := range presets {
		if preset == params {
			return difficulty
		}
	}
	return Custom
}

func (params Params) NumCells() uint {
	return params.Width * params.Height
}

func (params Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", params.Width, params.Height, params.NumMines)
}

// Validate checks that a first click can always be kept clear of mines,
// wherever it lands.
func (params Params) Validate() error {
	if params.Width < 1 || params.Height < 1 {
		return &ConfigError{Params: params, Err: ErrInvalidSize}
	}
	if params.Height > math.MaxUint/params.Width {
		return &ConfigError{Params: params, Err: ErrInvalidSize}
	}
	if params.NumCells() <= safeZoneSize || params.NumMines >= params.NumCells()-safeZoneSize {
		return &ConfigError{Params: params, Err: ErrTooManyMines}
	}
	return nil
}
