package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/they4kman/gosweep/director/constraint"
	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
)

var (
	_ pflag.Value = (*difficultyValue)(nil)
	_ pflag.Value = (*directorValue)(nil)
)

type difficultyValue game.Difficulty

func newDifficultyValue(val game.Difficulty, p *game.Difficulty) *difficultyValue {
	*p = val
	return (*difficultyValue)(p)
}

func (difficultyVal *difficultyValue) String() string {
	return game.Difficulty(*difficultyVal).String()
}

func (difficultyVal *difficultyValue) Set(value string) error {
	difficulty, err := game.ParseDifficulty(value)
	if err != nil {
		return err
	}
	*difficultyVal = difficultyValue(difficulty)
	return nil
}

func (difficultyVal *difficultyValue) Type() string {
	return "game.Difficulty"
}

var directors = map[string]func() game.Director{
	"random": func() game.Director {
		return &random.Director{}
	},
	"constraint": func() game.Director {
		return &constraint.Director{}
	},
}

func directorNames() string {
	names := make([]string, 0, len(directors))
	for name := range directors {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func newDirector(name string) game.Director {
	return directors[name]()
}

type directorValue string

func newDirectorValue(p *string) *directorValue {
	return (*directorValue)(p)
}

func (directorVal *directorValue) String() string {
	return string(*directorVal)
}

func (directorVal *directorValue) Set(value string) error {
	if _, isValid := directors[value]; !isValid {
		return fmt.Errorf("invalid director %q (expected one of: %s)", value, directorNames())
	}
	*directorVal = directorValue(value)
	return nil
}

func (directorVal *directorValue) Type() string {
	return "director"
}
