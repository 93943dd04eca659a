package game

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrTooManyMines      = errors.New("too many mines for board")
	ErrInvalidSize       = errors.New("board dimensions must be positive")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// ConfigError reports board parameters that cannot produce a playable game.
// It is returned before any board mutation takes place.
type ConfigError struct {
	Params Params
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid board %s: %v", e.Params, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
