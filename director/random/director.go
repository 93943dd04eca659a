package random

import (
	"github.com/they4kman/gosweep/game"
)

// Director clicks covered, unflagged cells at random
type Director struct {
	game *game.GamePlay
}

func (director *Director) Init(g *game.GamePlay) {
	director.game = g
}

func (director *Director) Act() bool {
	cell := director.Pick()
	if cell == nil {
		return false
	}

	director.game.Apply(cell.Click())
	return true
}

// Pick chooses a random covered, unflagged cell, or nil if there are none
func (director *Director) Pick() *game.Cell {
	candidates := make([]*game.Cell, 0, director.game.Width()*director.game.Height())
	for _, cell := range director.game.Cells() {
		if !cell.IsRevealed() && !cell.IsFlagged() {
			candidates = append(candidates, cell)
		}
	}

	if len(candidates) == 0 {
		return nil
	}
	return candidates[director.game.Rand().Intn(len(candidates))]
}
