package game

import (
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosweep/util/collections"
)

// generateMines places the game's mines anywhere except origin and its
// neighbors, then computes every cell's adjacent mine count.
func (g *GamePlay) generateMines(origin *Cell) error {
	board := g.board
	numCells := board.NumCells()

	// Seed the chosen positions with the exclusion zone, so rejection
	// sampling never lands a mine on or around the first click
	chosen := collections.NewSet(origin.idx)
	for _, neighbor := range board.Neighbors(origin) {
		chosen.Add(neighbor.idx)
	}

	if g.params.NumMines > numCells-uint(chosen.Len()) {
		return &ConfigError{Params: g.params, Err: ErrTooManyMines}
	}

	target := uint(chosen.Len()) + g.params.NumMines
	draws := 0
	for uint(chosen.Len()) < target {
		draws++
		idx := uint(g.rand.Int63n(int64(numCells)))
		if chosen.Contains(idx) {
			continue
		}

		chosen.Add(idx)
		board.cellAtIndex(idx).isMine = true
	}

	board.countAdjacent()

	g.log().WithFields(logrus.Fields{
		"origin": origin.String(),
		"mines":  g.params.NumMines,
		"draws":  draws,
	}).Debug("generated mines")

	return nil
}
