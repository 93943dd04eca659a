package game

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

type NeighborGetter func(*Cell) []*Cell

// Visitor is called once for each cell reached by the flood, and reports
// whether the flood should continue through that cell.
type Visitor func(*Cell) bool

// flood performs a breadth-first traversal from origin. Every cell is
// visited at most once; neighbors of a cell are only queued when its
// visitor returned true.
func flood(origin *Cell, visit Visitor, getNeighbors NeighborGetter) {
	visited := map[uint]struct{}{origin.idx: {}}

	var queue deque.Deque[*Cell]
	queue.PushBack(origin)

	for queue.Len() > 0 {
		cell := queue.PopFront()
		if !visit(cell) {
			continue
		}

		for _, neighbor := range getNeighbors(cell) {
			if _, alreadyVisited := visited[neighbor.idx]; alreadyVisited {
				continue
			}
			visited[neighbor.idx] = struct{}{}
			queue.PushBack(neighbor)
		}
	}
}

// expandZeroBlocks reveals the connected region of zero cells around origin,
// along with the numbered cells bordering it
func (g *GamePlay) expandZeroBlocks(origin *Cell) {
	revealed := 0
	flood(
		origin,
		func(cell *Cell) bool {
			if cell != origin {
				if cell.isRevealed || cell.isMine {
					return false
				}
				g.revealSafe(cell)
				revealed++
			}
			return cell.adjacentMines == 0
		},
		g.board.Neighbors,
	)

	g.log().WithFields(logrus.Fields{
		"origin":   origin.String(),
		"revealed": revealed,
	}).Debug("expanded zero blocks")
}
