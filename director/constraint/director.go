package constraint

import (
	"fmt"
	"math"
	"strings"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/util/collections"
)

var Log = logrus.New()

// Director plays by deduction from the numbers on the board, and only
// guesses when nothing can be deduced
type Director struct {
	game     *game.GamePlay
	fallback random.Director

	observations []*Observation
	pending      deque.Deque[game.CellAction]
}

// Observation records that exactly numMines of cells are mines, as implied
// by the number on origin
type Observation struct {
	origin   *game.Cell
	numMines int
	cells    collections.Set[*game.Cell]
}

func (observation Observation) String() string {
	cellsRepr := make([]string, 0, len(observation.cells))
	for cell := range observation.cells {
		cellsRepr = append(cellsRepr, fmt.Sprintf("(%d, %d)", cell.X(), cell.Y()))
	}

	var originRepr string
	if observation.origin == nil {
		originRepr = "?"
	} else {
		originRepr = fmt.Sprintf("(%d, %d)", observation.origin.X(), observation.origin.Y())
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, strings.Join(cellsRepr, ", "))
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func (director *Director) Init(g *game.GamePlay) {
	director.game = g
	director.fallback.Init(g)
	director.observations = nil
	director.pending.Clear()
}

func (director *Director) Act() bool {
	if director.actPending() {
		return true
	}

	if !director.game.MinesGenerated() {
		// The first click is always safe, and the middle of the board
		// tends to open up the most room
		director.game.OnClick(director.game.Width()/2, director.game.Height()/2)
		return true
	}

	director.observe()

	actors := []func() bool{
		director.actDeliberate,
		director.actSubsets,
		director.actLowestProbability,
	}
	for _, actor := range actors {
		if actor() && director.actPending() {
			return true
		}
	}

	return director.fallback.Act()
}

// actPending applies the next queued action that still makes sense
func (director *Director) actPending() bool {
	for director.pending.Len() > 0 {
		action := director.pending.PopFront()
		if !isStillUseful(action) {
			continue
		}

		Log.WithFields(logrus.Fields{
			"action": action.Action.String(),
			"cell":   action.Cell.String(),
		}).Debug("director act")

		director.game.Apply(action)
		return true
	}
	return false
}

func isStillUseful(action game.CellAction) bool {
	cell := action.Cell
	switch action.Action {
	case game.MiddleClick:
		return cell.IsRevealed()
	default:
		return !cell.IsRevealed() && !cell.IsFlagged()
	}
}

// observe rebuilds the observations from every revealed number bordering
// covered cells
func (director *Director) observe() {
	director.observations = director.observations[:0]

	for _, cell := range director.game.Cells() {
		if !cell.IsRevealed() || cell.AdjacentMines() == 0 {
			continue
		}

		observation := &Observation{
			origin:   cell,
			numMines: int(cell.AdjacentMines()),
			cells:    collections.NewSet[*game.Cell](),
		}

		for _, neighbor := range director.game.Neighbors(cell) {
			if neighbor.IsRevealed() {
				continue
			}
			if neighbor.IsFlagged() {
				observation.numMines--
			} else {
				observation.cells.Add(neighbor)
			}
		}

		if observation.cells.Len() > 0 {
			director.observations = append(director.observations, observation)
		}
	}
}

// actDeliberate queues flags for observations whose cells must all be
// mines, and chords on numbers whose mines are all flagged
func (director *Director) actDeliberate() bool {
	for _, observation := range director.observations {
		if observation.numMines == observation.cells.Len() {
			for cell := range observation.cells {
				director.pending.PushBack(cell.RightClick())
			}
		} else if observation.numMines == 0 {
			director.pending.PushBack(observation.origin.MiddleClick())
		}
	}

	return director.pending.Len() > 0
}

// actSubsets compares overlapping observations. When one observation's cells
// lie within another's, the cells left over hold the difference in mines.
// Otherwise, if the other's leftover cells must hold more mines than the
// shared cells can, they are all mines.
func (director *Director) actSubsets() bool {
	for _, observation := range director.observations {
		for _, other := range director.observations {
			if observation == other || observation.cells.Equal(other.cells) {
				continue
			}

			shared := observation.cells.Intersection(other.cells)
			if shared.Len() == 0 {
				continue
			}
			leftOnly := other.cells.Difference(observation.cells)

			if observation.cells.IsSubset(other.cells) {
				occludedMines := other.numMines - observation.numMines
				if occludedMines == 0 {
					for cell := range leftOnly {
						director.pending.PushBack(cell.Click())
					}
					return true
				}
				if occludedMines == leftOnly.Len() {
					for cell := range leftOnly {
						director.pending.PushBack(cell.RightClick())
					}
					return true
				}
				continue
			}

			maxSharedMines := observation.numMines
			if shared.Len() < maxSharedMines {
				maxSharedMines = shared.Len()
			}
			if leftOnly.Len() > 0 && other.numMines-maxSharedMines == leftOnly.Len() {
				for cell := range leftOnly {
					director.pending.PushBack(cell.RightClick())
				}
				return true
			}
		}
	}

	return false
}

// actLowestProbability guesses the cell least likely to be a mine, going by
// the most pessimistic observation containing it
func (director *Director) actLowestProbability() bool {
	cellProbabilities := make(map[*game.Cell]float64)
	for _, observation := range director.observations {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			if pastProbability, ok := cellProbabilities[cell]; !ok || probability > pastProbability {
				cellProbabilities[cell] = probability
			}
		}
	}

	if len(cellProbabilities) == 0 {
		return false
	}

	lowestProbability := math.Inf(1)
	for _, probability := range cellProbabilities {
		lowestProbability = math.Min(lowestProbability, probability)
	}

	// Leave even odds or worse to the random fallback
	if lowestProbability >= 0.5 {
		return false
	}

	lowestProbabilityCells := make([]*game.Cell, 0, len(cellProbabilities))
	for _, cell := range director.game.Cells() {
		if probability, ok := cellProbabilities[cell]; ok && probability <= lowestProbability {
			lowestProbabilityCells = append(lowestProbabilityCells, cell)
		}
	}

	pick := lowestProbabilityCells[director.game.Rand().Intn(len(lowestProbabilityCells))]
	Log.WithFields(logrus.Fields{
		"cell":        pick.String(),
		"probability": lowestProbability,
	}).Debug("director guess")

	director.pending.PushBack(pick.Click())
	return true
}
