package game

import (
	"fmt"
)

type Cell struct {
	x, y          uint
	idx           uint
	adjacentMines uint8

	isMine, isRevealed, isFlagged bool
	isLosingMine                  bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) X() uint {
	return cell.x
}

func (cell *Cell) Y() uint {
	return cell.y
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

// AdjacentMines is the number of mines among the cell's neighbors, or 0
// while the cell is still covered
func (cell *Cell) AdjacentMines() uint8 {
	if !cell.isRevealed {
		return 0
	}
	return cell.adjacentMines
}

// state returns what the cell should look like to the player. Mines only
// show through once the game is lost, or always in dev mode.
func (cell *Cell) state(lost, devMode bool) CellState {
	switch {
	case cell.isLosingMine:
		return MineLosing
	case cell.isFlagged:
		if lost && !cell.isMine {
			return FlagWrong
		}
		return Flag
	case cell.isMine && cell.isRevealed:
		// Only a loss reveals mines, so this one went unfound
		return MineUnrevealed
	case cell.isMine && devMode:
		return Mine
	case !cell.isRevealed:
		return Unrevealed
	default:
		return CellState(cell.adjacentMines)
	}
}

func (cell *Cell) serialize() string {
	switch {
	case cell.isMine:
		switch {
		case cell.isLosingMine:
			return "*"
		case cell.isFlagged:
			return "F"
		default:
			return "O"
		}
	case cell.isFlagged:
		return "f"
	case cell.isRevealed:
		return "."
	default:
		return "#"
	}
}

// deserialize restores the cell from its snapshot character. With fresh set,
// only the mine layout is kept.
func (cell *Cell) deserialize(c rune, fresh bool) bool {
	switch c {
	case '*', 'F', 'O':
		cell.isMine = true
		if fresh {
			return true
		}

		switch c {
		case '*':
			cell.isLosingMine = true
			cell.isRevealed = true
		case 'F':
			cell.isFlagged = true
		}
	case 'f':
		if !fresh {
			cell.isFlagged = true
		}
	case '.':
		if !fresh {
			cell.isRevealed = true
		}
	case '#':
	default:
		return false
	}

	return true
}
