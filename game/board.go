package game

type Board struct {
	width, height uint // in number of cells
	cells         [][]Cell
}

func (board *Board) Width() uint {
	return board.width
}

func (board *Board) Height() uint {
	return board.height
}

func (board *Board) NumCells() uint {
	return board.width * board.height
}

func (board *Board) CellAt(x, y uint) *Cell {
	if x < board.width && y < board.height {
		return &board.cells[y][x]
	}
	return nil
}

// cellAtIndex maps a row-major index back onto the grid
func (board *Board) cellAtIndex(idx uint) *Cell {
	return board.CellAt(idx%board.width, idx/board.width)
}

// Cells returns every cell, row by row
func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, 0, board.NumCells())
	for y := range board.cells {
		for x := range board.cells[y] {
			cells = append(cells, &board.cells[y][x])
		}
	}
	return cells
}

// Neighbors returns the up-to-8 cells surrounding cell, clipped to the grid
func (board *Board) Neighbors(cell *Cell) []*Cell {
	neighbors := make([]*Cell, 0, 8)

	isAtTopBorder := cell.y < 1
	isAtBottomBorder := cell.y >= board.height-1

	if cell.x >= 1 {
		neighbors = append(neighbors, board.CellAt(cell.x-1, cell.y))

		if !isAtTopBorder {
			neighbors = append(neighbors, board.CellAt(cell.x-1, cell.y-1))
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, board.CellAt(cell.x-1, cell.y+1))
		}
	}

	if cell.x < board.width-1 {
		neighbors = append(neighbors, board.CellAt(cell.x+1, cell.y))

		if !isAtTopBorder {
			neighbors = append(neighbors, board.CellAt(cell.x+1, cell.y-1))
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, board.CellAt(cell.x+1, cell.y+1))
		}
	}

	if !isAtTopBorder {
		neighbors = append(neighbors, board.CellAt(cell.x, cell.y-1))
	}
	if !isAtBottomBorder {
		neighbors = append(neighbors, board.CellAt(cell.x, cell.y+1))
	}

	return neighbors
}

// countAdjacent fills in the neighboring mine count of every safe cell
func (board *Board) countAdjacent() {
	for _, cell := range board.Cells() {
		if cell.isMine {
			continue
		}

		cell.adjacentMines = 0
		for _, neighbor := range board.Neighbors(cell) {
			if neighbor.isMine {
				cell.adjacentMines++
			}
		}
	}
}

func createBoard(width, height uint) *Board {
	board := &Board{
		width:  width,
		height: height,
		cells:  make([][]Cell, height),
	}

	cellIdx := uint(0)
	for y := uint(0); y < height; y++ {
		row := make([]Cell, width)
		board.cells[y] = row

		for x := uint(0); x < width; x++ {
			cell := &row[x]
			cell.idx = cellIdx
			cell.x, cell.y = x, y
			cellIdx++
		}
	}

	return board
}
