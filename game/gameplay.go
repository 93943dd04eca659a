package game

import (
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GamePlay owns a board and drives it through a single game at a time.
// It is not safe for concurrent use; callers are expected to feed it one
// input event at a time.
type GamePlay struct {
	config GameConfig
	clock  clock.Clock

	difficulty Difficulty
	params     Params
	board      *Board

	sessionID uuid.UUID
	seed      int64
	nextSeed  int64
	rand      *rand.Rand

	phase         Phase
	mineGenerated bool
	// Mines were laid out up front (from a snapshot), not on first click
	fixedLayout    bool
	flagCount      uint
	unrevealedSafe uint

	startTime, endTime time.Time
}

func NewGamePlay(config GameConfig) (*GamePlay, error) {
	difficulty, params, err := config.board()
	if err != nil {
		return nil, err
	}

	g := newGamePlay(config)
	g.reset(difficulty, params)
	return g, nil
}

func newGamePlay(config GameConfig) *GamePlay {
	g := &GamePlay{
		config:   config,
		clock:    config.Clock,
		nextSeed: config.Seed,
	}
	if g.clock == nil {
		g.clock = clock.New()
	}
	return g
}

// Reset starts a new game on one of the preset boards
func (g *GamePlay) Reset(difficulty Difficulty) error {
	params, ok := difficulty.Params()
	if !ok {
		return &ConfigError{Params: g.params, Err: ErrUnknownDifficulty}
	}

	g.reset(difficulty, params)
	return nil
}

// ResetCustom starts a new game on a board of any size. Invalid params leave
// the current game untouched.
func (g *GamePlay) ResetCustom(params Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	g.reset(difficultyOf(params), params)
	return nil
}

func (g *GamePlay) reset(difficulty Difficulty, params Params) {
	g.difficulty = difficulty
	g.params = params
	g.board = createBoard(params.Width, params.Height)

	g.seed = g.nextSeed
	g.rand = rand.New(rand.NewSource(g.seed))
	g.nextSeed = g.rand.Int63()
	g.sessionID = uuid.New()

	g.phase = Playing
	g.mineGenerated = false
	g.fixedLayout = false
	g.flagCount = 0
	g.unrevealedSafe = params.NumCells() - params.NumMines
	g.startTime = g.clock.Now()
	g.endTime = g.startTime

	g.log().WithFields(logrus.Fields{
		"difficulty": difficulty.String(),
		"board":      params.String(),
		"seed":       g.seed,
	}).Info("new game")
}

// OnClick reveals the cell at (x, y). The first reveal of a game lays out
// the mines around it. Flagged cells must be unflagged before they can be
// revealed.
func (g *GamePlay) OnClick(x, y uint) {
	if g.phase != Playing {
		return
	}

	cell := g.board.CellAt(x, y)
	if cell == nil || cell.isRevealed || cell.isFlagged {
		return
	}

	if !g.mineGenerated {
		g.start(cell)
	}

	g.reveal(cell)
}

// OnRightClick toggles the flag on a covered cell
func (g *GamePlay) OnRightClick(x, y uint) {
	if g.phase != Playing {
		return
	}

	cell := g.board.CellAt(x, y)
	if cell == nil || cell.isRevealed {
		return
	}

	cell.isFlagged = !cell.isFlagged
	if cell.isFlagged {
		g.flagCount++
	} else {
		g.flagCount--
	}

	g.log().WithFields(logrus.Fields{
		"cell":    cell.String(),
		"flagged": cell.isFlagged,
	}).Debug("toggled flag")
}

// ExpandSiblings reveals every covered, unflagged neighbor of a revealed
// numbered cell at once.
func (g *GamePlay) ExpandSiblings(x, y uint) {
	if g.phase != Playing {
		return
	}

	cell := g.board.CellAt(x, y)
	if cell == nil || !cell.isRevealed || cell.isMine || cell.adjacentMines == 0 {
		return
	}

	neighbors := g.board.Neighbors(cell)
	if g.config.StrictChord {
		numFlaggedNeighbors := uint8(0)
		for _, neighbor := range neighbors {
			if neighbor.isFlagged {
				numFlaggedNeighbors++
			}
		}
		if numFlaggedNeighbors != cell.adjacentMines {
			return
		}
	}

	for _, neighbor := range neighbors {
		if neighbor.isRevealed || neighbor.isFlagged {
			continue
		}

		g.reveal(neighbor)
		if g.phase != Playing {
			return
		}
	}
}

func (g *GamePlay) start(origin *Cell) {
	if !g.fixedLayout {
		// Params are validated on reset, so the board always has room
		if err := g.generateMines(origin); err != nil {
			panic(err)
		}
	}

	g.mineGenerated = true
	g.startTime = g.clock.Now()
}

func (g *GamePlay) reveal(cell *Cell) {
	if cell.isMine {
		cell.isRevealed = true
		g.lose(cell)
		return
	}

	g.revealSafe(cell)
	if cell.adjacentMines == 0 {
		g.expandZeroBlocks(cell)
	}

	if g.unrevealedSafe == 0 {
		g.win()
	}
}

// revealSafe uncovers a cell known not to be a mine. A flag wrongly placed
// on it is dropped.
func (g *GamePlay) revealSafe(cell *Cell) {
	if cell.isFlagged {
		cell.isFlagged = false
		g.flagCount--
	}

	cell.isRevealed = true
	g.unrevealedSafe--
}

func (g *GamePlay) win() {
	g.phase = Won
	g.endGame()
}

func (g *GamePlay) lose(losingMine *Cell) {
	losingMine.isLosingMine = true
	g.phase = Lost

	for _, cell := range g.board.Cells() {
		if cell.isMine {
			cell.isRevealed = true
		}
	}

	g.endGame()
}

func (g *GamePlay) endGame() {
	g.endTime = g.clock.Now()

	g.log().WithFields(logrus.Fields{
		"phase":   g.phase.String(),
		"elapsed": g.ElapsedSeconds(),
	}).Info("game over")
}

// RemainingMines is the number of mines not yet accounted for by flags
func (g *GamePlay) RemainingMines() uint {
	if g.flagCount >= g.params.NumMines {
		return 0
	}
	return g.params.NumMines - g.flagCount
}

// ElapsedSeconds is the whole number of seconds since the first reveal,
// frozen once the game ends
func (g *GamePlay) ElapsedSeconds() int {
	if !g.mineGenerated {
		return 0
	}

	end := g.endTime
	if g.phase == Playing {
		end = g.clock.Now()
	}

	elapsed := end.Sub(g.startTime)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / time.Second)
}

// StateOf returns how cell should be drawn in the current game
func (g *GamePlay) StateOf(cell *Cell) CellState {
	return cell.state(g.phase == Lost, g.config.DevMode)
}

// CellStates returns the drawable state of the whole board, row by row
func (g *GamePlay) CellStates() [][]CellState {
	states := make([][]CellState, g.board.height)
	for y := range states {
		states[y] = make([]CellState, g.board.width)
		for x := range states[y] {
			states[y][x] = g.StateOf(&g.board.cells[y][x])
		}
	}
	return states
}

func (g *GamePlay) Phase() Phase {
	return g.phase
}

func (g *GamePlay) Difficulty() Difficulty {
	return g.difficulty
}

func (g *GamePlay) Params() Params {
	return g.params
}

func (g *GamePlay) Width() uint {
	return g.board.width
}

func (g *GamePlay) Height() uint {
	return g.board.height
}

func (g *GamePlay) FlagCount() uint {
	return g.flagCount
}

func (g *GamePlay) MinesGenerated() bool {
	return g.mineGenerated
}

func (g *GamePlay) SessionID() uuid.UUID {
	return g.sessionID
}

func (g *GamePlay) Seed() int64 {
	return g.seed
}

// Rand is the random source of the current game, for directors
func (g *GamePlay) Rand() *rand.Rand {
	return g.rand
}

func (g *GamePlay) CellAt(x, y uint) *Cell {
	return g.board.CellAt(x, y)
}

func (g *GamePlay) Cells() []*Cell {
	return g.board.Cells()
}

func (g *GamePlay) Neighbors(cell *Cell) []*Cell {
	return g.board.Neighbors(cell)
}

func (g *GamePlay) log() *logrus.Entry {
	return Log.WithField("session", g.sessionID.String())
}
