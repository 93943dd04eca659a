package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGamePlay(t *testing.T) {
	config, _ := testConfig(Easy)
	g, err := NewGamePlay(config)
	require.NoError(t, err)

	assert.Equal(t, uint(8), g.Width())
	assert.Equal(t, uint(8), g.Height())
	assert.Equal(t, Playing, g.Phase())
	assert.Equal(t, uint(10), g.RemainingMines())
	assert.False(t, g.MinesGenerated())
	assert.Equal(t, int64(1), g.Seed())

	config, _ = testConfig(Custom)
	config.Params = Params{Width: 3, Height: 3, NumMines: 1}
	_, err = NewGamePlay(config)
	assert.ErrorIs(t, err, ErrTooManyMines)
}

func TestClickFloodsToWin(t *testing.T) {
	g, _ := fixture(t,
		"#####",
		"#####",
		"#####",
		"#####",
		"####O",
	)

	g.OnClick(0, 0)
	assert.Equal(t, Won, g.Phase())

	for _, cell := range g.Cells() {
		assert.Equal(t, !cell.isMine, cell.isRevealed, "%s", cell)
	}
	assert.Equal(t, Mine, g.CellAt(4, 4).state(false, true))
	assert.Equal(t, Unrevealed, g.StateOf(g.CellAt(4, 4)))
	assert.Equal(t, Number1, g.StateOf(g.CellAt(3, 3)))
	assert.Equal(t, Empty, g.StateOf(g.CellAt(0, 0)))
}

func TestFloodStopsAtNumbers(t *testing.T) {
	g, _ := fixture(t,
		"#####",
		"#O###",
		"#####",
		"#####",
		"#####",
	)

	g.OnClick(4, 4)
	require.Equal(t, Playing, g.Phase())

	covered := map[[2]uint]bool{{0, 0}: true, {1, 0}: true, {0, 1}: true, {1, 1}: true}
	for _, cell := range g.Cells() {
		assert.Equal(t, !covered[[2]uint{cell.x, cell.y}], cell.isRevealed, "%s", cell)
	}

	g.OnClick(0, 0)
	assert.True(t, g.CellAt(0, 0).isRevealed)
	assert.False(t, g.CellAt(1, 0).isRevealed, "numbers don't flood")
	assert.Equal(t, Playing, g.Phase())

	g.OnClick(1, 0)
	g.OnClick(0, 1)
	assert.Equal(t, Won, g.Phase())
}

func TestFloodRevealsClosedRegion(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		config, _ := testConfig(Medium)
		config.Seed = seed
		g, err := NewGamePlay(config)
		require.NoError(t, err)

		g.OnClick(8, 8)
		require.NotEqual(t, Lost, g.Phase())

		for _, cell := range g.Cells() {
			if !cell.isRevealed {
				continue
			}
			require.False(t, cell.isMine, "seed %d: revealed mine %s", seed, cell)
			if cell.adjacentMines == 0 {
				for _, neighbor := range g.Neighbors(cell) {
					require.True(t, neighbor.isRevealed, "seed %d: %s next to open %s", seed, neighbor, cell)
				}
			}
		}
	}
}

func TestClickMineLoses(t *testing.T) {
	g, _ := fixture(t,
		"O#O",
		"###",
		"##O",
	)

	g.OnRightClick(0, 0)
	g.OnRightClick(1, 0)
	g.OnClick(2, 0)
	require.Equal(t, Lost, g.Phase())

	for _, cell := range g.Cells() {
		if cell.isMine {
			assert.True(t, cell.isRevealed, "%s", cell)
		}
	}

	assert.Equal(t, Flag, g.StateOf(g.CellAt(0, 0)))
	assert.Equal(t, FlagWrong, g.StateOf(g.CellAt(1, 0)))
	assert.Equal(t, MineLosing, g.StateOf(g.CellAt(2, 0)))
	assert.Equal(t, MineUnrevealed, g.StateOf(g.CellAt(2, 2)))
	assert.Equal(t, Unrevealed, g.StateOf(g.CellAt(1, 1)))
	assert.Equal(t, "lost", g.Snapshot().Phase)
}

func TestGameOverIgnoresInput(t *testing.T) {
	g, _ := fixture(t,
		"O#O",
		"###",
		"##O",
	)
	g.OnClick(0, 0)
	require.Equal(t, Lost, g.Phase())
	before := g.Snapshot().SerializedBoard

	g.OnClick(1, 1)
	g.OnRightClick(1, 0)
	g.ExpandSiblings(1, 1)

	assert.Equal(t, before, g.Snapshot().SerializedBoard)
	assert.Equal(t, uint(0), g.FlagCount())
	assert.Equal(t, Lost, g.Phase())
}

func TestFlags(t *testing.T) {
	g, _ := fixture(t,
		"O##",
		"###",
		"###",
	)

	g.OnRightClick(0, 0)
	assert.True(t, g.CellAt(0, 0).IsFlagged())
	assert.Equal(t, uint(1), g.FlagCount())
	assert.Equal(t, uint(0), g.RemainingMines())

	g.OnRightClick(1, 0)
	assert.Equal(t, uint(2), g.FlagCount())
	assert.Equal(t, uint(0), g.RemainingMines(), "remaining mines never go negative")

	g.OnRightClick(1, 0)
	assert.False(t, g.CellAt(1, 0).IsFlagged())
	assert.Equal(t, uint(1), g.FlagCount())

	g.OnClick(1, 0)
	require.True(t, g.CellAt(1, 0).IsRevealed())
	g.OnRightClick(1, 0)
	assert.False(t, g.CellAt(1, 0).IsFlagged(), "revealed cells can't be flagged")
	assert.Equal(t, uint(1), g.FlagCount())

	g.OnRightClick(5, 5)
	assert.Equal(t, uint(1), g.FlagCount())
}

func TestClickOnFlagIsIgnored(t *testing.T) {
	config, _ := testConfig(Easy)
	g, err := NewGamePlay(config)
	require.NoError(t, err)

	g.OnRightClick(3, 3)
	g.OnClick(3, 3)
	assert.False(t, g.MinesGenerated())
	assert.False(t, g.CellAt(3, 3).IsRevealed())

	g.OnClick(100, 100)
	assert.False(t, g.MinesGenerated())
}

func TestFloodClearsWrongFlags(t *testing.T) {
	g, _ := fixture(t,
		"#####",
		"#####",
		"#####",
		"#####",
		"####O",
	)

	g.OnRightClick(0, 4)
	require.Equal(t, uint(1), g.FlagCount())

	g.OnClick(0, 0)
	assert.True(t, g.CellAt(0, 4).IsRevealed())
	assert.False(t, g.CellAt(0, 4).IsFlagged())
	assert.Equal(t, uint(0), g.FlagCount())
	assert.Equal(t, Won, g.Phase())
}

func TestElapsedSeconds(t *testing.T) {
	g, mock := fixture(t,
		"O##",
		"###",
		"##O",
	)

	mock.Add(5 * time.Second)
	assert.Equal(t, 0, g.ElapsedSeconds(), "the clock starts on the first reveal")

	g.OnClick(1, 0)
	require.Equal(t, Playing, g.Phase())
	mock.Add(2500 * time.Millisecond)
	assert.Equal(t, 2, g.ElapsedSeconds())

	g.OnClick(2, 2)
	require.Equal(t, Lost, g.Phase())
	mock.Add(time.Minute)
	assert.Equal(t, 2, g.ElapsedSeconds(), "the clock stops when the game ends")
}

func TestExpandSiblings(t *testing.T) {
	board := []string{
		"#O#",
		"###",
		"###",
	}

	t.Run("flagged", func(t *testing.T) {
		g, _ := fixture(t, board...)
		g.OnClick(0, 0)
		g.OnRightClick(1, 0)

		g.ExpandSiblings(0, 0)
		assert.Equal(t, Playing, g.Phase())
		assert.True(t, g.CellAt(0, 1).IsRevealed())
		assert.True(t, g.CellAt(1, 1).IsRevealed())
		assert.False(t, g.CellAt(1, 0).IsRevealed())
	})

	t.Run("unflagged mine", func(t *testing.T) {
		g, _ := fixture(t, board...)
		g.OnClick(0, 0)

		g.ExpandSiblings(0, 0)
		assert.Equal(t, Lost, g.Phase())
		assert.Equal(t, MineLosing, g.StateOf(g.CellAt(1, 0)))
	})

	t.Run("strict", func(t *testing.T) {
		g, _ := fixture(t, board...)
		g.config.StrictChord = true
		g.OnClick(0, 0)

		g.ExpandSiblings(0, 0)
		assert.False(t, g.CellAt(0, 1).IsRevealed(), "no flags to account for the mine")

		g.OnRightClick(1, 0)
		g.ExpandSiblings(0, 0)
		assert.True(t, g.CellAt(0, 1).IsRevealed())
		assert.True(t, g.CellAt(1, 1).IsRevealed())
	})

	t.Run("ignored", func(t *testing.T) {
		g, _ := fixture(t, board...)

		g.ExpandSiblings(0, 0)
		assert.False(t, g.MinesGenerated(), "covered cells don't chord")

		g.OnClick(0, 2)
		require.True(t, g.CellAt(1, 2).IsRevealed())
		before := g.Snapshot().SerializedBoard

		g.ExpandSiblings(1, 2)
		g.ExpandSiblings(7, 7)
		assert.Equal(t, before, g.Snapshot().SerializedBoard)
	})
}

func TestReset(t *testing.T) {
	config, _ := testConfig(Easy)
	g, err := NewGamePlay(config)
	require.NoError(t, err)
	session := g.SessionID()

	g.OnClick(4, 4)
	g.OnRightClick(0, 0)
	require.True(t, g.MinesGenerated())

	require.NoError(t, g.Reset(Hard))
	assert.Equal(t, Hard, g.Difficulty())
	assert.Equal(t, uint(30), g.Width())
	assert.Equal(t, uint(16), g.Height())
	assert.Equal(t, Playing, g.Phase())
	assert.False(t, g.MinesGenerated())
	assert.Equal(t, uint(0), g.FlagCount())
	assert.Equal(t, uint(99), g.RemainingMines())
	assert.NotEqual(t, session, g.SessionID())
	for _, cell := range g.Cells() {
		assert.False(t, cell.isMine || cell.isRevealed || cell.isFlagged, "%s", cell)
	}

	assert.ErrorIs(t, g.Reset(Custom), ErrUnknownDifficulty)
	assert.ErrorIs(t, g.ResetCustom(Params{Width: 10, Height: 10, NumMines: 95}), ErrTooManyMines)
	assert.ErrorIs(t, g.ResetCustom(Params{Width: 8, Height: 8, NumMines: math.MaxUint - 4}), ErrTooManyMines)
	assert.Equal(t, Hard, g.Difficulty(), "a failed reset keeps the current game")
	assert.Equal(t, uint(30), g.Width())

	require.NoError(t, g.ResetCustom(Params{Width: 10, Height: 12, NumMines: 20}))
	assert.Equal(t, Custom, g.Difficulty())
	assert.Equal(t, uint(10), g.Width())
	assert.Equal(t, uint(12), g.Height())
	assert.Equal(t, uint(20), g.RemainingMines())

	require.NoError(t, g.ResetCustom(Params{Width: 8, Height: 8, NumMines: 10}))
	assert.Equal(t, Easy, g.Difficulty())
}
