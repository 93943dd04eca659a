package game

type CellState int
type Phase int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	// Mine is an unfound mine shown in dev mode while still playing
	Mine
	// MineUnrevealed is a mine the player never found, exposed by the loss
	MineUnrevealed
	MineLosing
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagWrong,
	Mine,
	MineUnrevealed,
	MineLosing,
}

// Rune returns the single character used by the terminal renderer
func (state CellState) Rune() rune {
	switch {
	case state == Empty:
		return '.'
	case state >= Number1 && state <= Number8:
		return rune('0' + int(state))
	case state == Flag:
		return 'F'
	case state == FlagWrong:
		return 'X'
	case state == Mine, state == MineUnrevealed:
		return '*'
	case state == MineLosing:
		return '@'
	default:
		return '#'
	}
}

const (
	Playing Phase = iota
	Won
	Lost
)

func (phase Phase) String() string {
	switch phase {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

func parsePhase(name string) Phase {
	switch name {
	case "won":
		return Won
	case "lost":
		return Lost
	default:
		return Playing
	}
}

// Size of the exclusion zone around the first click, in the worst case
// (an interior cell and its 8 neighbors)
const safeZoneSize = 9
