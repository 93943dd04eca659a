package game

type Director interface {
	/**
	 * Bind the director to a game. Called again after every reset.
	 */
	Init(*GamePlay)

	/**
	 * Perform a single step of actions, returning false if there was
	 * nothing left to do
	 */
	Act() bool
}

// Autoplay steps director until the game ends or it gives up, calling
// afterStep (if non-nil) after every action. It returns the number of steps
// taken.
func Autoplay(g *GamePlay, director Director, afterStep func()) int {
	director.Init(g)

	steps := 0
	for g.Phase() == Playing && director.Act() {
		steps++
		if afterStep != nil {
			afterStep()
		}
	}
	return steps
}

type ActionType int

const (
	Click ActionType = iota
	RightClick
	MiddleClick
)

func (action ActionType) String() string {
	switch action {
	case Click:
		return "click"
	case RightClick:
		return "right-click"
	case MiddleClick:
		return "middle-click"
	default:
		return "unknown"
	}
}

// CellAction is an input a director wants applied to a cell
type CellAction struct {
	Cell   *Cell
	Action ActionType
}

func (cell *Cell) Click() CellAction {
	return CellAction{
		Cell:   cell,
		Action: Click,
	}
}

func (cell *Cell) RightClick() CellAction {
	return CellAction{
		Cell:   cell,
		Action: RightClick,
	}
}

func (cell *Cell) MiddleClick() CellAction {
	return CellAction{
		Cell:   cell,
		Action: MiddleClick,
	}
}

// Apply feeds action to the game as if the player had performed it
func (g *GamePlay) Apply(action CellAction) {
	x, y := action.Cell.X(), action.Cell.Y()
	switch action.Action {
	case Click:
		g.OnClick(x, y)
	case RightClick:
		g.OnRightClick(x, y)
	case MiddleClick:
		g.ExpandSiblings(x, y)
	}
}
