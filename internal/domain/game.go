package domain

// Game owns the live board and walks the turn protocol:
// HumanToMove <-> AutomatedToMove until HumanWon, AutomatedWon or Draw.
type Game struct {
	Board     *Board
	State     GameState
	MoveCount int
	LastMove  int
	LastRow   int
}

// NewGame starts an empty board. humanFirst mirrors the classic setup where
// the human opens; false lets the engine play the first disk.
func NewGame(humanFirst bool) *Game {
	state := StateHumanToMove
	if !humanFirst {
		state = StateAutomatedToMove
	}
	return &Game{
		Board:    NewBoard(),
		State:    state,
		LastMove: NoColumn,
		LastRow:  NoRow,
	}
}

// CurrentPlayer is the piece expected to move next, Empty once finished.
func (g *Game) CurrentPlayer() PlayerID {
	switch g.State {
	case StateHumanToMove:
		return HumanPiece
	case StateAutomatedToMove:
		return AutomatedPiece
	default:
		return Empty
	}
}

// MakeMove applies a move for player. Rejected moves leave both the board and
// the state unchanged.
func (g *Game) MakeMove(player PlayerID, column int) (int, error) {
	if g.IsFinished() {
		return NoRow, ErrGameOver
	}
	if player != g.CurrentPlayer() {
		return NoRow, ErrNotYourTurn
	}

	row, err := g.Board.DropDisk(column, player)
	if err != nil {
		return NoRow, err
	}

	g.MoveCount++
	g.LastMove = column
	g.LastRow = row

	if CheckWin(g.Board, row, column, player) {
		if player == HumanPiece {
			g.State = StateHumanWon
		} else {
			g.State = StateAutomatedWon
		}
		return row, nil
	}

	if g.Board.IsFull() {
		g.State = StateDraw
		return row, nil
	}

	if player == HumanPiece {
		g.State = StateAutomatedToMove
	} else {
		g.State = StateHumanToMove
	}

	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.State == StateHumanWon || g.State == StateAutomatedWon || g.State == StateDraw
}

func (g *Game) Result() GameResult {
	switch g.State {
	case StateHumanWon:
		return ResultHumanWon
	case StateAutomatedWon:
		return ResultAutomatedWon
	case StateDraw:
		return ResultDraw
	default:
		return ResultInProgress
	}
}

// Snapshot is the read-only view handed to the presentation layer.
func (g *Game) Snapshot() [][]int {
	return g.Board.Snapshot()
}
