package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// the human always holds Player1 and the engine Player2
const (
	HumanPiece     = Player1
	AutomatedPiece = Player2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// sentinels for "no cell" / "no column"
const (
	NoRow    = -1
	NoColumn = -1
)

// Opponent returns the other piece. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "human"
	case Player2:
		return "automated"
	default:
		return "empty"
	}
}

// turn protocol states
type GameState string

const (
	StateHumanToMove     GameState = "human_to_move"
	StateAutomatedToMove GameState = "automated_to_move"
	StateHumanWon        GameState = "human_won"
	StateAutomatedWon    GameState = "automated_won"
	StateDraw            GameState = "draw"
)

// what the presentation layer sees
type GameResult string

const (
	ResultInProgress   GameResult = "in_progress"
	ResultHumanWon     GameResult = "human_won"
	ResultAutomatedWon GameResult = "automated_won"
	ResultDraw         GameResult = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove   Error = "invalid move"
	ErrInvalidColumn Error = "column out of range"
	ErrColumnFull    Error = "column is full"
	ErrGameOver      Error = "game is over"
	ErrNotYourTurn   Error = "not your turn"
)
