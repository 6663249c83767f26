package domain

// ClientMessage is what the presentation layer sends over the socket.
type ClientMessage struct {
	Type       string `json:"type"`
	Column     int    `json:"column"`
	Difficulty string `json:"difficulty,omitempty"`
	HumanFirst *bool  `json:"humanFirst,omitempty"`
}

type ServerMessage struct {
	Type      string     `json:"type"`
	Message   string     `json:"message,omitempty"`
	GameID    string     `json:"gameId,omitempty"`
	Column    *int       `json:"column,omitempty"`
	Row       *int       `json:"row,omitempty"`
	Player    int        `json:"player,omitempty"`
	Board     [][]int    `json:"board,omitempty"`
	State     GameState  `json:"state,omitempty"`
	Result    GameResult `json:"result,omitempty"`
	Score     *int       `json:"score,omitempty"`
	MoveCount int        `json:"moveCount,omitempty"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
