package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/logger"
	"github.com/iamasit07/connect4-engine/internal/service/game"
)

// Handler manages WebSocket dependencies
type Handler struct {
	GameService *game.Service
	Upgrader    websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. An empty allowedOrigins list
// accepts any origin.
func NewHandler(gs *game.Service, allowedOrigins []string) *Handler {
	return &Handler{
		GameService: gs,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		logger.Component("ws").Warn().Str("origin", origin).Msg("origin not in allowed list")
		return false
	}
}

// HandleWebSocket is the gin route for /ws
func (h *Handler) HandleWebSocket(c *gin.Context) {
	h.ServeHTTP(c.Writer, c.Request)
}

// ServeHTTP upgrades the connection and runs its read loop
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Component("ws").Warn().Err(err).Msg("upgrade error")
		return
	}

	h.handleConnection(r.Context(), NewConnection(conn))
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(ctx context.Context, c *Connection) {
	log := logger.Component("ws")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := c.Ping(); err != nil {
					return
				}
			}
		}
	}()

	defer func() {
		if c.gameID != "" {
			h.GameService.Sessions.RemoveSession(c.gameID)
		}
		c.Close()
		log.Debug().Str("game_id", c.gameID).Msg("connection closed")
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Info().Err(err).Msg("client disconnected unexpectedly")
			}
			return
		}
		c.conn.SetReadDeadline(time.Now().Add(pongWait))

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Debug().Err(err).Msg("invalid message format")
			c.SendError("Invalid message format")
			continue
		}

		h.processMessage(ctx, c, msg)
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(ctx context.Context, c *Connection, msg domain.ClientMessage) {
	switch msg.Type {
	case "new_game":
		if c.gameID != "" {
			h.GameService.Sessions.RemoveSession(c.gameID)
			c.gameID = ""
		}

		session, report, err := h.GameService.NewGame(ctx, msg.Difficulty, msg.HumanFirst)
		c.gameID = session.GameID

		initial := report.State
		if len(report.Moves) > 0 || err != nil {
			initial = domain.StateAutomatedToMove
		}
		c.SendMessage(domain.ServerMessage{
			Type:   "game_start",
			GameID: session.GameID,
			Player: int(domain.HumanPiece),
			Board:  domain.NewBoard().Snapshot(),
			State:  initial,
		})
		h.sendReport(c, session.GameID, report)
		if err != nil {
			log := logger.Component("ws")
			log.Error().Err(err).Str("game_id", session.GameID).Msg("engine failed to open")
			c.SendError(err.Error())
		}

	case "make_move":
		session, ok := h.currentSession(c)
		if !ok {
			return
		}
		report, err := session.HandleHumanMove(ctx, msg.Column)
		// the human disk may have landed before the engine failed
		if len(report.Moves) > 0 {
			h.sendReport(c, session.GameID, report)
		}
		if err != nil {
			c.SendMessage(domain.ServerMessage{
				Type:    "error",
				Message: err.Error(),
				GameID:  session.GameID,
				State:   report.State,
				Result:  report.Result,
			})
		}

	case "get_state":
		session, ok := h.currentSession(c)
		if !ok {
			return
		}
		report := session.Report()
		c.SendMessage(domain.ServerMessage{
			Type:      "game_state",
			GameID:    session.GameID,
			Board:     report.Board,
			State:     report.State,
			Result:    report.Result,
			MoveCount: session.Info().MoveCount,
		})

	default:
		c.SendError("Unknown message type")
	}
}

func (h *Handler) currentSession(c *Connection) (*game.GameSession, bool) {
	if c.gameID == "" {
		c.SendError("Game not found")
		return nil, false
	}
	session, ok := h.GameService.Sessions.GetSessionByGameID(c.gameID)
	if !ok {
		c.gameID = ""
		c.SendError("Game not found")
		return nil, false
	}
	return session, true
}

// sendReport emits one move_made per applied move and a final game_over when
// the game has ended. Each move_made carries the board as it stood right
// after that move.
func (h *Handler) sendReport(c *Connection, gameID string, report game.TurnReport) {
	boards := boardsAfterEachMove(report)
	for i, m := range report.Moves {
		column, row := m.Column, m.Row
		c.SendMessage(domain.ServerMessage{
			Type:   "move_made",
			GameID: gameID,
			Column: &column,
			Row:    &row,
			Player: int(m.Player),
			Score:  m.Score,
			Board:  boards[i],
			State:  report.State,
		})
	}

	if report.Result != domain.ResultInProgress {
		c.SendMessage(domain.ServerMessage{
			Type:   "game_over",
			GameID: gameID,
			Board:  report.Board,
			State:  report.State,
			Result: report.Result,
		})
	}
}

// boardsAfterEachMove rewinds the final snapshot one move at a time.
func boardsAfterEachMove(report game.TurnReport) [][][]int {
	boards := make([][][]int, len(report.Moves))
	current := copySnapshot(report.Board)
	for i := len(report.Moves) - 1; i >= 0; i-- {
		boards[i] = current
		m := report.Moves[i]
		current = copySnapshot(current)
		if m.Row >= 0 && m.Row < len(current) && m.Column >= 0 && m.Column < len(current[m.Row]) {
			current[m.Row][m.Column] = int(domain.Empty)
		}
	}
	return boards
}

func copySnapshot(board [][]int) [][]int {
	out := make([][]int, len(board))
	for r := range board {
		out[r] = append([]int(nil), board[r]...)
	}
	return out
}
