package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-engine/internal/service/game"
)

type GamesHandler struct {
	SessionManager *game.SessionManager
}

func NewGamesHandler(sm *game.SessionManager) *GamesHandler {
	return &GamesHandler{SessionManager: sm}
}

type activeGameResponse struct {
	GameID       string `json:"gameId"`
	State        string `json:"state"`
	Difficulty   string `json:"difficulty"`
	MoveCount    int    `json:"moveCount"`
	StartedAt    string `json:"startedAt"`
	LastActivity string `json:"lastActivity"`
}

// GetActiveGames returns every game still in progress
func (h *GamesHandler) GetActiveGames(c *gin.Context) {
	activeGames := h.SessionManager.ActiveGames()

	response := make([]activeGameResponse, 0, len(activeGames))
	for _, g := range activeGames {
		response = append(response, activeGameResponse{
			GameID:       g.GameID,
			State:        string(g.State),
			Difficulty:   string(g.Difficulty),
			MoveCount:    g.MoveCount,
			StartedAt:    g.CreatedAt.UTC().Format(time.RFC3339),
			LastActivity: g.LastActivity.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, response)
}
