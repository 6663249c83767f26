package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-engine/internal/service/game"
)

type HealthHandler struct {
	SessionManager *game.SessionManager
	RedisEnabled   bool
}

func NewHealthHandler(sm *game.SessionManager, redisEnabled bool) *HealthHandler {
	return &HealthHandler{SessionManager: sm, RedisEnabled: redisEnabled}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": h.SessionManager.Count(),
		"redis":    h.RedisEnabled,
	})
}
