package cleanup

import (
	"context"
	"time"

	"github.com/iamasit07/connect4-engine/internal/logger"
	"github.com/iamasit07/connect4-engine/internal/service/game"
)

type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
	MaxIdle        time.Duration
}

func NewWorker(sm *game.SessionManager, interval, maxIdle time.Duration) *Worker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Worker{SessionManager: sm, Interval: interval, MaxIdle: maxIdle}
}

// Start runs one sweep immediately and then one per Interval until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	log := logger.Component("cleanup")
	log.Info().Dur("interval", w.Interval).Dur("max_idle", w.MaxIdle).Msg("background worker started")

	w.runCleanup(time.Now())

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("background worker stopped")
			return
		case now := <-ticker.C:
			w.runCleanup(now)
		}
	}
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup(now time.Time) int {
	removed := w.SessionManager.CleanupIdleSessions(now, w.MaxIdle)
	if removed > 0 {
		logger.Component("cleanup").Info().Int("removed", removed).Int("remaining", w.SessionManager.Count()).Msg("swept idle sessions")
	}
	return removed
}
