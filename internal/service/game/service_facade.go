package game

import (
	"context"

	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

// Service is the entry point for game logic (facade)
type Service struct {
	Engine     MoveEngine
	Sessions   *SessionManager
	Difficulty bot.BotDifficulty
	Depth      int
	HumanFirst bool
}

func NewService(engine MoveEngine, sessions *SessionManager, difficulty bot.BotDifficulty, depth int, humanFirst bool) *Service {
	return &Service{
		Engine:     engine,
		Sessions:   sessions,
		Difficulty: difficulty,
		Depth:      depth,
		HumanFirst: humanFirst,
	}
}

// NewGame registers a fresh session. Empty difficulty and nil humanFirst
// keep the service defaults; a configured depth only applies when no
// difficulty is requested.
func (s *Service) NewGame(ctx context.Context, difficulty string, humanFirst *bool) (*GameSession, TurnReport, error) {
	level := s.Difficulty
	depth := s.Depth
	if difficulty != "" {
		level = bot.ParseDifficulty(difficulty)
		depth = level.Depth()
	}

	first := s.HumanFirst
	if humanFirst != nil {
		first = *humanFirst
	}

	session := NewGameSession(s.Engine, level, depth, first)
	s.Sessions.Add(session)

	report, err := session.Start(ctx)
	return session, report, err
}
