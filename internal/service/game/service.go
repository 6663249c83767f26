package game

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/logger"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

// MoveEngine is the search the automated side relies on.
type MoveEngine interface {
	BestMoveAtDepth(ctx context.Context, board *domain.Board, maxPiece domain.PlayerID, depth int) bot.SearchResult
}

// Move describes one confirmed disk. Score is only set for engine moves.
type Move struct {
	Player domain.PlayerID
	Column int
	Row    int
	Score  *int
}

// TurnReport lists the moves applied by one call and where the game ended up.
type TurnReport struct {
	Moves  []Move
	State  domain.GameState
	Result domain.GameResult
	Board  [][]int
}

// SessionInfo is a read-only summary for listings.
type SessionInfo struct {
	GameID       string
	State        domain.GameState
	Result       domain.GameResult
	Difficulty   bot.BotDifficulty
	MoveCount    int
	CreatedAt    time.Time
	LastActivity time.Time
}

// GameSession is one human against the engine on one live board.
type GameSession struct {
	GameID       string
	Game         *domain.Game
	Difficulty   bot.BotDifficulty
	Depth        int
	CreatedAt    time.Time
	LastActivity time.Time
	FinishedAt   time.Time
	mu           sync.Mutex
	engine       MoveEngine
}

func NewGameSession(engine MoveEngine, difficulty bot.BotDifficulty, depth int, humanFirst bool) *GameSession {
	now := time.Now()
	return &GameSession{
		GameID:       uuid.New().String(),
		Game:         domain.NewGame(humanFirst),
		Difficulty:   difficulty,
		Depth:        depth,
		CreatedAt:    now,
		LastActivity: now,
		engine:       engine,
	}
}

// Start plays the engine's opening disk when it moves first. Otherwise it
// only reports the initial state.
func (gs *GameSession) Start(ctx context.Context) (TurnReport, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	var moves []Move
	if gs.Game.State == domain.StateAutomatedToMove {
		move, err := gs.playAutomatedLocked(ctx)
		if err != nil {
			return gs.reportLocked(moves), err
		}
		moves = append(moves, move)
	}
	return gs.reportLocked(moves), nil
}

// HandleHumanMove applies the human's column and, if the game continues,
// answers with the engine's move. A rejected column leaves the session as it
// was and returns the domain error.
func (gs *GameSession) HandleHumanMove(ctx context.Context, column int) (TurnReport, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	log := logger.Component("game")

	row, err := gs.Game.MakeMove(domain.HumanPiece, column)
	if err != nil {
		return gs.reportLocked(nil), err
	}
	gs.LastActivity = time.Now()

	moves := []Move{{Player: domain.HumanPiece, Column: column, Row: row}}
	log.Debug().Str("game_id", gs.GameID).Int("column", column).Int("row", row).Msg("human move")

	if gs.Game.State == domain.StateAutomatedToMove {
		move, err := gs.playAutomatedLocked(ctx)
		if err != nil {
			return gs.reportLocked(moves), err
		}
		moves = append(moves, move)
	}

	if gs.Game.IsFinished() {
		gs.FinishedAt = time.Now()
		log.Info().Str("game_id", gs.GameID).Str("result", string(gs.Game.Result())).Int("moves", gs.Game.MoveCount).Msg("game over")
	}

	return gs.reportLocked(moves), nil
}

func (gs *GameSession) playAutomatedLocked(ctx context.Context) (Move, error) {
	result := gs.engine.BestMoveAtDepth(ctx, gs.Game.Board, domain.AutomatedPiece, gs.Depth)
	if result.Column == domain.NoColumn {
		return Move{}, fmt.Errorf("engine returned no column in state %s", gs.Game.State)
	}

	row, err := gs.Game.MakeMove(domain.AutomatedPiece, result.Column)
	if err != nil {
		return Move{}, fmt.Errorf("engine move %d rejected: %w", result.Column, err)
	}
	gs.LastActivity = time.Now()
	if gs.Game.IsFinished() {
		gs.FinishedAt = gs.LastActivity
	}

	score := result.Score
	logger.Component("bot").Debug().
		Str("game_id", gs.GameID).
		Int("column", result.Column).
		Int("score", score).
		Bool("cached", result.Cached).
		Msg("automated move")

	return Move{Player: domain.AutomatedPiece, Column: result.Column, Row: row, Score: &score}, nil
}

func (gs *GameSession) reportLocked(moves []Move) TurnReport {
	return TurnReport{
		Moves:  moves,
		State:  gs.Game.State,
		Result: gs.Game.Result(),
		Board:  gs.Game.Snapshot(),
	}
}

// Report returns the current state without changing anything.
func (gs *GameSession) Report() TurnReport {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.reportLocked(nil)
}

func (gs *GameSession) Info() SessionInfo {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return SessionInfo{
		GameID:       gs.GameID,
		State:        gs.Game.State,
		Result:       gs.Game.Result(),
		Difficulty:   gs.Difficulty,
		MoveCount:    gs.Game.MoveCount,
		CreatedAt:    gs.CreatedAt,
		LastActivity: gs.LastActivity,
	}
}

// SessionManager manages active game sessions
type SessionManager struct {
	Session map[string]*GameSession // gameID → GameSession
	mu      sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		Session: make(map[string]*GameSession),
	}
}

func (sm *SessionManager) Add(session *GameSession) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.Session[session.GameID] = session
	logger.Component("session").Info().Str("game_id", session.GameID).Str("difficulty", string(session.Difficulty)).Msg("created session")
}

func (sm *SessionManager) GetSessionByGameID(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.Session[gameID]; !exists {
		return fmt.Errorf("session %s not found", gameID)
	}
	delete(sm.Session, gameID)
	logger.Component("session").Debug().Str("game_id", gameID).Msg("removed session")
	return nil
}

// ActiveGames lists sessions that are still being played, oldest first.
func (sm *SessionManager) ActiveGames() []SessionInfo {
	sm.mu.RLock()
	sessions := make([]*GameSession, 0, len(sm.Session))
	for _, s := range sm.Session {
		sessions = append(sessions, s)
	}
	sm.mu.RUnlock()

	infos := make([]SessionInfo, 0, len(sessions))
	for _, s := range sessions {
		info := s.Info()
		if info.Result == domain.ResultInProgress {
			infos = append(infos, info)
		}
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CreatedAt.Before(infos[j].CreatedAt)
	})
	return infos
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Session)
}

// CleanupIdleSessions drops sessions untouched for longer than maxIdle and
// returns how many were removed. A session whose lock is held is mid-turn,
// so it is skipped rather than waited on.
func (sm *SessionManager) CleanupIdleSessions(now time.Time, maxIdle time.Duration) int {
	sm.mu.RLock()
	sessions := make([]*GameSession, 0, len(sm.Session))
	for _, s := range sm.Session {
		sessions = append(sessions, s)
	}
	sm.mu.RUnlock()

	var idle []*GameSession
	for _, session := range sessions {
		if !session.mu.TryLock() {
			continue
		}
		if now.Sub(session.LastActivity) > maxIdle {
			idle = append(idle, session)
		}
		session.mu.Unlock()
	}

	if len(idle) == 0 {
		return 0
	}

	sm.mu.Lock()
	count := 0
	for _, session := range idle {
		if sm.Session[session.GameID] == session {
			delete(sm.Session, session.GameID)
			count++
		}
	}
	sm.mu.Unlock()

	if count > 0 {
		logger.Component("session").Info().Int("removed", count).Msg("memory cleanup: removed idle game sessions")
	}
	return count
}
