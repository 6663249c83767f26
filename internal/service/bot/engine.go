package bot

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/rs/zerolog/log"
)

// SearchResult is what the engine hands back for one automated turn.
type SearchResult struct {
	Column  int           `json:"column"`
	Score   int           `json:"score"`
	Depth   int           `json:"depth"`
	Nodes   int           `json:"nodes"`
	Elapsed time.Duration `json:"elapsed"`
	Cached  bool          `json:"-"`
}

// MoveCache stores root search results. Implementations may be remote, so
// errors are reported and the engine falls back to searching.
type MoveCache interface {
	Get(ctx context.Context, key string) (SearchResult, bool, error)
	Set(ctx context.Context, key string, result SearchResult) error
}

// Engine picks the automated player's column. It is safe for concurrent use;
// every call searches on its own clone of the board.
type Engine struct {
	depth    int
	tieBreak TieBreak
	cache    MoveCache

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Engine)

func WithDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.depth = depth
		}
	}
}

func WithTieBreak(t TieBreak) Option {
	return func(e *Engine) {
		e.tieBreak = t
	}
}

// WithRand pins the random source used by TieBreakRandom.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithSeed is WithRand with a fresh source for seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func WithCache(cache MoveCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		depth:    MINIMAX_DEPTH,
		tieBreak: TieBreakLowestIndex,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Depth() int {
	return e.depth
}

func (e *Engine) TieBreak() TieBreak {
	return e.tieBreak
}

// BestMove searches for maxPiece on a copy of board. On a finished board the
// result carries domain.NoColumn and the leaf value.
func (e *Engine) BestMove(ctx context.Context, board *domain.Board, maxPiece domain.PlayerID) SearchResult {
	return e.BestMoveAtDepth(ctx, board, maxPiece, e.depth)
}

// BestMoveAtDepth is BestMove with a per-call depth, used by sessions that
// run at a different difficulty than the engine default.
func (e *Engine) BestMoveAtDepth(ctx context.Context, board *domain.Board, maxPiece domain.PlayerID, depth int) SearchResult {
	if depth <= 0 {
		depth = e.depth
	}

	// random tie-breaks make results non-repeatable, so they bypass the cache
	useCache := e.cache != nil && e.tieBreak == TieBreakLowestIndex
	key := cacheKey(board, maxPiece, depth)

	if useCache {
		cached, ok, err := e.cache.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("component", "bot").Msg("move cache lookup failed")
		} else if ok {
			cached.Cached = true
			return cached
		}
	}

	searcher := &Searcher{
		MaxPiece: maxPiece,
		MinPiece: maxPiece.Opponent(),
		TieBreak: e.tieBreak,
	}
	if e.tieBreak == TieBreakRandom {
		e.mu.Lock()
		searcher.Rand = rand.New(rand.NewSource(e.rng.Int63()))
		e.mu.Unlock()
	}

	start := time.Now()
	column, score := searcher.Search(board.Clone(), depth, true)
	result := SearchResult{
		Column:  column,
		Score:   score,
		Depth:   depth,
		Nodes:   searcher.Nodes(),
		Elapsed: time.Since(start),
	}

	log.Debug().
		Str("component", "bot").
		Int("column", result.Column).
		Int("score", result.Score).
		Int("depth", depth).
		Int("nodes", result.Nodes).
		Dur("elapsed", result.Elapsed).
		Msg("search finished")

	if useCache && result.Column != domain.NoColumn {
		if err := e.cache.Set(ctx, key, result); err != nil {
			log.Warn().Err(err).Str("component", "bot").Msg("move cache store failed")
		}
	}

	return result
}

func cacheKey(board *domain.Board, maxPiece domain.PlayerID, depth int) string {
	return fmt.Sprintf("move:%d:%d:%s", depth, maxPiece, board.String())
}

// ConfigOptions turns configuration values into engine options. An explicit
// depth wins over the difficulty preset.
func ConfigOptions(depth int, difficulty, tieBreak string, seed int64) ([]Option, error) {
	policy, err := ParseTieBreak(tieBreak)
	if err != nil {
		return nil, err
	}
	if depth <= 0 {
		depth = ParseDifficulty(difficulty).Depth()
	}
	return []Option{WithDepth(depth), WithTieBreak(policy), WithSeed(seed)}, nil
}
