package bot

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

const (
	MINIMAX_DEPTH = 4
	MINIMAX_WIN   = 100000
	MINIMAX_LOSS  = -100000
)

// TieBreak decides which column survives when several children share the
// best score.
type TieBreak int

const (
	// TieBreakLowestIndex keeps the first (lowest) column among equal scores.
	TieBreakLowestIndex TieBreak = iota
	// TieBreakRandom seeds the best-so-far with a uniformly random valid
	// column; only a strictly better column replaces it.
	TieBreakRandom
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakRandom:
		return "random"
	default:
		return "lowest"
	}
}

// ParseTieBreak accepts "lowest" and "random" (case insensitive).
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lowest", "lowest_index", "lowest-index":
		return TieBreakLowestIndex, nil
	case "random":
		return TieBreakRandom, nil
	default:
		return TieBreakLowestIndex, fmt.Errorf("unknown tie-break policy %q", s)
	}
}

// Searcher runs a plain depth-bounded minimax. It holds no state between
// calls apart from the node counter and the random source.
type Searcher struct {
	MaxPiece domain.PlayerID
	MinPiece domain.PlayerID
	TieBreak TieBreak
	// Rand drives TieBreakRandom. Left nil, a clock-seeded source is created
	// on first use.
	Rand *rand.Rand

	nodes int
}

// Minimax searches with the lowest-index tie-break and returns the chosen
// column (domain.NoColumn at a cutoff or terminal node) with its score.
func Minimax(board *domain.Board, depth int, maximizing bool, maxPiece, minPiece domain.PlayerID) (int, int) {
	s := &Searcher{MaxPiece: maxPiece, MinPiece: minPiece}
	return s.Search(board, depth, maximizing)
}

// Nodes returns how many positions the searcher has visited so far.
func (s *Searcher) Nodes() int {
	return s.nodes
}

// Search never mutates board; every branch plays on its own clone.
func (s *Searcher) Search(board *domain.Board, depth int, maximizing bool) (int, int) {
	s.nodes++

	validColumns := board.ValidColumns()
	if depth <= 0 || s.isTerminal(board, validColumns) {
		return domain.NoColumn, s.leafValue(board)
	}

	bestIdx := 0
	if s.TieBreak == TieBreakRandom {
		if s.Rand == nil {
			s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		bestIdx = s.Rand.Intn(len(validColumns))
	}

	piece := s.MinPiece
	if maximizing {
		piece = s.MaxPiece
	}

	scores := make([]int, len(validColumns))
	for i, col := range validColumns {
		child, _, _ := domain.SimulateMove(board, col, piece)
		_, scores[i] = s.Search(child, depth-1, !maximizing)
	}

	for i := range scores {
		if maximizing && scores[i] > scores[bestIdx] {
			bestIdx = i
		} else if !maximizing && scores[i] < scores[bestIdx] {
			bestIdx = i
		}
	}

	return validColumns[bestIdx], scores[bestIdx]
}

func (s *Searcher) isTerminal(board *domain.Board, validColumns []int) bool {
	return len(validColumns) == 0 ||
		domain.HasFourInARow(board, s.MaxPiece) ||
		domain.HasFourInARow(board, s.MinPiece)
}

func (s *Searcher) leafValue(board *domain.Board) int {
	if domain.HasFourInARow(board, s.MaxPiece) {
		return MINIMAX_WIN
	}
	if domain.HasFourInARow(board, s.MinPiece) {
		return MINIMAX_LOSS
	}
	return ScorePosition(board, s.MaxPiece)
}
