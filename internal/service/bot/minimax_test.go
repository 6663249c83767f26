package bot

import (
	"math/rand"
	"testing"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

func mustParse(t *testing.T, rows ...string) *domain.Board {
	t.Helper()
	b, err := domain.ParseBoard(rows...)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	return b
}

// human (X) threatens the bottom row, engine (O) to move
func leftThreat(t *testing.T) *domain.Board {
	return mustParse(t,
		".......",
		".......",
		".......",
		".......",
		"OO.....",
		"XXX....",
	)
}

func rightThreat(t *testing.T) *domain.Board {
	return mustParse(t,
		".......",
		".......",
		".......",
		".......",
		".....OO",
		"....XXX",
	)
}

func TestMinimaxTerminalShortCircuit(t *testing.T) {
	won := mustParse(t,
		".......",
		".......",
		"O......",
		"O......",
		"OX.....",
		"OXX....",
	)

	for depth := 0; depth <= 5; depth++ {
		for _, maximizing := range []bool{true, false} {
			s := &Searcher{MaxPiece: O, MinPiece: X}
			col, score := s.Search(won, depth, maximizing)
			if col != domain.NoColumn || score != MINIMAX_WIN {
				t.Errorf("depth=%d max=%v: got (%d, %d), want (%d, %d)",
					depth, maximizing, col, score, domain.NoColumn, MINIMAX_WIN)
			}
			if s.Nodes() != 1 {
				t.Errorf("depth=%d: explored %d nodes, want 1", depth, s.Nodes())
			}
		}
	}
}

func TestMinimaxOpponentWonBoard(t *testing.T) {
	lost := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		"OOO....",
		"XXXX...",
	)
	col, score := Minimax(lost, 4, true, O, X)
	if col != domain.NoColumn || score != MINIMAX_LOSS {
		t.Errorf("got (%d, %d), want (%d, %d)", col, score, domain.NoColumn, MINIMAX_LOSS)
	}
}

func TestMinimaxDepthZeroIsHeuristic(t *testing.T) {
	b := leftThreat(t)
	col, score := Minimax(b, 0, true, O, X)
	if col != domain.NoColumn {
		t.Errorf("column=%d, want=%d", col, domain.NoColumn)
	}
	if want := ScorePosition(b, O); score != want {
		t.Errorf("score=%d, want=%d", score, want)
	}
}

func TestMinimaxDrawnBoard(t *testing.T) {
	draw := mustParse(t,
		"XOXOXOX",
		"XOXOXOX",
		"OXOXOXO",
		"OXOXOXO",
		"XOXOXOX",
		"XOXOXOX",
	)
	col, score := Minimax(draw, 4, true, O, X)
	if col != domain.NoColumn {
		t.Errorf("column=%d, want=%d", col, domain.NoColumn)
	}
	if want := ScorePosition(draw, O); score != want {
		t.Errorf("score=%d, want=%d", score, want)
	}
}

func TestMinimaxTakesWin(t *testing.T) {
	b := mustParse(t,
		".......",
		".......",
		".......",
		"....O..",
		"....OX.",
		"XX..OX.",
	)
	col, score := Minimax(b, 1, true, O, X)
	if col != 4 || score != MINIMAX_WIN {
		t.Errorf("got (%d, %d), want (4, %d)", col, score, MINIMAX_WIN)
	}
}

func TestMinimaxMinimizingPicksOpponentWin(t *testing.T) {
	b := leftThreat(t)
	col, score := Minimax(b, 1, false, O, X)
	if col != 3 || score != MINIMAX_LOSS {
		t.Errorf("got (%d, %d), want (3, %d)", col, score, MINIMAX_LOSS)
	}
}

func TestMinimaxBlocksIndependentOfColumnOrder(t *testing.T) {
	tests := []struct {
		name  string
		board func(*testing.T) *domain.Board
	}{
		{"threat on the left", leftThreat},
		{"threat on the right", rightThreat},
	}

	for _, tc := range tests {
		for _, depth := range []int{2, 4} {
			b := tc.board(t)
			col, score := Minimax(b, depth, true, O, X)
			if col != 3 {
				t.Errorf("%s depth=%d: column=%d, want=3", tc.name, depth, col)
			}
			if score <= MINIMAX_LOSS {
				t.Errorf("%s depth=%d: score=%d, blocking should avoid the loss", tc.name, depth, score)
			}
		}
	}
}

func TestMinimaxDoesNotMutateBoard(t *testing.T) {
	b := leftThreat(t)
	before := *b
	Minimax(b, 3, true, O, X)
	if *b != before {
		t.Errorf("search mutated the board:\n%s", b.String())
	}
}

func TestMinimaxLowestIndexTieBreak(t *testing.T) {
	s := &Searcher{MaxPiece: O, MinPiece: X}
	col, score := s.Search(domain.NewBoard(), 1, true)
	if col != 0 || score != 0 {
		t.Errorf("got (%d, %d), want (0, 0)", col, score)
	}
	if s.Nodes() != 1+domain.Columns {
		t.Errorf("nodes=%d, want=%d", s.Nodes(), 1+domain.Columns)
	}

	s = &Searcher{MaxPiece: O, MinPiece: X}
	col, _ = s.Search(domain.NewBoard(), 1, false)
	if col != 0 {
		t.Errorf("minimizing: column=%d, want=0", col)
	}
}

func TestMinimaxRandomTieBreak(t *testing.T) {
	seen := make(map[int]bool)
	for seed := int64(1); seed <= 30; seed++ {
		s := &Searcher{MaxPiece: O, MinPiece: X, TieBreak: TieBreakRandom, Rand: rand.New(rand.NewSource(seed))}
		col, score := s.Search(domain.NewBoard(), 1, true)
		if col < 0 || col >= domain.Columns || score != 0 {
			t.Fatalf("seed=%d: got (%d, %d)", seed, col, score)
		}

		again := &Searcher{MaxPiece: O, MinPiece: X, TieBreak: TieBreakRandom, Rand: rand.New(rand.NewSource(seed))}
		if col2, _ := again.Search(domain.NewBoard(), 1, true); col2 != col {
			t.Errorf("seed=%d: not reproducible, %d then %d", seed, col, col2)
		}
		seen[col] = true
	}
	if len(seen) < 2 {
		t.Errorf("random tie-break always chose %v", seen)
	}
}

func TestMinimaxRandomTieBreakKeepsStrictBest(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		s := &Searcher{MaxPiece: O, MinPiece: X, TieBreak: TieBreakRandom, Rand: rand.New(rand.NewSource(seed))}
		if col, _ := s.Search(leftThreat(t), 2, true); col != 3 {
			t.Errorf("seed=%d: column=%d, want=3", seed, col)
		}
	}
}

func TestMinimaxRandomTieBreakWithoutRand(t *testing.T) {
	s := &Searcher{MaxPiece: O, MinPiece: X, TieBreak: TieBreakRandom}
	if col, _ := s.Search(leftThreat(t), 2, true); col != 3 {
		t.Errorf("column=%d, want=3", col)
	}
	if s.Rand == nil {
		t.Error("random policy ran without a random source")
	}
}

func TestParseTieBreak(t *testing.T) {
	tests := []struct {
		in      string
		want    TieBreak
		wantErr bool
	}{
		{"", TieBreakLowestIndex, false},
		{"lowest", TieBreakLowestIndex, false},
		{"RANDOM", TieBreakRandom, false},
		{" random ", TieBreakRandom, false},
		{"first", TieBreakLowestIndex, true},
	}

	for _, tc := range tests {
		got, err := ParseTieBreak(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseTieBreak(%q): err=%v, wantErr=%v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseTieBreak(%q)=%v, want=%v", tc.in, got, tc.want)
		}
	}
}
