package bot

import (
	"testing"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

const (
	E = domain.Empty
	X = domain.Player1
	O = domain.Player2
)

func TestEvaluateWindow(t *testing.T) {
	tests := []struct {
		name   string
		window [domain.ToWin]domain.PlayerID
		want   int
	}{
		{"four", [4]domain.PlayerID{X, X, X, X}, SCORE_FOUR},
		{"open three", [4]domain.PlayerID{X, X, E, X}, SCORE_THREE},
		{"open two", [4]domain.PlayerID{E, X, X, E}, SCORE_TWO},
		{"opponent three", [4]domain.PlayerID{O, O, O, E}, SCORE_BLOCK_THREE},
		{"opponent two", [4]domain.PlayerID{O, E, E, O}, SCORE_BLOCK_TWO},
		{"opponent four", [4]domain.PlayerID{O, O, O, O}, 0},
		{"mixed", [4]domain.PlayerID{X, O, X, E}, 0},
		{"three blocked", [4]domain.PlayerID{X, X, X, O}, 0},
		{"single", [4]domain.PlayerID{E, E, X, E}, 0},
		{"empty", [4]domain.PlayerID{E, E, E, E}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EvaluateWindow(tc.window, X); got != tc.want {
				t.Errorf("EvaluateWindow(%v)=%d, want=%d", tc.window, got, tc.want)
			}
		})
	}
}

func TestEvaluateWindowPerspective(t *testing.T) {
	tests := []struct {
		window     [domain.ToWin]domain.PlayerID
		forX, forO int
	}{
		{[4]domain.PlayerID{X, X, X, E}, SCORE_THREE, SCORE_BLOCK_THREE},
		{[4]domain.PlayerID{E, X, E, X}, SCORE_TWO, SCORE_BLOCK_TWO},
		{[4]domain.PlayerID{O, E, O, O}, SCORE_BLOCK_THREE, SCORE_THREE},
		{[4]domain.PlayerID{O, O, E, E}, SCORE_BLOCK_TWO, SCORE_TWO},
	}

	for _, tc := range tests {
		if got := EvaluateWindow(tc.window, X); got != tc.forX {
			t.Errorf("%v for X: got=%d, want=%d", tc.window, got, tc.forX)
		}
		if got := EvaluateWindow(tc.window, O); got != tc.forO {
			t.Errorf("%v for O: got=%d, want=%d", tc.window, got, tc.forO)
		}
	}
}

func TestScorePosition(t *testing.T) {
	if got := ScorePosition(domain.NewBoard(), X); got != 0 {
		t.Errorf("empty board: got=%d, want=0", got)
	}

	single := domain.NewBoard()
	single.DropDisk(3, X)
	if got := ScorePosition(single, X); got != 0 {
		t.Errorf("single disk: got=%d, want=0", got)
	}

	// only the bottom-row window starting at column 0 holds both disks
	pair := domain.NewBoard()
	pair.DropDisk(0, X)
	pair.DropDisk(1, X)
	if got := ScorePosition(pair, X); got != SCORE_TWO {
		t.Errorf("pair for X: got=%d, want=%d", got, SCORE_TWO)
	}
	if got := ScorePosition(pair, O); got != SCORE_BLOCK_TWO {
		t.Errorf("pair for O: got=%d, want=%d", got, SCORE_BLOCK_TWO)
	}
}

func TestForEachWindowCount(t *testing.T) {
	count := 0
	forEachWindow(domain.NewBoard(), func([domain.ToWin]domain.PlayerID) { count++ })

	// 24 horizontal + 21 vertical + 12 per diagonal direction
	if count != 69 {
		t.Errorf("windows=%d, want=69", count)
	}
}
