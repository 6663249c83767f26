package bot

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
)

// Window scores, checked in this order; the first matching rule wins.
const (
	SCORE_FOUR        = 100 // four of our own
	SCORE_THREE       = 10  // three of ours, one open cell
	SCORE_TWO         = 4   // two of ours, two open cells
	SCORE_BLOCK_THREE = -80 // three of theirs, one open cell
	SCORE_BLOCK_TWO   = -5  // two of theirs, two open cells
)

// EvaluateWindow scores four cells from player's point of view.
func EvaluateWindow(window [domain.ToWin]domain.PlayerID, player domain.PlayerID) int {
	opponent := player.Opponent()
	mine, theirs, empty := 0, 0, 0
	for _, cell := range window {
		switch cell {
		case player:
			mine++
		case opponent:
			theirs++
		default:
			empty++
		}
	}

	switch {
	case mine == 4:
		return SCORE_FOUR
	case mine == 3 && empty == 1:
		return SCORE_THREE
	case mine == 2 && empty == 2:
		return SCORE_TWO
	case theirs == 3 && empty == 1:
		return SCORE_BLOCK_THREE
	case theirs == 2 && empty == 2:
		return SCORE_BLOCK_TWO
	default:
		return 0
	}
}

// ScorePosition sums EvaluateWindow over every horizontal, vertical and
// diagonal window of the board.
func ScorePosition(board *domain.Board, player domain.PlayerID) int {
	score := 0
	forEachWindow(board, func(window [domain.ToWin]domain.PlayerID) {
		score += EvaluateWindow(window, player)
	})
	return score
}

// forEachWindow visits the 69 windows of a 6x7 board: right, down,
// down-right and up-right from every start cell that keeps the window on the grid.
func forEachWindow(board *domain.Board, visit func([domain.ToWin]domain.PlayerID)) {
	directions := [][2]int{
		{0, 1},  // horizontal
		{1, 0},  // vertical
		{1, 1},  // diagonal \
		{-1, 1}, // diagonal /
	}

	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			for _, dir := range directions {
				dRow, dCol := dir[0], dir[1]
				endRow := row + dRow*(domain.ToWin-1)
				endCol := col + dCol*(domain.ToWin-1)
				if !isInBounds(endRow, endCol) {
					continue
				}

				var window [domain.ToWin]domain.PlayerID
				for k := 0; k < domain.ToWin; k++ {
					window[k] = board[row+dRow*k][col+dCol*k]
				}
				visit(window)
			}
		}
	}
}

// Helper: check if position is within board bounds
func isInBounds(row, col int) bool {
	return row >= 0 && row < domain.Rows && col >= 0 && col < domain.Columns
}
