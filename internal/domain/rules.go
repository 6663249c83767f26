package domain

// line directions as (deltaRow, deltaCol): right, down, down-right, up-right
var lineDirections = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// HasFourInARow reports whether player owns four consecutive cells in any
// horizontal, vertical or diagonal line.
func HasFourInARow(board *Board, player PlayerID) bool {
	if player == Empty {
		return false
	}

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			for _, dir := range lineDirections {
				if lineOwnedBy(board, row, col, dir[0], dir[1], player) {
					return true
				}
			}
		}
	}
	return false
}

// lineOwnedBy checks the ToWin cells starting at (row, col). Windows that
// would leave the grid are never matched.
func lineOwnedBy(board *Board, row, col, dRow, dCol int, player PlayerID) bool {
	endRow := row + dRow*(ToWin-1)
	endCol := col + dCol*(ToWin-1)
	if endRow < 0 || endRow >= Rows || endCol < 0 || endCol >= Columns {
		return false
	}

	for k := 0; k < ToWin; k++ {
		if board[row+dRow*k][col+dCol*k] != player {
			return false
		}
	}
	return true
}

// Winner returns the piece holding four in a row, or Empty.
func Winner(board *Board) PlayerID {
	if HasFourInARow(board, Player1) {
		return Player1
	}
	if HasFourInARow(board, Player2) {
		return Player2
	}
	return Empty
}

// IsTerminal is true once either side has connected four or the board has no
// playable column left.
func IsTerminal(board *Board) bool {
	return HasFourInARow(board, Player1) || HasFourInARow(board, Player2) || board.IsFull()
}

// CheckWin only looks at lines passing through (row, column), the cell that
// was just filled. Cheaper than HasFourInARow after a confirmed move.
func CheckWin(board *Board, row, column int, player PlayerID) bool {
	if row < 0 || row >= Rows || column < 0 || column >= Columns {
		return false
	}
	if board[row][column] != player {
		return false
	}

	for _, dir := range lineDirections {
		forward := CountDiskInDirection(board, row, column, dir[0], dir[1], player)
		backward := CountDiskInDirection(board, row, column, -dir[0], -dir[1], player)
		if forward+backward+1 >= ToWin {
			return true
		}
	}
	return false
}
