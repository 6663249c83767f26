package domain

import (
	"fmt"
	"strings"
)

// Board is the 6x7 grid. Row 0 is the top row and row 5 the bottom one.
type Board [Rows][Columns]PlayerID

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// board[0] is the top row, a column is playable while its top cell is free
	return b[0][column] == Empty
}

// LowestEmptyRow returns the row the next disk dropped in column lands on,
// or NoRow if the column is full or out of range.
func (b *Board) LowestEmptyRow(column int) int {
	if column < 0 || column >= Columns {
		return NoRow
	}
	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			return row
		}
	}
	return NoRow
}

// DropDisk is the only way pieces enter a board. The board is left untouched
// when an error is returned.
func (b *Board) DropDisk(column int, player PlayerID) (int, error) {
	if player != Player1 && player != Player2 {
		return NoRow, ErrInvalidMove
	}
	if column < 0 || column >= Columns {
		return NoRow, ErrInvalidColumn
	}

	row := b.LowestEmptyRow(column)
	if row == NoRow {
		return NoRow, ErrColumnFull
	}

	b[row][column] = player
	return row, nil
}

func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b[0][c] == Empty {
			return false
		}
	}

	return true
}

// ValidColumns lists the playable columns in ascending order.
func (b *Board) ValidColumns() []int {
	validMoves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.IsValidMove(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// Clone returns an independently owned copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Snapshot converts the grid into plain ints for rendering and JSON.
func (b *Board) Snapshot() [][]int {
	grid := make([][]int, Rows)
	for i := range grid {
		grid[i] = make([]int, Columns)
		for j := range grid[i] {
			grid[i][j] = int(b[i][j])
		}
	}
	return grid
}

// PieceCount returns how many disks of player are on the board.
func (b *Board) PieceCount(player PlayerID) int {
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b[row][col] == player {
				count++
			}
		}
	}
	return count
}

var cellRunes = map[PlayerID]byte{
	Empty:   '.',
	Player1: 'X',
	Player2: 'O',
}

// String renders the board top row first, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			sb.WriteByte(cellRunes[b[row][col]])
		}
		if row < Rows-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// ParseBoard builds a board from Rows strings of Columns cells each, top row
// first, using '.', 'X' (human) and 'O' (automated). Boards that break gravity
// are rejected.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) != Rows {
		return nil, fmt.Errorf("expected %d rows, got %d", Rows, len(rows))
	}

	b := NewBoard()
	for r, line := range rows {
		if len(line) != Columns {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", r, Columns, len(line))
		}
		for c := 0; c < Columns; c++ {
			switch line[c] {
			case '.':
				b[r][c] = Empty
			case 'X':
				b[r][c] = Player1
			case 'O':
				b[r][c] = Player2
			default:
				return nil, fmt.Errorf("row %d col %d: unknown cell %q", r, c, line[c])
			}
		}
	}

	for c := 0; c < Columns; c++ {
		for r := 1; r < Rows; r++ {
			if b[r][c] == Empty && b[r-1][c] != Empty {
				return nil, fmt.Errorf("col %d: disk floating above row %d", c, r)
			}
		}
	}
	return b, nil
}

// SimulateMove drops a disk on a copy of board and returns the copy.
func SimulateMove(board *Board, column int, player PlayerID) (*Board, int, error) {
	newBoard := board.Clone()
	row, err := newBoard.DropDisk(column, player)
	if err != nil {
		return nil, NoRow, err
	}
	return newBoard, row, nil
}

// this counts the number of disks in a specific direction
func CountDiskInDirection(board *Board, row, column int, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && board[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
