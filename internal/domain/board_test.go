package domain

import (
	"errors"
	"math/rand"
	"testing"
)

func TestDropDiskGravity(t *testing.T) {
	b := NewBoard()
	for want := Rows - 1; want >= 0; want-- {
		row, err := b.DropDisk(3, Player1)
		if err != nil {
			t.Fatalf("drop %d: unexpected error %v", Rows-want, err)
		}
		if row != want {
			t.Errorf("drop %d: row=%d, want=%d", Rows-want, row, want)
		}
	}
}

func TestDropDiskFullColumnRejected(t *testing.T) {
	b := NewBoard()
	for i := 0; i < Rows; i++ {
		player := Player1
		if i%2 == 1 {
			player = Player2
		}
		if _, err := b.DropDisk(0, player); err != nil {
			t.Fatalf("drop %d: unexpected error %v", i+1, err)
		}
	}

	before := *b
	row, err := b.DropDisk(0, Player1)
	if !errors.Is(err, ErrColumnFull) {
		t.Fatalf("7th drop: err=%v, want=%v", err, ErrColumnFull)
	}
	if row != NoRow {
		t.Errorf("7th drop: row=%d, want=%d", row, NoRow)
	}
	if *b != before {
		t.Errorf("board changed after rejected drop:\n%s\n%s", before.String(), b.String())
	}
}

func TestDropDiskRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		column int
		player PlayerID
		want   error
	}{
		{"negative column", -1, Player1, ErrInvalidColumn},
		{"column past edge", Columns, Player2, ErrInvalidColumn},
		{"empty piece", 2, Empty, ErrInvalidMove},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard()
			if _, err := b.DropDisk(tc.column, tc.player); !errors.Is(err, tc.want) {
				t.Errorf("err=%v, want=%v", err, tc.want)
			}
			if *b != (Board{}) {
				t.Errorf("board mutated: %s", b.String())
			}
		})
	}
}

func TestGravityInvariantRandomGames(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 200; game++ {
		b := NewBoard()
		player := Player1
		for move := 0; move < Rows*Columns+10; move++ {
			// out of range and full columns are part of the sample on purpose
			col := rng.Intn(Columns+2) - 1
			if _, err := b.DropDisk(col, player); err == nil {
				player = player.Opponent()
			}
		}

		for c := 0; c < Columns; c++ {
			for r := 1; r < Rows; r++ {
				if b[r][c] == Empty && b[r-1][c] != Empty {
					t.Fatalf("game %d: floating disk at row %d col %d\n%s", game, r-1, c, b.String())
				}
			}
		}
	}
}

func TestValidColumnsAndLowestEmptyRow(t *testing.T) {
	b, err := ParseBoard(
		"X.....O",
		"O.....X",
		"X.....O",
		"O.....X",
		"X..X..O",
		"O..O..X",
	)
	if err != nil {
		t.Fatal(err)
	}

	got := b.ValidColumns()
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("ValidColumns=%v, want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ValidColumns=%v, want=%v", got, want)
		}
	}

	rows := map[int]int{0: NoRow, 1: 5, 3: 3, 6: NoRow, -1: NoRow, Columns: NoRow}
	for col, wantRow := range rows {
		if row := b.LowestEmptyRow(col); row != wantRow {
			t.Errorf("LowestEmptyRow(%d)=%d, want=%d", col, row, wantRow)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	b.DropDisk(2, Player1)

	clone := b.Clone()
	clone.DropDisk(2, Player2)
	clone.DropDisk(4, Player2)

	if b.PieceCount(Player2) != 0 {
		t.Errorf("original board sees clone's disks: %s", b.String())
	}
	if clone.PieceCount(Player1) != 1 || clone.PieceCount(Player2) != 2 {
		t.Errorf("clone lost disks: %s", clone.String())
	}
}

func TestSimulateMoveLeavesSourceUntouched(t *testing.T) {
	b := NewBoard()
	sim, row, err := SimulateMove(b, 5, Player2)
	if err != nil {
		t.Fatal(err)
	}
	if row != Rows-1 || sim[row][5] != Player2 {
		t.Errorf("simulated drop landed at row %d: %s", row, sim.String())
	}
	if *b != (Board{}) {
		t.Errorf("source board mutated: %s", b.String())
	}
}

func TestParseBoardRejectsFloatingDisk(t *testing.T) {
	_, err := ParseBoard(
		".......",
		".......",
		".......",
		"...X...",
		".......",
		".......",
	)
	if err == nil {
		t.Error("expected gravity error, got nil")
	}
}

func TestSnapshotMatchesGrid(t *testing.T) {
	b := NewBoard()
	b.DropDisk(6, Player2)
	snap := b.Snapshot()
	if len(snap) != Rows || len(snap[0]) != Columns {
		t.Fatalf("snapshot is %dx%d", len(snap), len(snap[0]))
	}
	if snap[Rows-1][6] != int(Player2) {
		t.Errorf("snapshot[5][6]=%d, want=%d", snap[Rows-1][6], Player2)
	}
	snap[0][0] = 9
	if b[0][0] != Empty {
		t.Error("snapshot aliases the board")
	}
}
