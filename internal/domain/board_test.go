package domain

import (
	"math/rand"
	"reflect"
	"testing"
)

// boardFromRows builds a board from 6 strings, top row first, using
// '.' for empty and '1'/'2' for disks.
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	grid := make([][]int, len(rows))
	for r, line := range rows {
		grid[r] = make([]int, len(line))
		for c, ch := range line {
			switch ch {
			case '1':
				grid[r][c] = 1
			case '2':
				grid[r][c] = 2
			}
		}
	}
	b, err := BoardFromGrid(grid)
	if err != nil {
		t.Fatalf("BoardFromGrid: %v", err)
	}
	return b
}

func TestMakeMoveFillsFromBottom(t *testing.T) {
	b := NewBoard()
	for i := 0; i < Rows; i++ {
		player := Player1
		if i%2 == 1 {
			player = Player2
		}
		if !b.MakeMove(3, player) {
			t.Fatalf("drop %d into column 3 failed", i)
		}
		if got := b.At(Rows-1-i, 3); got != player {
			t.Fatalf("drop %d landed wrong: row %d has %d", i, Rows-1-i, got)
		}
	}
	if b.MoveCount() != Rows {
		t.Fatalf("move count = %d, want %d", b.MoveCount(), Rows)
	}

	before := *b
	if b.MakeMove(3, Player1) {
		t.Fatalf("drop into full column succeeded")
	}
	if *b != before {
		t.Fatalf("failed drop mutated the board")
	}
	if b.IsValidMove(3) {
		t.Fatalf("full column reported valid")
	}
}

func TestIsValidMoveRange(t *testing.T) {
	b := NewBoard()
	for _, col := range []int{-1, Columns, 100} {
		if b.IsValidMove(col) {
			t.Errorf("IsValidMove(%d) = true", col)
		}
		if b.MakeMove(col, Player1) {
			t.Errorf("MakeMove(%d) = true", col)
		}
		if b.UndoMove(col) {
			t.Errorf("UndoMove(%d) = true", col)
		}
	}
	for col := 0; col < Columns; col++ {
		if !b.IsValidMove(col) {
			t.Errorf("IsValidMove(%d) = false on empty board", col)
		}
	}
}

func TestUndoMoveEmptyColumn(t *testing.T) {
	b := NewBoard()
	if b.UndoMove(0) {
		t.Fatalf("undo on empty column succeeded")
	}
	if b.MoveCount() != 0 {
		t.Fatalf("undo on empty column changed move count to %d", b.MoveCount())
	}
}

func TestMakeUndoRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 50; game++ {
		b := NewBoard()
		player := Player1
		for !b.IsFull() {
			before := *b
			beforeMoves := b.ValidMoves()
			for _, col := range beforeMoves {
				if !b.MakeMove(col, player) {
					t.Fatalf("valid move %d rejected", col)
				}
				if !b.UndoMove(col) {
					t.Fatalf("undo of %d failed", col)
				}
				if *b != before {
					t.Fatalf("make/undo on column %d did not restore the board", col)
				}
				if !reflect.DeepEqual(b.ValidMoves(), beforeMoves) {
					t.Fatalf("make/undo on column %d changed the valid moves", col)
				}
			}

			moves := b.ValidMoves()
			b.MakeMove(moves[rng.Intn(len(moves))], player)
			player = player.Opponent()
		}
	}
}

func TestNestedUndoIsLIFO(t *testing.T) {
	b := NewBoard()
	start := *b
	cols := []int{3, 3, 2, 4, 3, 2}
	player := Player1
	for _, col := range cols {
		b.MakeMove(col, player)
		player = player.Opponent()
	}
	for i := len(cols) - 1; i >= 0; i-- {
		if !b.UndoMove(cols[i]) {
			t.Fatalf("undo %d failed", i)
		}
	}
	if *b != start {
		t.Fatalf("unwinding the move stack did not restore the empty board")
	}
}

func TestFullBoard(t *testing.T) {
	b := boardFromRows(t,
		"1212121",
		"1212121",
		"2121212",
		"2121212",
		"1212121",
		"1212121",
	)
	if got := b.ValidMoves(); len(got) != 0 {
		t.Fatalf("valid moves on full board = %v", got)
	}
	if !b.IsFull() {
		t.Fatalf("IsFull = false on full board")
	}
	if b.CheckWinner() != Empty {
		t.Fatalf("expected no winner on the drawn board")
	}
}

func TestValidMovesAscending(t *testing.T) {
	b := boardFromRows(t,
		".1...2.",
		".2...1.",
		".1...2.",
		".2...1.",
		".1...2.",
		".2...1.",
	)
	want := []int{0, 2, 3, 4, 6}
	if got := b.ValidMoves(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ValidMoves = %v, want %v", got, want)
	}
}

func TestGridShape(t *testing.T) {
	b := NewBoard()
	b.MakeMove(0, Player1)
	b.MakeMove(6, Player2)

	grid := b.Grid()
	if len(grid) != Rows {
		t.Fatalf("grid has %d rows", len(grid))
	}
	for r := range grid {
		if len(grid[r]) != Columns {
			t.Fatalf("row %d has %d cells", r, len(grid[r]))
		}
	}
	if grid[Rows-1][0] != 1 || grid[Rows-1][6] != 2 {
		t.Fatalf("bottom row = %v", grid[Rows-1])
	}
	if grid[0][0] != 0 {
		t.Fatalf("top row should be empty, got %v", grid[0])
	}
}

func TestBoardFromGridRejects(t *testing.T) {
	tests := []struct {
		name string
		grid [][]int
	}{
		{"too few rows", make([][]int, 5)},
		{"short row", [][]int{{0}, {0}, {0}, {0}, {0}, {0}}},
		{"bad value", [][]int{
			{0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0},
			{3, 0, 0, 0, 0, 0, 0},
		}},
		{"floating disk", [][]int{
			{0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0},
			{0, 0, 1, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BoardFromGrid(tt.grid); err != ErrInvalidSnapshot {
				t.Fatalf("err = %v, want %v", err, ErrInvalidSnapshot)
			}
		})
	}
}
