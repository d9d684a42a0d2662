package domain

// Board is the 6x7 grid. board[0] is the top row, board[Rows-1] the bottom.
// It is a value type so copying a Board copies the whole grid.
type Board struct {
	cells [Rows][Columns]PlayerID
	moves int
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) At(row, col int) PlayerID {
	return b.cells[row][col]
}

func (b *Board) MoveCount() int {
	return b.moves
}

func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}
	return b.cells[0][column] == Empty
}

// MakeMove drops a disk for player into column. It reports false and leaves
// the board untouched when the column is out of range or already full.
func (b *Board) MakeMove(column int, player PlayerID) bool {
	if column < 0 || column >= Columns {
		return false
	}
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			b.cells[row][column] = player
			b.moves++
			return true
		}
	}
	return false
}

// UndoMove removes the top disk of column. Callers must undo in the reverse
// order of their MakeMove calls on that column.
func (b *Board) UndoMove(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}
	for row := 0; row < Rows; row++ {
		if b.cells[row][column] != Empty {
			b.cells[row][column] = Empty
			b.moves--
			return true
		}
	}
	return false
}

// DropRow returns the row a disk dropped into column would land on, or -1.
func (b *Board) DropRow(column int) int {
	if !b.IsValidMove(column) {
		return -1
	}
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			return row
		}
	}
	return -1
}

func (b *Board) ValidMoves() []int {
	validMoves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.IsValidMove(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

func (b *Board) IsFull() bool {
	return len(b.ValidMoves()) == 0
}

// Grid is the wire shape of the board: 6 rows of 7 ints, top row first.
func (b *Board) Grid() [][]int {
	grid := make([][]int, Rows)
	for r := range grid {
		grid[r] = make([]int, Columns)
		for c := range grid[r] {
			grid[r][c] = int(b.cells[r][c])
		}
	}
	return grid
}

// BoardFromGrid rebuilds a board from its wire shape. The move counter is the
// number of occupied cells.
func BoardFromGrid(grid [][]int) (*Board, error) {
	if len(grid) != Rows {
		return nil, ErrInvalidSnapshot
	}
	b := NewBoard()
	for r := range grid {
		if len(grid[r]) != Columns {
			return nil, ErrInvalidSnapshot
		}
		for c, v := range grid[r] {
			p := PlayerID(v)
			if p != Empty && p != Player1 && p != Player2 {
				return nil, ErrInvalidSnapshot
			}
			b.cells[r][c] = p
			if p != Empty {
				b.moves++
			}
		}
	}

	// no floating disks: once a column has a disk, every cell below is filled
	for c := 0; c < Columns; c++ {
		seen := false
		for r := 0; r < Rows; r++ {
			if b.cells[r][c] != Empty {
				seen = true
			} else if seen {
				return nil, ErrInvalidSnapshot
			}
		}
	}
	return b, nil
}
