package domain

// CheckWinner scans every window of four on the board and returns the owner of
// the first complete line found, or Empty. All four orientations are checked.
func (b *Board) CheckWinner() PlayerID {
	c := &b.cells

	// horizontal
	for row := 0; row < Rows; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			p := c[row][col]
			if p != Empty && p == c[row][col+1] && p == c[row][col+2] && p == c[row][col+3] {
				return p
			}
		}
	}

	// vertical
	for row := 0; row <= Rows-ToWin; row++ {
		for col := 0; col < Columns; col++ {
			p := c[row][col]
			if p != Empty && p == c[row+1][col] && p == c[row+2][col] && p == c[row+3][col] {
				return p
			}
		}
	}

	// diagonal /, anchored on the bottom half
	for row := ToWin - 1; row < Rows; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			p := c[row][col]
			if p != Empty && p == c[row-1][col+1] && p == c[row-2][col+2] && p == c[row-3][col+3] {
				return p
			}
		}
	}

	// diagonal \, anchored on the top half
	for row := 0; row <= Rows-ToWin; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			p := c[row][col]
			if p != Empty && p == c[row+1][col+1] && p == c[row+2][col+2] && p == c[row+3][col+3] {
				return p
			}
		}
	}

	return Empty
}

// CheckWinAt only checks the lines passing through (row, column). It is enough
// after a single drop, where any new line must contain the dropped disk.
func (b *Board) CheckWinAt(row, column int) bool {
	player := b.cells[row][column]
	if player == Empty {
		return false
	}

	// horizontal
	count := 0
	for c := 0; c < Columns; c++ {
		if b.cells[row][c] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
	}

	// vertical
	count = 0
	for r := 0; r < Rows; r++ {
		if b.cells[r][column] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
	}

	// diagonal \
	count = 0
	startRow, startCol := row, column
	for startRow > 0 && startCol > 0 {
		startRow--
		startCol--
	}
	for startRow < Rows && startCol < Columns {
		if b.cells[startRow][startCol] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
		startRow++
		startCol++
	}

	// diagonal /
	count = 0
	startRow, startCol = row, column
	for startRow < Rows-1 && startCol > 0 {
		startRow++
		startCol--
	}
	for startRow >= 0 && startCol < Columns {
		if b.cells[startRow][startCol] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
		startRow--
		startCol++
	}

	return false
}
