package bot

import (
	"github.com/iamasit07/connect4-ai/internal/domain"
)

const (
	SCORE_WIN         = 1000 // terminal win for the engine, loss is the negation
	SCORE_DRAW        = 0    // full board, no winner
	SCORE_CENTER_DISK = 3    // per engine disk in the center column
	SCORE_THREE_OPEN  = 50   // engine has three and the fourth cell is empty
	SCORE_BLOCK_THREE = 100  // opponent has three and the fourth cell is empty
	SCORE_TWO_OPEN    = 2    // engine has two and the other two cells are empty
)

// Evaluate scores a leaf reached at the search horizon from the engine's
// (Player2) point of view.
func Evaluate(board *domain.Board) int {
	switch board.CheckWinner() {
	case domain.Bot:
		return SCORE_WIN
	case domain.Human:
		return -SCORE_WIN
	}
	if board.IsFull() {
		return SCORE_DRAW
	}

	score := 0
	for row := 0; row < domain.Rows; row++ {
		if board.At(row, domain.CenterCol) == domain.Bot {
			score += SCORE_CENTER_DISK
		}
	}

	return score + quickThreatScore(board)
}

// quickThreatScore only looks at horizontal windows. Vertical and diagonal
// threats are left to the search's terminal detection.
func quickThreatScore(board *domain.Board) int {
	score := 0
	for row := 0; row < domain.Rows; row++ {
		for col := 0; col <= domain.Columns-domain.ToWin; col++ {
			bot, human, empty := 0, 0, 0
			for i := 0; i < domain.ToWin; i++ {
				switch board.At(row, col+i) {
				case domain.Bot:
					bot++
				case domain.Human:
					human++
				default:
					empty++
				}
			}

			switch {
			case bot == 3 && empty == 1:
				score += SCORE_THREE_OPEN
			case human == 3 && empty == 1:
				score -= SCORE_BLOCK_THREE
			case bot == 2 && empty == 2:
				score += SCORE_TWO_OPEN
			}
		}
	}
	return score
}
