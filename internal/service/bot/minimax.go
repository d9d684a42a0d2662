package bot

import (
	"math"
	"time"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// Minimax is BestMove without pruning. It visits the whole tree up to depth and
// is only useful as a reference to measure or check the pruned search.
func Minimax(pos *domain.Position, depth int) SearchResult {
	if depth < 1 {
		depth = 1
	}

	start := time.Now()
	stats := &Stats{}
	board := pos.Board

	bestCol := -1
	bestScore := math.MinInt32

	for _, col := range orderMoves(board) {
		board.MakeMove(col, domain.Bot)
		score := minimax(board, depth-1, false, stats)
		board.UndoMove(col)

		if score > bestScore {
			bestScore = score
			bestCol = col
		}
	}

	return SearchResult{
		Column:  bestCol,
		Score:   bestScore,
		Nodes:   stats.Nodes,
		Elapsed: time.Since(start),
	}
}

func minimax(board *domain.Board, depth int, isMaximizing bool, stats *Stats) int {
	stats.Nodes++

	switch board.CheckWinner() {
	case domain.Human:
		return -SCORE_WIN - depth
	case domain.Bot:
		return SCORE_WIN + depth
	}
	if depth == 0 || board.IsFull() {
		return Evaluate(board)
	}

	player := domain.Human
	best := math.MaxInt32
	if isMaximizing {
		player = domain.Bot
		best = math.MinInt32
	}

	for _, col := range orderMoves(board) {
		board.MakeMove(col, player)
		eval := minimax(board, depth-1, !isMaximizing, stats)
		board.UndoMove(col)

		if isMaximizing {
			best = max(best, eval)
		} else {
			best = min(best, eval)
		}
	}
	return best
}
