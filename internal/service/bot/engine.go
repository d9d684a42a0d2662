package bot

import (
	"math"
	"time"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/rs/zerolog/log"
)

const DEFAULT_DEPTH = 5

// columns by ascending distance from the center, ties in column order
var centerOrder = [domain.Columns]int{3, 2, 4, 1, 5, 0, 6}

// Stats accumulates counters over one top-level search.
type Stats struct {
	Nodes   uint64 // alphaBeta calls
	Cutoffs uint64 // nodes whose remaining siblings were pruned
}

type SearchResult struct {
	Column  int
	Score   int
	Nodes   uint64
	Cutoffs uint64
	Elapsed time.Duration
}

// Engine searches a fixed number of plies for the side playing domain.Bot.
type Engine struct {
	Depth int
}

func NewEngine(depth int) *Engine {
	if depth < 1 {
		depth = 1
	}
	return &Engine{Depth: depth}
}

func (e *Engine) BestMove(pos *domain.Position) SearchResult {
	return BestMove(pos, e.Depth)
}

// BestMove runs a depth-limited alpha-beta search for domain.Bot on the
// position's board. The board is mutated during the search and restored before
// returning, so the caller must not share it with anything else meanwhile.
// Column is -1 when there is no legal move.
func BestMove(pos *domain.Position, depth int) SearchResult {
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
		score := alphaBeta(board, depth-1, math.MinInt32, math.MaxInt32, false, stats)
		board.UndoMove(col)

		if score > bestScore {
			bestScore = score
			bestCol = col
		}
	}

	result := SearchResult{
		Column:  bestCol,
		Score:   bestScore,
		Nodes:   stats.Nodes,
		Cutoffs: stats.Cutoffs,
		Elapsed: time.Since(start),
	}

	log.Debug().
		Str("component", "bot").
		Int("depth", depth).
		Int("column", result.Column).
		Int("score", result.Score).
		Uint64("nodes", result.Nodes).
		Dur("elapsed", result.Elapsed).
		Msg("best-move")

	return result
}

// alphaBeta returns the minimax value of board from the engine's point of view.
// Terminal scores carry the remaining depth so that sooner wins score higher
// and sooner losses score lower.
func alphaBeta(board *domain.Board, depth, alpha, beta int, isMaximizing bool, stats *Stats) int {
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

	if isMaximizing {
		maxEval := math.MinInt32
		for _, col := range orderMoves(board) {
			board.MakeMove(col, domain.Bot)
			eval := alphaBeta(board, depth-1, alpha, beta, false, stats)
			board.UndoMove(col)

			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				stats.Cutoffs++
				break
			}
		}
		return maxEval
	}

	minEval := math.MaxInt32
	for _, col := range orderMoves(board) {
		board.MakeMove(col, domain.Human)
		eval := alphaBeta(board, depth-1, alpha, beta, true, stats)
		board.UndoMove(col)

		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			stats.Cutoffs++
			break
		}
	}
	return minEval
}

// orderMoves returns the playable columns center first.
func orderMoves(board *domain.Board) []int {
	moves := make([]int, 0, domain.Columns)
	for _, col := range centerOrder {
		if board.IsValidMove(col) {
			moves = append(moves, col)
		}
	}
	return moves
}
