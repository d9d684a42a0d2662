package bot

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

func TestEmptyBoardOpensCenter(t *testing.T) {
	for depth := 1; depth <= 7; depth++ {
		pos := domain.NewPosition()
		if got := BestMove(pos, depth).Column; got != domain.CenterCol {
			t.Errorf("depth %d: column %d, want %d", depth, got, domain.CenterCol)
		}
	}
}

func TestBlocksOpenThree(t *testing.T) {
	for depth := 1; depth <= 6; depth++ {
		pos := positionFromRows(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			"111....",
		)
		if got := BestMove(pos, depth).Column; got != 3 {
			t.Errorf("depth %d: column %d, want 3", depth, got)
		}
	}
}

// Column 6 wins at once and is the last column in search order, so it is only
// chosen because its score is strictly better than every slower line.
func TestTakesImmediateWin(t *testing.T) {
	for depth := 1; depth <= 6; depth++ {
		pos := positionFromRows(t,
			".......",
			".......",
			".......",
			"......2",
			"1.1...2",
			"1.1...2",
		)
		result := BestMove(pos, depth)
		if result.Column != 6 {
			t.Errorf("depth %d: column %d, want 6", depth, result.Column)
		}
		if want := SCORE_WIN + depth - 1; result.Score != want {
			t.Errorf("depth %d: score %d, want %d", depth, result.Score, want)
		}
	}
}

func TestTerminalScoresPreferFasterWins(t *testing.T) {
	won := positionFromRows(t,
		".......",
		".......",
		".......",
		".......",
		"111....",
		"2222...",
	).Board
	lost := positionFromRows(t,
		".......",
		".......",
		".......",
		".......",
		"222....",
		"1111...",
	).Board

	prevWin, prevLoss := math.MinInt32, math.MaxInt32
	for depth := 0; depth <= 5; depth++ {
		stats := &Stats{}
		win := alphaBeta(won, depth, math.MinInt32, math.MaxInt32, true, stats)
		loss := alphaBeta(lost, depth, math.MinInt32, math.MaxInt32, false, stats)

		if win != SCORE_WIN+depth {
			t.Fatalf("win with %d plies left scored %d", depth, win)
		}
		if loss != -SCORE_WIN-depth {
			t.Fatalf("loss with %d plies left scored %d", depth, loss)
		}
		// more plies left means the line ended sooner
		if win <= prevWin {
			t.Fatalf("sooner win scored %d, not above %d", win, prevWin)
		}
		if loss >= prevLoss {
			t.Fatalf("sooner loss scored %d, not below %d", loss, prevLoss)
		}
		if stats.Nodes != 2 {
			t.Fatalf("terminal nodes visited %d, want 2", stats.Nodes)
		}
		prevWin, prevLoss = win, loss
	}
}

func TestNodeCounts(t *testing.T) {
	want := map[int]uint64{1: 7, 2: 56, 3: 153, 4: 537, 5: 1425}
	for depth, nodes := range want {
		if got := BestMove(domain.NewPosition(), depth).Nodes; got != nodes {
			t.Errorf("depth %d: %d nodes, want %d", depth, got, nodes)
		}
	}
}

func randomPosition(rng *rand.Rand, plies int) *domain.Position {
	for {
		pos := domain.NewPosition()
		for i := 0; i < plies && !pos.Ended; i++ {
			moves := pos.Board.ValidMoves()
			pos.ApplyMove(moves[rng.Intn(len(moves))], pos.CurrentPlayer)
		}
		if !pos.Ended {
			return pos
		}
	}
}

func TestPruningMatchesMinimax(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 60; i++ {
		pos := randomPosition(rng, rng.Intn(24))
		for depth := 1; depth <= 4; depth++ {
			pruned := BestMove(pos, depth)
			full := Minimax(pos, depth)
			if pruned.Column != full.Column || pruned.Score != full.Score {
				t.Fatalf("position %d depth %d: alpha-beta (%d, %d) vs minimax (%d, %d)\n%v",
					i, depth, pruned.Column, pruned.Score, full.Column, full.Score, pos.Board.Grid())
			}
			if pruned.Nodes > full.Nodes {
				t.Fatalf("position %d depth %d: pruned search visited more nodes (%d > %d)",
					i, depth, pruned.Nodes, full.Nodes)
			}
		}
	}
}

func TestSearchRestoresBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		pos := randomPosition(rng, rng.Intn(30))
		before := pos.Snapshot()
		BestMove(pos, 4)
		if after := pos.Snapshot(); !reflect.DeepEqual(before, after) {
			t.Fatalf("search changed the position:\nbefore %+v\nafter  %+v", before, after)
		}
	}
}

func TestBestMoveNoMoves(t *testing.T) {
	pos := positionFromRows(t,
		"1212121",
		"1212121",
		"2121212",
		"2121212",
		"1212121",
		"1212121",
	)
	result := BestMove(pos, 3)
	if result.Column != -1 {
		t.Fatalf("column = %d on a full board", result.Column)
	}
}

func TestOrderMovesCenterFirst(t *testing.T) {
	pos := positionFromRows(t,
		"...1.2.",
		"...2.1.",
		"...1.2.",
		"...2.1.",
		"...1.2.",
		"...2.1.",
	)
	want := []int{2, 4, 1, 0, 6}
	if got := orderMoves(pos.Board); !reflect.DeepEqual(got, want) {
		t.Fatalf("orderMoves = %v, want %v", got, want)
	}
}

func TestEngineDepth(t *testing.T) {
	if e := NewEngine(0); e.Depth != 1 {
		t.Fatalf("NewEngine(0).Depth = %d", e.Depth)
	}
	e := NewEngine(2)
	if got := e.BestMove(domain.NewPosition()); got.Nodes != 56 {
		t.Fatalf("depth 2 engine visited %d nodes", got.Nodes)
	}
}

func TestDepthForDifficulty(t *testing.T) {
	tests := []struct {
		difficulty string
		hard       int
		want       int
	}{
		{DifficultyEasy, 5, 1},
		{DifficultyMedium, 5, 3},
		{DifficultyMedium, 2, 2},
		{DifficultyHard, 5, 5},
		{"", 6, 6},
	}
	for _, tt := range tests {
		if got := DepthForDifficulty(tt.difficulty, tt.hard); got != tt.want {
			t.Errorf("DepthForDifficulty(%q, %d) = %d, want %d", tt.difficulty, tt.hard, got, tt.want)
		}
	}
	if IsValidDifficulty("impossible") {
		t.Errorf("unknown difficulty accepted")
	}
}
