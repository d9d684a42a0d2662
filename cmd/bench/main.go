// Command bench times the engine's move search over a range of depths.
//
//	bench -min 1 -max 7 -moves 3,3,4
//
// -moves plays the given columns (alternating from player 1) before searching.
// -compare also runs the unpruned search and reports how many nodes pruning saved.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iamasit07/connect4-ai/internal/config"
	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/rs/zerolog/log"
)

func main() {
	minDepth := flag.Int("min", 1, "first search depth")
	maxDepth := flag.Int("max", bot.DEFAULT_DEPTH, "last search depth")
	moves := flag.String("moves", "", "comma separated columns to play first")
	compare := flag.Bool("compare", false, "also run the unpruned search")
	logLevel := flag.String("log-level", "warn", "zerolog level")
	flag.Parse()

	config.SetupLogging(*logLevel, true)

	pos, err := playMoves(*moves)
	if err != nil {
		log.Error().Err(err).Str("moves", *moves).Msg("cannot set up position")
		os.Exit(1)
	}
	if pos.Ended {
		log.Error().Int("winner", int(pos.Winner)).Msg("position is already decided")
		os.Exit(1)
	}
	if *minDepth < 1 || *maxDepth < *minDepth {
		log.Error().Int("min", *minDepth).Int("max", *maxDepth).Msg("bad depth range")
		os.Exit(1)
	}

	fmt.Printf("%-6s %-7s %-7s %-12s %-12s", "depth", "column", "score", "nodes", "elapsed")
	if *compare {
		fmt.Printf(" %-12s %-8s", "minimax", "saved")
	}
	fmt.Println()

	for depth := *minDepth; depth <= *maxDepth; depth++ {
		r := bot.BestMove(pos, depth)
		fmt.Printf("%-6d %-7d %-7d %-12d %-12s", depth, r.Column, r.Score, r.Nodes, r.Elapsed)
		if *compare {
			full := bot.Minimax(pos, depth)
			saved := 100 * (1 - float64(r.Nodes)/float64(full.Nodes))
			fmt.Printf(" %-12d %-7.1f%%", full.Nodes, saved)
			if full.Column != r.Column || full.Score != r.Score {
				log.Warn().Int("depth", depth).Int("pruned", r.Column).Int("minimax", full.Column).Msg("searches disagree")
			}
		}
		fmt.Println()
	}
}

func playMoves(list string) (*domain.Position, error) {
	pos := domain.NewPosition()
	if strings.TrimSpace(list) == "" {
		return pos, nil
	}
	for i, field := range strings.Split(list, ",") {
		col, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		if !pos.ApplyMove(col, pos.CurrentPlayer) {
			return nil, fmt.Errorf("move %d: column %d: %w", i+1, col, domain.ErrInvalidMove)
		}
	}
	return pos, nil
}
