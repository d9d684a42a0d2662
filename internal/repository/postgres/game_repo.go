package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// GameRepo stores finished games.
type GameRepo struct {
	DB *sql.DB
}

func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{DB: db}
}

// SaveGame upserts the record, so a retried save does not fail on the primary key.
func (r *GameRepo) SaveGame(ctx context.Context, g domain.GameRecord) error {
	boardJSON, err := json.Marshal(g.Board)
	if err != nil {
		return fmt.Errorf("failed to marshal board state: %w", err)
	}

	query := `
	INSERT INTO game (game_id, winner, difficulty, total_moves, duration_seconds, created_at, finished_at, board_state)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (game_id) DO UPDATE SET
		winner = EXCLUDED.winner,
		total_moves = EXCLUDED.total_moves,
		duration_seconds = EXCLUDED.duration_seconds,
		finished_at = EXCLUDED.finished_at,
		board_state = EXCLUDED.board_state;
	`
	_, err = r.DB.ExecContext(ctx, query,
		g.GameID, int(g.Winner), g.Difficulty, g.TotalMoves, g.DurationSeconds, g.CreatedAt, g.FinishedAt, boardJSON)
	if err != nil {
		return fmt.Errorf("failed to upsert game record: %w", err)
	}
	return nil
}

// RecentGames returns up to limit games, latest finish first. A limit of zero
// or less returns all of them.
func (r *GameRepo) RecentGames(ctx context.Context, limit int) ([]domain.GameRecord, error) {
	query := `
	SELECT game_id, winner, difficulty, total_moves, duration_seconds, created_at, finished_at, board_state
	FROM game
	ORDER BY finished_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var games []domain.GameRecord
	for rows.Next() {
		var (
			g         domain.GameRecord
			winner    int
			boardJSON []byte
		)
		if err := rows.Scan(&g.GameID, &winner, &g.Difficulty, &g.TotalMoves, &g.DurationSeconds, &g.CreatedAt, &g.FinishedAt, &boardJSON); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		g.Winner = domain.PlayerID(winner)
		if err := json.Unmarshal(boardJSON, &g.Board); err != nil {
			return nil, fmt.Errorf("failed to unmarshal board state for %s: %w", g.GameID, err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read games: %w", err)
	}
	return games, nil
}

func (r *GameRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM game WHERE finished_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old games: %w", err)
	}
	return res.RowsAffected()
}
