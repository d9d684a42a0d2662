package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// TallyRepo keeps the running score in the single game_stats row.
type TallyRepo struct {
	DB *sql.DB
}

func NewTallyRepo(db *sql.DB) *TallyRepo {
	return &TallyRepo{DB: db}
}

func (r *TallyRepo) GetTally(ctx context.Context) (domain.Tally, error) {
	var t domain.Tally
	err := r.DB.QueryRowContext(ctx,
		`SELECT human_wins, ai_wins, draws FROM game_stats WHERE id = 1`,
	).Scan(&t.HumanWins, &t.AIWins, &t.Draws)
	if err == sql.ErrNoRows {
		return domain.Tally{}, nil
	}
	if err != nil {
		return domain.Tally{}, fmt.Errorf("failed to read tally: %w", err)
	}
	return t, nil
}

// RecordResult bumps the counter for winner and returns the new tally.
func (r *TallyRepo) RecordResult(ctx context.Context, winner domain.PlayerID) (domain.Tally, error) {
	column := tallyColumn(winner)
	query := fmt.Sprintf(`
	INSERT INTO game_stats (id, %[1]s) VALUES (1, 1)
	ON CONFLICT (id) DO UPDATE SET
		%[1]s = game_stats.%[1]s + 1,
		updated_at = NOW()
	RETURNING human_wins, ai_wins, draws`, column)

	var t domain.Tally
	if err := r.DB.QueryRowContext(ctx, query).Scan(&t.HumanWins, &t.AIWins, &t.Draws); err != nil {
		return domain.Tally{}, fmt.Errorf("failed to record result: %w", err)
	}
	return t, nil
}

func (r *TallyRepo) ResetTally(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
	INSERT INTO game_stats (id) VALUES (1)
	ON CONFLICT (id) DO UPDATE SET
		human_wins = 0,
		ai_wins = 0,
		draws = 0,
		updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("failed to reset tally: %w", err)
	}
	return nil
}

func tallyColumn(winner domain.PlayerID) string {
	switch winner {
	case domain.Human:
		return "human_wins"
	case domain.Bot:
		return "ai_wins"
	default:
		return "draws"
	}
}
