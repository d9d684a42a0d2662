package domain

import "time"

// Tally is the running score across games against the engine.
type Tally struct {
	HumanWins int `json:"human_wins"`
	AIWins    int `json:"ai_wins"`
	Draws     int `json:"draws"`
}

func (t *Tally) Record(winner PlayerID) {
	switch winner {
	case Human:
		t.HumanWins++
	case Bot:
		t.AIWins++
	default:
		t.Draws++
	}
}

// SavedGame is what the session store keeps to resume a game after a restart.
type SavedGame struct {
	GameID     string    `json:"game_id"`
	Difficulty string    `json:"difficulty"`
	Depth      int       `json:"depth"`
	StartedAt  time.Time `json:"started_at"`
	Snapshot
}

// GameRecord is a finished game as kept in the history.
type GameRecord struct {
	GameID          string    `json:"game_id"`
	Winner          PlayerID  `json:"winner"`
	Difficulty      string    `json:"difficulty"`
	TotalMoves      int       `json:"total_moves"`
	DurationSeconds int       `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
	FinishedAt      time.Time `json:"finished_at"`
	Board           [][]int   `json:"board_state"`
}
