package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// SessionStore keeps the paused game in process memory. It is the fallback
// when Redis is unavailable.
type SessionStore struct {
	mu   sync.Mutex
	data []byte
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Save stores an encoded copy so later changes to game are not shared.
func (s *SessionStore) Save(ctx context.Context, game *domain.SavedGame) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to encode game: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

func (s *SessionStore) Load(ctx context.Context) (*domain.SavedGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, nil
	}
	var game domain.SavedGame
	if err := json.Unmarshal(s.data, &game); err != nil {
		return nil, fmt.Errorf("failed to decode game: %w", err)
	}
	return &game, nil
}

func (s *SessionStore) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}

type TallyRepo struct {
	mu    sync.Mutex
	tally domain.Tally
}

func NewTallyRepo() *TallyRepo {
	return &TallyRepo{}
}

func (r *TallyRepo) GetTally(ctx context.Context) (domain.Tally, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tally, nil
}

func (r *TallyRepo) RecordResult(ctx context.Context, winner domain.PlayerID) (domain.Tally, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tally.Record(winner)
	return r.tally, nil
}

func (r *TallyRepo) ResetTally(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tally = domain.Tally{}
	return nil
}

type HistoryRepo struct {
	mu    sync.Mutex
	games map[string]domain.GameRecord
}

func NewHistoryRepo() *HistoryRepo {
	return &HistoryRepo{games: make(map[string]domain.GameRecord)}
}

// SaveGame inserts or replaces the record with the same game id.
func (r *HistoryRepo) SaveGame(ctx context.Context, record domain.GameRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[record.GameID] = record
	return nil
}

// RecentGames returns up to limit games, latest finish first. A limit of zero
// or less returns all of them.
func (r *HistoryRepo) RecentGames(ctx context.Context, limit int) ([]domain.GameRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	games := make([]domain.GameRecord, 0, len(r.games))
	for _, g := range r.games {
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool {
		return games[i].FinishedAt.After(games[j].FinishedAt)
	})
	if limit > 0 && len(games) > limit {
		games = games[:limit]
	}
	return games, nil
}

func (r *HistoryRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for id, g := range r.games {
		if g.FinishedAt.Before(cutoff) {
			delete(r.games, id)
			deleted++
		}
	}
	return deleted, nil
}
