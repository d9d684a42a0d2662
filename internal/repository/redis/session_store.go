package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/redis/go-redis/v9"
)

const gameKey = "connect4:game"

// SessionStore keeps the paused game under a single key. The TTL is refreshed
// on every save, so an abandoned game expires on its own.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Save(ctx context.Context, game *domain.SavedGame) error {
	data, err := encodeGame(game)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, gameKey, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

// Load returns nil, nil when no game is stored or it has expired.
func (s *SessionStore) Load(ctx context.Context) (*domain.SavedGame, error) {
	data, err := s.client.Get(ctx, gameKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return decodeGame(data)
}

func (s *SessionStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, gameKey).Err(); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

func encodeGame(game *domain.SavedGame) ([]byte, error) {
	data, err := json.Marshal(game)
	if err != nil {
		return nil, fmt.Errorf("failed to encode game: %w", err)
	}
	return data, nil
}

func decodeGame(data []byte) (*domain.SavedGame, error) {
	var game domain.SavedGame
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, fmt.Errorf("failed to decode game: %w", err)
	}
	if len(game.Board) != domain.Rows {
		return nil, domain.ErrInvalidSnapshot
	}
	return &game, nil
}
