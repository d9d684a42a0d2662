package game

import (
	"context"
	"sync"
	"time"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/pkg/uid"
	"github.com/rs/zerolog/log"
)

// SessionStore keeps the one paused game. Load returns nil, nil when nothing
// is stored.
type SessionStore interface {
	Save(ctx context.Context, game *domain.SavedGame) error
	Load(ctx context.Context) (*domain.SavedGame, error)
	Delete(ctx context.Context) error
}

type TallyRepository interface {
	GetTally(ctx context.Context) (domain.Tally, error)
	RecordResult(ctx context.Context, winner domain.PlayerID) (domain.Tally, error)
	ResetTally(ctx context.Context) error
}

type HistoryRepository interface {
	SaveGame(ctx context.Context, record domain.GameRecord) error
	RecentGames(ctx context.Context, limit int) ([]domain.GameRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type Options struct {
	SearchDepth       int
	DefaultDifficulty string
}

// Service runs the single game between the human and the engine. Every
// operation holds the service lock, so a search never shares its board with
// another request.
type Service struct {
	mu       sync.Mutex
	store    SessionStore
	tally    TallyRepository
	history  HistoryRepository
	opts     Options
	current  *session
	restored bool
	pending  sync.WaitGroup
	now      func() time.Time
}

type session struct {
	id         string
	difficulty string
	depth      int
	startedAt  time.Time
	pos        *domain.Position
}

// State is a read-only view of the current game.
type State struct {
	GameID        string
	Board         [][]int
	CurrentPlayer domain.PlayerID
	MoveCount     int
	Ended         bool
	Winner        domain.PlayerID
	Difficulty    string
	Depth         int
	Tally         domain.Tally
}

type MoveOutcome struct {
	Board     [][]int
	Winner    domain.PlayerID
	GameOver  bool
	HumanMove int
	AIMove    int               // -1 when the engine did not move
	Search    *bot.SearchResult // nil when the engine did not move
	Moves     int
	Duration  time.Duration
	Tally     domain.Tally
}

func NewService(store SessionStore, tally TallyRepository, history HistoryRepository, opts Options) *Service {
	if opts.SearchDepth < 1 {
		opts.SearchDepth = bot.DEFAULT_DEPTH
	}
	if opts.DefaultDifficulty == "" {
		opts.DefaultDifficulty = bot.DifficultyHard
	}
	return &Service{
		store:   store,
		tally:   tally,
		history: history,
		opts:    opts,
		now:     time.Now,
	}
}

func (s *Service) NewGame(ctx context.Context, difficulty string) (*State, error) {
	if difficulty == "" {
		difficulty = s.opts.DefaultDifficulty
	}
	if !bot.IsValidDifficulty(difficulty) {
		return nil, domain.ErrInvalidLevel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &session{
		id:         uid.GenerateGameID(),
		difficulty: difficulty,
		depth:      bot.DepthForDifficulty(difficulty, s.opts.SearchDepth),
		startedAt:  s.now(),
		pos:        domain.NewPosition(),
	}
	s.restored = true
	s.persist(ctx)

	log.Info().
		Str("component", "game").
		Str("game_id", s.current.id).
		Str("difficulty", difficulty).
		Int("depth", s.current.depth).
		Msg("new game")

	return s.stateLocked(ctx), nil
}

// MakeMove plays the human's column and, unless that ended the game, the
// engine's reply.
func (s *Service) MakeMove(ctx context.Context, column int) (*MoveOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.restoreLocked(ctx)
	if s.current == nil {
		return nil, domain.ErrNoGame
	}
	sess := s.current
	pos := sess.pos
	if pos.Ended {
		return nil, domain.ErrGameOver
	}
	if column < 0 || column >= domain.Columns {
		return nil, domain.ErrInvalidMove
	}
	if !pos.IsValidMove(column) {
		return nil, domain.ErrColumnFull
	}

	pos.ApplyMove(column, domain.Human)
	outcome := &MoveOutcome{HumanMove: column, AIMove: -1}

	if !pos.Ended {
		result := bot.BestMove(pos, sess.depth)
		if !pos.ApplyMove(result.Column, domain.Bot) {
			// only reachable if the engine was asked to move on a full board
			log.Error().Str("component", "game").Int("column", result.Column).Msg("engine returned an illegal move")
			return nil, domain.ErrInvalidMove
		}
		outcome.AIMove = result.Column
		outcome.Search = &result
	}

	if pos.Ended {
		outcome.Tally = s.finishLocked(ctx, sess)
	} else {
		outcome.Tally = s.getTally(ctx)
	}
	s.persist(ctx)

	outcome.Board = pos.Board.Grid()
	outcome.Winner = pos.Winner
	outcome.GameOver = pos.Ended
	outcome.Moves = pos.MoveCount()
	outcome.Duration = s.now().Sub(sess.startedAt)
	return outcome, nil
}

// Current returns the game in progress, resuming it from the session store
// after a restart.
func (s *Service) Current(ctx context.Context) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.restoreLocked(ctx)
	if s.current == nil {
		return nil, domain.ErrNoGame
	}
	return s.stateLocked(ctx), nil
}

func (s *Service) Stats(ctx context.Context) (domain.Tally, error) {
	return s.tally.GetTally(ctx)
}

// ResetStats zeroes the tally and drops the current game.
func (s *Service) ResetStats(ctx context.Context) (domain.Tally, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tally.ResetTally(ctx); err != nil {
		return domain.Tally{}, err
	}
	s.current = nil
	s.restored = true
	if err := s.store.Delete(ctx); err != nil {
		log.Warn().Err(err).Str("component", "game").Msg("failed to drop saved game")
	}
	return domain.Tally{}, nil
}

func (s *Service) History(ctx context.Context, limit int) ([]domain.GameRecord, error) {
	return s.history.RecentGames(ctx, limit)
}

// Wait blocks until pending history writes are done.
func (s *Service) Wait() {
	s.pending.Wait()
}

func (s *Service) restoreLocked(ctx context.Context) {
	if s.restored {
		return
	}
	s.restored = true

	saved, err := s.store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("component", "game").Msg("failed to load saved game")
		return
	}
	if saved == nil {
		return
	}

	pos, err := domain.RestorePosition(saved.Snapshot)
	if err != nil {
		log.Warn().Err(err).Str("component", "game").Str("game_id", saved.GameID).Msg("discarding unreadable saved game")
		return
	}
	depth := saved.Depth
	if depth < 1 {
		depth = bot.DepthForDifficulty(saved.Difficulty, s.opts.SearchDepth)
	}

	s.current = &session{
		id:         saved.GameID,
		difficulty: saved.Difficulty,
		depth:      depth,
		startedAt:  saved.StartedAt,
		pos:        pos,
	}
	log.Info().Str("component", "game").Str("game_id", saved.GameID).Int("moves", pos.MoveCount()).Msg("resumed saved game")
}

func (s *Service) finishLocked(ctx context.Context, sess *session) domain.Tally {
	pos := sess.pos
	tally, err := s.tally.RecordResult(ctx, pos.Winner)
	if err != nil {
		log.Error().Err(err).Str("component", "game").Str("game_id", sess.id).Msg("failed to record result")
	}

	finishedAt := s.now()
	record := domain.GameRecord{
		GameID:          sess.id,
		Winner:          pos.Winner,
		Difficulty:      sess.difficulty,
		TotalMoves:      pos.MoveCount(),
		DurationSeconds: int(finishedAt.Sub(sess.startedAt).Seconds()),
		CreatedAt:       sess.startedAt,
		FinishedAt:      finishedAt,
		Board:           pos.Board.Grid(),
	}
	s.saveGameAsync(record)

	log.Info().
		Str("component", "game").
		Str("game_id", sess.id).
		Int("winner", int(pos.Winner)).
		Int("moves", record.TotalMoves).
		Msg("game over")
	return tally
}

// Saves the finished game in the background so the move response is not held up.
func (s *Service) saveGameAsync(record domain.GameRecord) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.history.SaveGame(context.Background(), record); err != nil {
			log.Error().Err(err).Str("component", "game").Str("game_id", record.GameID).Msg("failed to save game")
			return
		}
		log.Debug().Str("component", "game").Str("game_id", record.GameID).Msg("game saved")
	}()
}

func (s *Service) persist(ctx context.Context) {
	sess := s.current
	saved := &domain.SavedGame{
		GameID:     sess.id,
		Difficulty: sess.difficulty,
		Depth:      sess.depth,
		StartedAt:  sess.startedAt,
		Snapshot:   sess.pos.Snapshot(),
	}
	if err := s.store.Save(ctx, saved); err != nil {
		log.Warn().Err(err).Str("component", "game").Str("game_id", sess.id).Msg("failed to save game state")
	}
}

func (s *Service) getTally(ctx context.Context) domain.Tally {
	tally, err := s.tally.GetTally(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "game").Msg("failed to read tally")
	}
	return tally
}

func (s *Service) stateLocked(ctx context.Context) *State {
	sess := s.current
	return &State{
		GameID:        sess.id,
		Board:         sess.pos.Board.Grid(),
		CurrentPlayer: sess.pos.CurrentPlayer,
		MoveCount:     sess.pos.MoveCount(),
		Ended:         sess.pos.Ended,
		Winner:        sess.pos.Winner,
		Difficulty:    sess.difficulty,
		Depth:         sess.depth,
		Tally:         s.getTally(ctx),
	}
}
