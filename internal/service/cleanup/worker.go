package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Pruner deletes finished games older than cutoff.
type Pruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type Worker struct {
	History   Pruner
	Retention time.Duration
	Interval  time.Duration
	now       func() time.Time
}

func NewWorker(history Pruner, retention, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Worker{History: history, Retention: retention, Interval: interval, now: time.Now}
}

// Run prunes once right away and then on every tick until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	log.Info().Str("component", "cleanup").Dur("interval", w.Interval).Msg("background worker started")
	w.runCleanup(ctx)

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("component", "cleanup").Msg("background worker stopped")
			return nil
		case <-ticker.C:
			w.runCleanup(ctx)
		}
	}
}

func (w *Worker) runCleanup(ctx context.Context) {
	if w.Retention <= 0 {
		return
	}
	cutoff := w.now().Add(-w.Retention)
	deleted, err := w.History.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Str("component", "cleanup").Msg("failed to prune game history")
		return
	}
	if deleted > 0 {
		log.Info().Str("component", "cleanup").Int64("deleted", deleted).Time("cutoff", cutoff).Msg("pruned game history")
	}
}
