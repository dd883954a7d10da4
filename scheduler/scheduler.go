// Package scheduler runs the periodic session purge.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/reelmark/reelmark/db"
)

// Scheduler deletes expired session rows on a fixed interval. The cache
// layer evicts on its own; this keeps the table itself from growing
// without bound.
type Scheduler struct {
	interval     time.Duration
	db           db.DbSession
	logger       *slog.Logger
	ctx          context.Context
	cancel       context.CancelFunc
	shutdownDone chan struct{}
}

func NewScheduler(interval time.Duration, dbSession db.DbSession, logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		interval:     interval,
		db:           dbSession,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
		shutdownDone: make(chan struct{}),
	}
}

// Start launches the purge loop in its own goroutine.
func (s *Scheduler) Start() {
	go func() {
		s.logger.Info("starting session purge scheduler", "interval", s.interval)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				s.logger.Info("session purge scheduler received shutdown signal")
				close(s.shutdownDone)
				return
			case <-ticker.C:
				s.purge()
			}
		}
	}()
}

// Stop signals the scheduler to stop and waits for the loop to exit or
// the context to be canceled, whichever comes first.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()

	select {
	case <-s.shutdownDone:
		s.logger.Info("session purge scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Info("session purge scheduler shutdown timed out")
		return ctx.Err()
	}
}

func (s *Scheduler) purge() {
	deleted, err := s.db.DeleteExpiredSessions(time.Now())
	if err != nil {
		s.logger.Error("failed to purge expired sessions", "err", err)
		return
	}
	if deleted > 0 {
		s.logger.Info("purged expired sessions", "count", deleted)
	}
}
