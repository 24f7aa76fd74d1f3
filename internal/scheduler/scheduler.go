package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Scheduler drives the retention purge on a fixed interval.
type Scheduler struct {
	maintenance purger
	interval    time.Duration
	logger      logger.Logger
}

func New(
	maintenance purger,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		maintenance: maintenance,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	purged, err := s.maintenance.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("failed to purge expired records",
			logger.String("error", err.Error()),
		)
		return
	}

	if purged > 0 {
		s.logger.Info("retention purge completed",
			logger.Int64("purged", purged),
		)
	}
}
