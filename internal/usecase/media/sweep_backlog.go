package media

import (
	"context"
	"time"

	"github.com/parkatlas/park-media-go/internal/logger"
	"github.com/parkatlas/park-media-go/internal/port"
)

type backlogSweeperSrv struct {
	repo  port.MediaRepository
	tasks port.TaskDispatcher
}

// compile-time check: *backlogSweeperSrv must satisfy port.BacklogSweeper
var _ port.BacklogSweeper = (*backlogSweeperSrv)(nil)

// NewBacklogSweeper constructs a BacklogSweeper implementation.
func NewBacklogSweeper(repo port.MediaRepository, tasks port.TaskDispatcher) port.BacklogSweeper {
	return &backlogSweeperSrv{repo, tasks}
}

// SweepBacklog looks for assets stuck in 'processing' for more than an hour
// and enqueues fail-stale tasks for them.
func (s *backlogSweeperSrv) SweepBacklog(ctx context.Context) error {
	cutoff := time.Now().Add(-1 * time.Hour)
	ids, err := s.repo.ListProcessingBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		logger.Info(ctx, "no stale medias found")
	}

	for _, id := range ids {
		logger.Infof(ctx, "marking media #%s as stale", id)
		if err := s.tasks.EnqueueFailStale(ctx, id); err != nil {
			logger.Warnf(ctx, "failed to enqueue fail-stale task for media #%s: %v", id, err)
		}
	}
	return nil
}
