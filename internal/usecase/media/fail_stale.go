package media

import (
	"context"
	"database/sql"
	"errors"

	"github.com/parkatlas/park-media-go/internal/logger"
	"github.com/parkatlas/park-media-go/internal/model"
	"github.com/parkatlas/park-media-go/internal/port"
	"github.com/parkatlas/park-media-go/internal/uuid"
)

// StaleMessage is recorded on assets whose pipeline run never finished,
// typically because the process died mid-upload.
const StaleMessage = "processing interrupted"

type staleFailerSrv struct {
	repo  port.MediaRepository
	cache port.Cache
}

// compile-time check: *staleFailerSrv must satisfy port.StaleFailer
var _ port.StaleFailer = (*staleFailerSrv)(nil)

// NewStaleFailer constructs a StaleFailer implementation.
func NewStaleFailer(repo port.MediaRepository, cache port.Cache) port.StaleFailer {
	return &staleFailerSrv{repo, cache}
}

// FailStale flips a stranded asset to 'failed' so it stays inspectable
// instead of looking forever in flight. Assets already finalised are left
// alone.
func (s *staleFailerSrv) FailStale(ctx context.Context, id uuid.UUID) error {
	asset, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Warnf(ctx, "media #%s no longer exists, skipping", id)
		return nil
	}
	if err != nil {
		return err
	}
	if asset.Status != model.MediaStatusProcessing {
		return nil
	}

	msg := StaleMessage
	asset.Status = model.MediaStatusFailed
	asset.ErrorMessage = &msg
	if err := s.repo.Update(ctx, asset); err != nil {
		return err
	}

	if err := s.cache.DeleteMediaDetails(ctx, asset.ID); err != nil {
		logger.Warnf(ctx, "failed deleting cache for media #%s: %v", asset.ID, err)
	}
	if err := s.cache.DeleteEtagMediaDetails(ctx, asset.ID); err != nil {
		logger.Warnf(ctx, "failed deleting etag cache for media #%s: %v", asset.ID, err)
	}
	return nil
}
