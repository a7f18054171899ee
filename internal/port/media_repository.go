package port

import (
	"context"
	"time"

	"github.com/parkatlas/park-media-go/internal/model"
	"github.com/parkatlas/park-media-go/internal/uuid"
)

// MediaRepository defines persistence operations for media assets.
type MediaRepository interface {
	Create(ctx context.Context, asset *model.MediaAsset) error
	Update(ctx context.Context, asset *model.MediaAsset) error
	GetByID(ctx context.Context, ID uuid.UUID) (*model.MediaAsset, error)
	ListProcessingBefore(ctx context.Context, before time.Time) ([]uuid.UUID, error)
}
