package mock

import (
	"context"
	"time"

	"github.com/parkatlas/park-media-go/internal/model"
	"github.com/parkatlas/park-media-go/internal/port"
	"github.com/parkatlas/park-media-go/internal/uuid"
)

// MediaRepository implements the repository interface for tests.
type MediaRepository struct {
	// stored values
	AssetOut *model.MediaAsset
	ListOut  []uuid.UUID

	// captured inputs
	Created *model.MediaAsset
	Updated *model.MediaAsset
	Before  time.Time

	// errors
	CreateErr error
	UpdateErr error
	GetErr    error
	ListErr   error

	// call flags
	CreateCalled bool
	UpdateCalled bool
	GetCalled    bool
	ListCalled   bool
	UpdateCount  int
}

var _ port.MediaRepository = (*MediaRepository)(nil)

func (m *MediaRepository) Create(ctx context.Context, asset *model.MediaAsset) error {
	m.CreateCalled = true
	m.Created = asset
	return m.CreateErr
}

func (m *MediaRepository) Update(ctx context.Context, asset *model.MediaAsset) error {
	m.UpdateCalled = true
	m.UpdateCount++
	m.Updated = asset
	return m.UpdateErr
}

func (m *MediaRepository) GetByID(ctx context.Context, ID uuid.UUID) (*model.MediaAsset, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.AssetOut, nil
}

func (m *MediaRepository) ListProcessingBefore(ctx context.Context, before time.Time) ([]uuid.UUID, error) {
	m.ListCalled = true
	m.Before = before
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}
