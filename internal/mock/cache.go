package mock

import (
	"context"
	"time"

	"github.com/parkatlas/park-media-go/internal/port"
	"github.com/parkatlas/park-media-go/internal/uuid"
)

// Cache implements the cache interface for tests.
type Cache struct {
	DetailsOut []byte
	EtagOut    string

	GetDetailsErr error
	GetEtagErr    error
	DeleteErr     error

	SetDetailsCalled    bool
	SetEtagCalled       bool
	DeleteDetailsCalled bool
	DeleteEtagCalled    bool

	SetDetailsIn []byte
	SetEtagIn    string
}

var _ port.Cache = (*Cache)(nil)

func (m *Cache) GetMediaDetails(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if m.GetDetailsErr != nil {
		return nil, m.GetDetailsErr
	}
	return m.DetailsOut, nil
}

func (m *Cache) GetEtagMediaDetails(ctx context.Context, id uuid.UUID) (string, error) {
	if m.GetEtagErr != nil {
		return "", m.GetEtagErr
	}
	return m.EtagOut, nil
}

func (m *Cache) SetMediaDetails(ctx context.Context, id uuid.UUID, data []byte, validUntil time.Time) {
	m.SetDetailsCalled = true
	m.SetDetailsIn = data
}

func (m *Cache) SetEtagMediaDetails(ctx context.Context, id uuid.UUID, etag string, validUntil time.Time) {
	m.SetEtagCalled = true
	m.SetEtagIn = etag
}

func (m *Cache) DeleteMediaDetails(ctx context.Context, id uuid.UUID) error {
	m.DeleteDetailsCalled = true
	return m.DeleteErr
}

func (m *Cache) DeleteEtagMediaDetails(ctx context.Context, id uuid.UUID) error {
	m.DeleteEtagCalled = true
	return m.DeleteErr
}
