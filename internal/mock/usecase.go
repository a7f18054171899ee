package mock

import (
	"context"

	"github.com/parkatlas/park-media-go/internal/model"
	"github.com/parkatlas/park-media-go/internal/port"
	"github.com/parkatlas/park-media-go/internal/uuid"
)

// Uploader implements the uploader use case interface for tests.
type Uploader struct {
	AssetOut  *model.MediaAsset
	UploadErr error

	UploadCalled bool
	InputIn      port.UploadInput
}

var _ port.Uploader = (*Uploader)(nil)

func (m *Uploader) Upload(ctx context.Context, in port.UploadInput) (*model.MediaAsset, error) {
	m.UploadCalled = true
	m.InputIn = in
	return m.AssetOut, m.UploadErr
}

// MediaGetter implements the media getter use case interface for tests.
type MediaGetter struct {
	Out    *port.GetMediaOutput
	GetErr error

	GetCalled bool
	IDIn      uuid.UUID
}

var _ port.MediaGetter = (*MediaGetter)(nil)

func (m *MediaGetter) GetMedia(ctx context.Context, id uuid.UUID) (*port.GetMediaOutput, error) {
	m.GetCalled = true
	m.IDIn = id
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Out, nil
}

// StaleFailer implements the stale failer use case interface for tests.
type StaleFailer struct {
	FailErr error

	FailCalled bool
	IDIn       uuid.UUID
}

var _ port.StaleFailer = (*StaleFailer)(nil)

func (m *StaleFailer) FailStale(ctx context.Context, id uuid.UUID) error {
	m.FailCalled = true
	m.IDIn = id
	return m.FailErr
}
