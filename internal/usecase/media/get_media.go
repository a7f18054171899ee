package media

import (
	"context"
	"fmt"
	"time"

	"github.com/parkatlas/park-media-go/internal/model"
	"github.com/parkatlas/park-media-go/internal/port"
	"github.com/parkatlas/park-media-go/internal/uuid"
)

// DownloadURLTTL bounds both the presigned links and the cache entry built
// from them.
const DownloadURLTTL = 1 * time.Hour

type mediaGetterSrv struct {
	repo         port.MediaRepository
	strg         port.Storage
	mediaBucket  string
	thumbsBucket string
}

// compile-time check: *mediaGetterSrv must satisfy port.MediaGetter
var _ port.MediaGetter = (*mediaGetterSrv)(nil)

// NewMediaGetter constructs a MediaGetter implementation.
func NewMediaGetter(repo port.MediaRepository, strg port.Storage, mediaBucket, thumbsBucket string) port.MediaGetter {
	return &mediaGetterSrv{repo, strg, mediaBucket, thumbsBucket}
}

// GetMedia returns asset details for display. Ready assets carry presigned
// download links; processing and failed assets only their status (plus the
// captured error message when failed).
func (s *mediaGetterSrv) GetMedia(ctx context.Context, id uuid.UUID) (*port.GetMediaOutput, error) {
	asset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &port.GetMediaOutput{
		ValidUntil: time.Now().Add(DownloadURLTTL),
		Status:     asset.Status,
		MediaType:  asset.MediaType,
	}

	switch asset.Status {
	case model.MediaStatusFailed:
		if asset.ErrorMessage != nil {
			out.ErrorMessage = *asset.ErrorMessage
		}
		return out, nil
	case model.MediaStatusProcessing:
		return out, nil
	}

	url, err := s.strg.GeneratePresignedDownloadURL(ctx, s.mediaBucket, asset.StoragePath, DownloadURLTTL)
	if err != nil {
		return nil, fmt.Errorf("error generating presigned download URL: %w", err)
	}
	out.URL = url

	if asset.ThumbnailPath != nil {
		thumbURL, err := s.strg.GeneratePresignedDownloadURL(ctx, s.thumbsBucket, *asset.ThumbnailPath, DownloadURLTTL)
		if err != nil {
			return nil, fmt.Errorf("error generating presigned thumbnail URL: %w", err)
		}
		out.ThumbnailURL = thumbURL
	}

	if asset.MimeType != nil {
		out.MimeType = *asset.MimeType
	}
	if asset.SizeBytes != nil {
		out.SizeBytes = *asset.SizeBytes
	}
	out.Width = asset.Width
	out.Height = asset.Height
	out.DurationSecs = asset.DurationSecs

	return out, nil
}
