package port

import (
	"context"
	"time"

	"github.com/parkatlas/park-media-go/internal/model"
	"github.com/parkatlas/park-media-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

// Uploader owns the asset lifecycle: it creates the placeholder row, runs
// the pipeline, persists the outputs and finalises the row.
type Uploader interface {
	Upload(ctx context.Context, in UploadInput) (*model.MediaAsset, error)
}
type UploadInput struct {
	OwnerID     string
	ParkCode    string
	Filename    string
	ContentType string
	Data        []byte
}

// MediaGetter retrieves asset details with presigned download links.
type MediaGetter interface {
	GetMedia(ctx context.Context, id uuid.UUID) (*GetMediaOutput, error)
}
type GetMediaOutput struct {
	ValidUntil   time.Time `json:"valid_until"`
	Status       string    `json:"status"`
	MediaType    string    `json:"media_type"`
	URL          string    `json:"url,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	MimeType     string    `json:"mime_type,omitempty"`
	SizeBytes    int64     `json:"size_bytes,omitempty"`
	Width        int       `json:"width,omitempty"`
	Height       int       `json:"height,omitempty"`
	DurationSecs float64   `json:"duration_secs,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

// StaleFailer flips assets stranded in 'processing' to 'failed'.
type StaleFailer interface {
	FailStale(ctx context.Context, id uuid.UUID) error
}

// BacklogSweeper finds stranded assets and enqueues fail-stale tasks.
type BacklogSweeper interface {
	SweepBacklog(ctx context.Context) error
}
