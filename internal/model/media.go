package model

import (
	"time"

	"github.com/parkatlas/park-media-go/internal/uuid"
)

const (
	MediaStatusProcessing = "processing"
	MediaStatusReady      = "ready"
	MediaStatusFailed     = "failed"
)

const (
	MediaTypePhoto = "photo"
	MediaTypeVideo = "video"
)

// MediaAsset is a single uploaded photo or video clip attached to a park.
// The row is created in status 'processing' before the pipeline runs, then
// flipped exactly once to 'ready' or 'failed'. StoragePath stays empty while
// processing; a ready asset always has one, a failed asset may not.
type MediaAsset struct {
	ID               uuid.UUID `json:"id"`
	OwnerID          string    `json:"owner_id"`
	ParkCode         string    `json:"park_code"`
	MediaType        string    `json:"media_type"`
	Status           string    `json:"status"`
	OriginalFilename string    `json:"original_filename"`
	MimeType         *string   `json:"mime_type"`
	SizeBytes        *int64    `json:"size_bytes"`
	Width            int       `json:"width"`
	Height           int       `json:"height"`
	DurationSecs     float64   `json:"duration_secs"`
	StoragePath      string    `json:"storage_path"`
	ThumbnailPath    *string   `json:"thumbnail_path"`
	ErrorMessage     *string   `json:"error_message"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
