package media

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/parkatlas/park-media-go/internal/logger"
	"github.com/parkatlas/park-media-go/internal/model"
	"github.com/parkatlas/park-media-go/internal/port"
)

type uploaderSrv struct {
	repo         port.MediaRepository
	strg         port.Storage
	proc         port.Processor
	cache        port.Cache
	genUUID      port.UUIDGen
	mediaBucket  string
	thumbsBucket string
}

// compile-time check: *uploaderSrv must satisfy port.Uploader
var _ port.Uploader = (*uploaderSrv)(nil)

// NewUploader constructs an Uploader implementation.
func NewUploader(repo port.MediaRepository, strg port.Storage, proc port.Processor, cache port.Cache, genUUID port.UUIDGen, mediaBucket, thumbsBucket string) port.Uploader {
	return &uploaderSrv{repo, strg, proc, cache, genUUID, mediaBucket, thumbsBucket}
}

// Upload drives one asset through its whole lifecycle. The placeholder row
// is created in 'processing' before the pipeline runs, so a crash
// mid-pipeline still leaves an inspectable record. On success the row is
// updated exactly once with the storage paths and metadata; on any failure
// it is updated exactly once with the error message, verbatim.
//
// When the pipeline or a storage write fails, the failed asset is returned
// alongside the causing error so the boundary can surface both.
func (s *uploaderSrv) Upload(ctx context.Context, in port.UploadInput) (*model.MediaAsset, error) {
	asset := &model.MediaAsset{
		ID:               s.genUUID(),
		OwnerID:          in.OwnerID,
		ParkCode:         in.ParkCode,
		Status:           model.MediaStatusProcessing,
		OriginalFilename: in.Filename,
	}
	if err := s.repo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed creating media record: %w", err)
	}

	res, err := s.proc.Process(ctx, in.Data, in.ContentType, in.Filename)
	if err != nil {
		return s.markAsFailed(ctx, asset, err)
	}
	asset.MediaType = res.MediaType

	stem := fmt.Sprintf("%s/%s_%d", in.OwnerID, asset.ID, time.Now().Unix())
	mediaKey := stem + extensionFor(res.MimeType)

	if err := s.strg.SaveFile(ctx, s.mediaBucket, mediaKey, bytes.NewReader(res.Data), int64(len(res.Data)), map[string]string{
		"Content-Type": res.MimeType,
	}); err != nil {
		return s.markAsFailed(ctx, asset, fmt.Errorf("failed saving processed media: %w", err))
	}

	var thumbKey *string
	if res.Thumbnail != nil {
		k := stem + "_thumb.jpg"
		if err := s.strg.SaveFile(ctx, s.thumbsBucket, k, bytes.NewReader(res.Thumbnail), int64(len(res.Thumbnail)), map[string]string{
			"Content-Type": "image/jpeg",
		}); err != nil {
			// the media object is already in the bucket; remove it so the
			// failed row references nothing
			if rmErr := s.strg.RemoveFile(ctx, s.mediaBucket, mediaKey); rmErr != nil {
				logger.Warnf(ctx, "failed removing orphaned media %q: %v", mediaKey, rmErr)
			}
			return s.markAsFailed(ctx, asset, fmt.Errorf("failed saving thumbnail: %w", err))
		}
		thumbKey = &k
	}

	size := int64(len(res.Data))
	asset.Status = model.MediaStatusReady
	asset.MimeType = &res.MimeType
	asset.SizeBytes = &size
	asset.Width = res.Width
	asset.Height = res.Height
	asset.DurationSecs = res.DurationSecs
	asset.StoragePath = mediaKey
	asset.ThumbnailPath = thumbKey
	if err := s.repo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed updating media: %w", err)
	}

	s.invalidate(ctx, asset)
	return asset, nil
}

// markAsFailed captures the causing error's message verbatim on the row. A
// failing update is logged, not propagated, so it never masks the original
// failure.
func (s *uploaderSrv) markAsFailed(ctx context.Context, asset *model.MediaAsset, cause error) (*model.MediaAsset, error) {
	msg := cause.Error()
	asset.Status = model.MediaStatusFailed
	asset.ErrorMessage = &msg

	if err := s.repo.Update(ctx, asset); err != nil {
		logger.Errorf(ctx, "markAsFailed failed for media #%s: %v", asset.ID, err)
	}
	s.invalidate(ctx, asset)
	return asset, cause
}

func (s *uploaderSrv) invalidate(ctx context.Context, asset *model.MediaAsset) {
	if err := s.cache.DeleteMediaDetails(ctx, asset.ID); err != nil {
		logger.Warnf(ctx, "failed deleting cache for media #%s: %v", asset.ID, err)
	}
	if err := s.cache.DeleteEtagMediaDetails(ctx, asset.ID); err != nil {
		logger.Warnf(ctx, "failed deleting etag cache for media #%s: %v", asset.ID, err)
	}
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	default:
		return ".jpg"
	}
}
