package processor

import (
	"context"
	"fmt"

	"github.com/parkatlas/park-media-go/internal/logger"
	"github.com/parkatlas/park-media-go/internal/model"
	"github.com/parkatlas/park-media-go/internal/port"
)

// Pipeline is the public entry point of the media pipeline: it classifies
// the upload, dispatches to the image or video path and returns a uniform
// result shape. It is the sole place that inspects the media kind.
type Pipeline struct {
	invoker port.Invoker
	images  *ImageNormalizer
	videos  *VideoTranscoder
}

// compile-time check: *Pipeline must satisfy port.Processor
var _ port.Processor = (*Pipeline)(nil)

func NewPipeline(invoker port.Invoker) *Pipeline {
	return &Pipeline{
		invoker: invoker,
		images:  NewImageNormalizer(invoker),
		videos:  NewVideoTranscoder(invoker),
	}
}

func (p *Pipeline) Process(ctx context.Context, data []byte, contentType, filename string) (*port.ProcessingResult, error) {
	if out := Validate(int64(len(data)), contentType); !out.Valid {
		if KindFor(contentType) == KindUnrecognized {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, out.Reason)
		}
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, out.Reason)
	}

	switch KindFor(contentType) {
	case KindPhoto:
		return p.processPhoto(ctx, data, contentType)
	default:
		return p.processVideo(ctx, data, contentType, filename)
	}
}

func (p *Pipeline) processPhoto(ctx context.Context, data []byte, contentType string) (*port.ProcessingResult, error) {
	norm, err := p.images.Normalize(ctx, data, contentType)
	if err != nil {
		return nil, err
	}

	thumb, err := p.images.Thumbnail(norm.Data)
	if err != nil {
		return nil, err
	}

	return &port.ProcessingResult{
		Data:      norm.Data,
		Thumbnail: thumb,
		MediaType: model.MediaTypePhoto,
		Width:     norm.Width,
		Height:    norm.Height,
		MimeType:  norm.MimeType,
	}, nil
}

func (p *Pipeline) processVideo(ctx context.Context, data []byte, contentType, filename string) (*port.ProcessingResult, error) {
	if !p.invoker.EncoderAvailable() {
		if contentType == CanonicalVideoMime {
			// degraded passthrough: already-compatible container is
			// accepted unmodified, with no thumbnail and zeroed metadata
			logger.Warnf(ctx, "encoder unavailable, accepting %q as passthrough", filename)
			return &port.ProcessingResult{
				Data:      data,
				MediaType: model.MediaTypeVideo,
				MimeType:  CanonicalVideoMime,
			}, nil
		}
		return nil, fmt.Errorf("%w: encoder binary not reachable and input %q is not %s", ErrTranscodingUnavailable, contentType, CanonicalVideoMime)
	}

	conv, err := p.videos.Convert(ctx, data, filename)
	if err != nil {
		return nil, err
	}

	thumb, err := p.videos.Thumbnail(ctx, data, filename)
	if err != nil {
		return nil, err
	}

	return &port.ProcessingResult{
		Data:         conv.Data,
		Thumbnail:    thumb,
		MediaType:    model.MediaTypeVideo,
		Width:        conv.Width,
		Height:       conv.Height,
		DurationSecs: conv.DurationSecs,
		MimeType:     CanonicalVideoMime,
	}, nil
}
