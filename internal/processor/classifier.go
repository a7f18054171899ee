package processor

import (
	"fmt"

	"github.com/parkatlas/park-media-go/internal/port"
)

const (
	KindPhoto        = "photo"
	KindVideo        = "video"
	KindUnrecognized = ""
)

const (
	MaxPhotoSizeBytes = 15 << 20  // 15 MiB
	MaxVideoSizeBytes = 200 << 20 // 200 MiB
)

// photoTypes is the closed list of accepted raster formats. HEIC is the
// legacy camera format and is always converted to JPEG on output.
var photoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"image/tiff": true,
	"image/heic": true,
}

var videoTypes = map[string]bool{
	"video/mp4":       true,
	"video/quicktime": true,
	"video/x-msvideo": true,
	"video/webm":      true,
	"video/x-matroska": true,
}

// KindFor maps a declared content type to a media kind.
func KindFor(contentType string) string {
	switch {
	case photoTypes[contentType]:
		return KindPhoto
	case videoTypes[contentType]:
		return KindVideo
	default:
		return KindUnrecognized
	}
}

// Validate checks the declared content type against the recognised lists and
// the byte length against the kind-specific ceiling. It is a pure function
// of its inputs: the declared type is trusted as provided by the caller.
func Validate(sizeBytes int64, contentType string) port.ValidationOutcome {
	kind := KindFor(contentType)
	if kind == KindUnrecognized {
		return port.ValidationOutcome{Reason: fmt.Sprintf("unsupported media type %q", contentType)}
	}

	ceiling := int64(MaxPhotoSizeBytes)
	if kind == KindVideo {
		ceiling = MaxVideoSizeBytes
	}
	if sizeBytes > ceiling {
		return port.ValidationOutcome{Reason: fmt.Sprintf("file too large: %d bytes (max size: %d bytes)", sizeBytes, ceiling)}
	}

	return port.ValidationOutcome{Valid: true}
}
