package processor

import "errors"

var (
	// validation failures, surfaced before any resource is allocated
	ErrUnsupportedType = errors.New("unsupported media type")
	ErrTooLarge        = errors.New("file too large")

	// image pipeline failures, wrapping the underlying decode/encode error
	ErrImageProcessing = errors.New("image processing failed")

	// subprocess-level failures, carrying captured stderr or parse diagnostics
	ErrTranscodeFailed = errors.New("video transcode failed")
	ErrProbeParse      = errors.New("could not parse probe report")
	ErrNoVideoStream   = errors.New("no video stream found")

	// environment is missing the encoder binary; only already-canonical
	// containers are accepted as degraded passthrough
	ErrTranscodingUnavailable = errors.New("video transcoding unavailable")
)
