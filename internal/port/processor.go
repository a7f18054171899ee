package port

import "context"

// ProcessingResult is the uniform output of a single pipeline run. Thumbnail
// is nil when no thumbnail could be produced (degraded video passthrough).
type ProcessingResult struct {
	Data         []byte
	Thumbnail    []byte
	MediaType    string
	Width        int
	Height       int
	DurationSecs float64
	MimeType     string
}

// ValidationOutcome reports whether an upload may enter the pipeline.
type ValidationOutcome struct {
	Valid  bool
	Reason string
}

// Processor runs the full media pipeline on one upload: classify, normalise
// or transcode, thumbnail.
type Processor interface {
	Process(ctx context.Context, data []byte, contentType, filename string) (*ProcessingResult, error)
}
