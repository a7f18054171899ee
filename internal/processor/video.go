package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/parkatlas/park-media-go/internal/port"
)

// CanonicalVideoMime is the single container/codec profile every accepted
// video is normalised into for browser playback.
const CanonicalVideoMime = "video/mp4"

// scaleFilter bounds the output inside 1280x720 preserving aspect ratio,
// never upscaling, with even dimensions as required by yuv420p.
const scaleFilter = "scale='min(1280,iw)':'min(720,ih)':force_original_aspect_ratio=decrease:force_divisible_by=2"

// thumbFilter letterboxes a single frame into the shared square thumbnail
// size; a video frame's composition should not be cropped.
const thumbFilter = "scale=320:320:force_original_aspect_ratio=decrease,pad=320:320:(ow-iw)/2:(oh-ih)/2"

// VideoTranscoder re-encodes arbitrary input video into the canonical
// profile and extracts still-frame thumbnails, both through fixed-argument
// subprocess invocations.
type VideoTranscoder struct {
	invoker port.Invoker
}

func NewVideoTranscoder(invoker port.Invoker) *VideoTranscoder {
	return &VideoTranscoder{invoker: invoker}
}

// ConvertedVideo is the output of one Convert call.
type ConvertedVideo struct {
	Data         []byte
	Width        int
	Height       int
	DurationSecs float64
}

// Convert writes the input to a uniquely named temp file, re-encodes it into
// the canonical profile, probes the result for dimensions and duration, and
// reads the output back into memory. Both temp files are removed on every
// exit path.
func (t *VideoTranscoder) Convert(ctx context.Context, data []byte, originalFilename string) (*ConvertedVideo, error) {
	inPath, err := writeTempFile(data, tempExt(originalFilename))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscodeFailed, err)
	}
	defer removeTemp(inPath)

	outPath := tempPath(".mp4")
	defer removeTemp(outPath)

	res, err := t.invoker.RunEncoder(ctx,
		"-y",
		"-i", inPath,
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "28",
		"-c:a", "aac",
		"-b:a", "128k",
		"-pix_fmt", "yuv420p",
		"-vf", scaleFilter,
		"-movflags", "+faststart",
		outPath,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscodeFailed, err)
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("%w: encoder exited with code %d: %s", ErrTranscodeFailed, res.ExitCode, bytes.TrimSpace(res.Stderr))
	}

	meta, err := t.Probe(ctx, outPath)
	if err != nil {
		return nil, err
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading encoder output: %v", ErrTranscodeFailed, err)
	}

	return &ConvertedVideo{
		Data:         out,
		Width:        meta.Width,
		Height:       meta.Height,
		DurationSecs: meta.DurationSecs,
	}, nil
}

// VideoMeta describes the first video stream of a probed file.
type VideoMeta struct {
	Width        int
	Height       int
	DurationSecs float64
}

type probeStream struct {
	CodecType string `json:"codec_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Duration  string `json:"duration"`
}

type probeReport struct {
	Streams []probeStream `json:"streams"`
	Format  struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe asks the prober for a machine-parseable report and selects the first
// video-kind stream.
func (t *VideoTranscoder) Probe(ctx context.Context, path string) (*VideoMeta, error) {
	res, err := t.invoker.RunProbe(ctx,
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProbeParse, err)
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("%w: prober exited with code %d: %s", ErrProbeParse, res.ExitCode, bytes.TrimSpace(res.Stderr))
	}

	var report probeReport
	if err := json.Unmarshal(res.Stdout, &report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProbeParse, err)
	}

	for _, s := range report.Streams {
		if s.CodecType != "video" {
			continue
		}
		meta := &VideoMeta{Width: s.Width, Height: s.Height}
		if d, err := strconv.ParseFloat(s.Duration, 64); err == nil {
			meta.DurationSecs = d
		} else if d, err := strconv.ParseFloat(report.Format.Duration, 64); err == nil {
			meta.DurationSecs = d
		}
		return meta, nil
	}
	return nil, ErrNoVideoStream
}

// Thumbnail seeks one second in, extracts a single frame and letterboxes it
// into the shared square thumbnail size, in JPEG. Same temp-file discipline
// as Convert.
func (t *VideoTranscoder) Thumbnail(ctx context.Context, data []byte, originalFilename string) ([]byte, error) {
	inPath, err := writeTempFile(data, tempExt(originalFilename))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscodeFailed, err)
	}
	defer removeTemp(inPath)

	outPath := tempPath(".jpg")
	defer removeTemp(outPath)

	res, err := t.invoker.RunEncoder(ctx,
		"-y",
		"-ss", "00:00:01",
		"-i", inPath,
		"-frames:v", "1",
		"-vf", thumbFilter,
		outPath,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscodeFailed, err)
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("%w: encoder exited with code %d: %s", ErrTranscodeFailed, res.ExitCode, bytes.TrimSpace(res.Stderr))
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading thumbnail output: %v", ErrTranscodeFailed, err)
	}
	return out, nil
}

// tempExt keeps the original extension so the encoder can sniff the
// container; the filename is used for nothing else.
func tempExt(filename string) string {
	if ext := filepath.Ext(filename); ext != "" {
		return ext
	}
	return ".bin"
}
