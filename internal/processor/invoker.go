package processor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"sync"
	"time"

	"github.com/parkatlas/park-media-go/internal/logger"
	"github.com/parkatlas/park-media-go/internal/port"
)

// FFmpegInvoker shells out to ffmpeg/ffprobe. Every call gets a wall-clock
// timeout so a hung encoder cannot pin a request forever.
type FFmpegInvoker struct {
	encoderBin string
	probeBin   string
	timeout    time.Duration

	availOnce sync.Once
	available bool
}

// compile-time check: *FFmpegInvoker must satisfy port.Invoker
var _ port.Invoker = (*FFmpegInvoker)(nil)

func NewFFmpegInvoker(encoderBin, probeBin string, timeout time.Duration) *FFmpegInvoker {
	if encoderBin == "" {
		encoderBin = "ffmpeg"
	}
	if probeBin == "" {
		probeBin = "ffprobe"
	}
	return &FFmpegInvoker{encoderBin: encoderBin, probeBin: probeBin, timeout: timeout}
}

func (i *FFmpegInvoker) RunEncoder(ctx context.Context, args ...string) (port.InvokeResult, error) {
	return i.run(ctx, i.encoderBin, args)
}

func (i *FFmpegInvoker) RunProbe(ctx context.Context, args ...string) (port.InvokeResult, error) {
	return i.run(ctx, i.probeBin, args)
}

// EncoderAvailable probes the encoder binary with a version flag, once per
// process. The result is cached so every upload does not re-probe.
func (i *FFmpegInvoker) EncoderAvailable() bool {
	i.availOnce.Do(func() {
		res, err := i.run(context.Background(), i.encoderBin, []string{"-version"})
		i.available = err == nil && res.ExitCode == 0
		if !i.available {
			logger.Warnf(context.Background(), "encoder binary %q not reachable, video uploads degrade to passthrough", i.encoderBin)
		}
	})
	return i.available
}

func (i *FFmpegInvoker) run(ctx context.Context, bin string, args []string) (port.InvokeResult, error) {
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := port.InvokeResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		return res, err
	}
	return res, nil
}
