package mock

import (
	"context"

	"github.com/parkatlas/park-media-go/internal/port"
)

// InvokerCall records one subprocess invocation.
type InvokerCall struct {
	Binary string
	Args   []string
}

// Invoker implements the subprocess invoker interface for tests.
// EncoderFn and ProbeFn, when set, take precedence over the static outputs
// so tests can inspect arguments and write expected output files.
type Invoker struct {
	EncoderOut port.InvokeResult
	ProbeOut   port.InvokeResult
	Available  bool

	EncoderErr error
	ProbeErr   error

	EncoderFn func(args []string) (port.InvokeResult, error)
	ProbeFn   func(args []string) (port.InvokeResult, error)

	Calls []InvokerCall
}

var _ port.Invoker = (*Invoker)(nil)

func (m *Invoker) RunEncoder(ctx context.Context, args ...string) (port.InvokeResult, error) {
	m.Calls = append(m.Calls, InvokerCall{Binary: "encoder", Args: args})
	if m.EncoderFn != nil {
		return m.EncoderFn(args)
	}
	if m.EncoderErr != nil {
		return port.InvokeResult{}, m.EncoderErr
	}
	return m.EncoderOut, nil
}

func (m *Invoker) RunProbe(ctx context.Context, args ...string) (port.InvokeResult, error) {
	m.Calls = append(m.Calls, InvokerCall{Binary: "probe", Args: args})
	if m.ProbeFn != nil {
		return m.ProbeFn(args)
	}
	if m.ProbeErr != nil {
		return port.InvokeResult{}, m.ProbeErr
	}
	return m.ProbeOut, nil
}

func (m *Invoker) EncoderAvailable() bool {
	return m.Available
}
