package port

import "context"

// InvokeResult captures one finished subprocess run.
type InvokeResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Invoker shells out to the external encoding and probing binaries.
// Arguments are always passed as a structured slice, never through a shell.
type Invoker interface {
	RunEncoder(ctx context.Context, args ...string) (InvokeResult, error)
	RunProbe(ctx context.Context, args ...string) (InvokeResult, error)
	// EncoderAvailable reports whether the encoder binary responds at all.
	// The answer is cached for the process lifetime.
	EncoderAvailable() bool
}
