package mock

import (
	"context"

	"github.com/parkatlas/park-media-go/internal/port"
)

// Processor implements the pipeline interface for tests.
type Processor struct {
	ResultOut  *port.ProcessingResult
	ProcessErr error

	ProcessCalled bool
	DataIn        []byte
	ContentTypeIn string
	FilenameIn    string
}

var _ port.Processor = (*Processor)(nil)

func (m *Processor) Process(ctx context.Context, data []byte, contentType, filename string) (*port.ProcessingResult, error) {
	m.ProcessCalled = true
	m.DataIn = data
	m.ContentTypeIn = contentType
	m.FilenameIn = filename
	if m.ProcessErr != nil {
		return nil, m.ProcessErr
	}
	return m.ResultOut, nil
}
