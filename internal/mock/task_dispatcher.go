package mock

import (
	"context"

	"github.com/parkatlas/park-media-go/internal/port"
	"github.com/parkatlas/park-media-go/internal/uuid"
)

// TaskDispatcher implements the task dispatcher interface for tests.
type TaskDispatcher struct {
	EnqueueErr error

	EnqueueCalled bool
	EnqueuedIDs   []uuid.UUID
}

var _ port.TaskDispatcher = (*TaskDispatcher)(nil)

func (m *TaskDispatcher) EnqueueFailStale(ctx context.Context, id uuid.UUID) error {
	m.EnqueueCalled = true
	if m.EnqueueErr != nil {
		return m.EnqueueErr
	}
	m.EnqueuedIDs = append(m.EnqueuedIDs, id)
	return nil
}
