package port

import (
	"context"

	"github.com/parkatlas/park-media-go/internal/uuid"
)

// TaskDispatcher enqueues asynchronous tasks related to media assets.
type TaskDispatcher interface {
	EnqueueFailStale(ctx context.Context, id uuid.UUID) error
}
