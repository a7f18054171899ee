package worker

import (
	"context"
	"log"

	"github.com/parkatlas/park-media-go/internal/port"
	"github.com/parkatlas/park-media-go/internal/task"
	"github.com/parkatlas/park-media-go/internal/uuid"
)

// FailStaleHandler handles a fail-stale task. It converts the incoming task
// payload to the input expected by the StaleFailer service and delegates
// the call.
func FailStaleHandler(ctx context.Context, p task.FailStalePayload, svc port.StaleFailer) error {
	id, err := uuid.Parse(p.MediaID)
	if err != nil {
		log.Printf("❌  Invalid media ID %q: %v", p.MediaID, err)
		return err
	}

	if err := svc.FailStale(ctx, id); err != nil {
		log.Printf("❌  Failed to finalise stale media #%s: %v", id, err)
		return err
	}

	log.Printf("✅  Finalised stale media #%s", id)
	return nil
}
