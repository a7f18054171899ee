package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeFailStale = "media:fail_stale"

type FailStalePayload struct {
	MediaID string `json:"media_id"`
}

// NewFailStaleTask creates an Asynq task marking a stranded asset failed.
func NewFailStaleTask(mediaID string) (*asynq.Task, error) {
	p := FailStalePayload{MediaID: mediaID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal fail-stale payload: %w", err)
	}
	return asynq.NewTask(TypeFailStale, data), nil
}

// ParseFailStalePayload parses the task payload to FailStalePayload.
func ParseFailStalePayload(t *asynq.Task) (FailStalePayload, error) {
	var p FailStalePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return FailStalePayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
