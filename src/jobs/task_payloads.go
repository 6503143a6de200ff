package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypePurgeDeletedForms = "form:purge-deleted"

type PurgeDeletedFormsPayload struct {
	// OlderThan is how long a form must have been soft-deleted before it is purged.
	OlderThan time.Duration `json:"older_than"`
}

func NewPurgeDeletedFormsTask(olderThan time.Duration) (*asynq.Task, error) {
	payload, err := json.Marshal(PurgeDeletedFormsPayload{OlderThan: olderThan})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePurgeDeletedForms, payload), nil
}

// jobs/task_payloads.go
const TypeDiscardUploads = "uploads:discard"

type DiscardUploadsPayload struct {
	Filenames []string `json:"filenames"`
}

func NewDiscardUploadsTask(filenames []string) (*asynq.Task, error) {
	payload, err := json.Marshal(DiscardUploadsPayload{Filenames: filenames})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDiscardUploads, payload, asynq.MaxRetry(3)), nil
}
