package jobs

import (
	"context"

	"Backend-FormFlow/src/logger"

	"github.com/hibiken/asynq"
)

// UploadDiscarder queues removal of uploads that belong to rejected
// submissions. Without a queue client the files are removed inline.
type UploadDiscarder struct {
	client  *asynq.Client
	remover UploadRemover
}

func NewUploadDiscarder(client *asynq.Client, remover UploadRemover) *UploadDiscarder {
	return &UploadDiscarder{client: client, remover: remover}
}

func (d *UploadDiscarder) DiscardUploads(ctx context.Context, filenames []string) error {
	if len(filenames) == 0 {
		return nil
	}
	if d.client == nil {
		d.remover.Remove(filenames...)
		return nil
	}

	task, err := NewDiscardUploadsTask(filenames)
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, task); err != nil {
		logger.Warnf("⚠️ enqueue %s failed, removing inline: %v", TypeDiscardUploads, err)
		d.remover.Remove(filenames...)
	}
	return nil
}
