package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"Backend-FormFlow/src/logger"

	"github.com/hibiken/asynq"
)

// FormPurger hard-deletes soft-deleted forms.
type FormPurger interface {
	PurgeDeleted(ctx context.Context, cutoff time.Time) (int64, error)
}

// UploadRemover deletes stored upload files.
type UploadRemover interface {
	Remove(names ...string) int
}

// HandlePurgeDeletedForms ลบฟอร์มที่ถูก soft delete เกินระยะเวลาที่กำหนด
func HandlePurgeDeletedForms(purger FormPurger, now func() time.Time) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload PurgeDeletedFormsPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Errorf("❌ Payload decode error: %v", err)
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if payload.OlderThan <= 0 {
			logger.Warn("⚠️ purge task without retention period. Skipping.")
			return nil
		}

		cutoff := now().Add(-payload.OlderThan)
		n, err := purger.PurgeDeleted(ctx, cutoff)
		if err != nil {
			logger.Errorf("❌ Failed to purge deleted forms: %v", err)
			return err
		}
		logger.Infof("🧹 Purged %d form(s) deleted before %s", n, cutoff.Format(time.RFC3339))
		return nil
	}
}

// HandleDiscardUploads ลบไฟล์ของคำตอบที่ถูกปฏิเสธ
func HandleDiscardUploads(remover UploadRemover) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload DiscardUploadsPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Errorf("❌ Payload decode error: %v", err)
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		removed := remover.Remove(payload.Filenames...)
		logger.Debugf("🗑️ discarded %d/%d upload(s)", removed, len(payload.Filenames))
		return nil
	}
}

// RegisterHandlers ลงทะเบียน Handler ทั้งหมดของ jobs
func RegisterHandlers(mux *asynq.ServeMux, purger FormPurger, remover UploadRemover) {
	mux.HandleFunc(TypePurgeDeletedForms, HandlePurgeDeletedForms(purger, time.Now))
	mux.HandleFunc(TypeDiscardUploads, HandleDiscardUploads(remover))
}
