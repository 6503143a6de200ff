package jobs

import (
	"fmt"
	"time"

	"Backend-FormFlow/src/logger"

	"github.com/hibiken/asynq"
)

// Worker runs the asynq server and the scheduler for periodic tasks.
type Worker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
}

// PurgeSchedule runs the purge once a day.
const PurgeSchedule = "@daily"

// StartWorker starts processing tasks. A zero purgeAfter disables the purge schedule.
func StartWorker(opt asynq.RedisClientOpt, purger FormPurger, remover UploadRemover, purgeAfter time.Duration) (*Worker, error) {
	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: 5,
		Queues:      map[string]int{"default": 1},
		Logger:      logger.Log,
	})

	mux := asynq.NewServeMux()
	RegisterHandlers(mux, purger, remover)
	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("start asynq server: %w", err)
	}
	w := &Worker{server: srv}

	if purgeAfter > 0 {
		task, err := NewPurgeDeletedFormsTask(purgeAfter)
		if err != nil {
			srv.Shutdown()
			return nil, err
		}
		scheduler := asynq.NewScheduler(opt, &asynq.SchedulerOpts{Location: time.Local, Logger: logger.Log})
		if _, err := scheduler.Register(PurgeSchedule, task); err != nil {
			srv.Shutdown()
			return nil, fmt.Errorf("register purge schedule: %w", err)
		}
		if err := scheduler.Start(); err != nil {
			srv.Shutdown()
			return nil, fmt.Errorf("start scheduler: %w", err)
		}
		w.scheduler = scheduler
		logger.Infof("⏰ purge of deleted forms scheduled %s (older than %s)", PurgeSchedule, purgeAfter)
	}

	logger.Info("✅ Asynq worker started")
	return w, nil
}

// Shutdown stops the scheduler and waits for running tasks.
func (w *Worker) Shutdown() {
	if w == nil {
		return
	}
	if w.scheduler != nil {
		w.scheduler.Shutdown()
	}
	w.server.Shutdown()
}
