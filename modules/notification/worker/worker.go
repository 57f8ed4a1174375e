package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/core/config"
	"github.com/dancoopper/COMP3074-MobileApp/core/logger"
	"github.com/dancoopper/COMP3074-MobileApp/modules/notification/dto"
	"github.com/dancoopper/COMP3074-MobileApp/modules/notification/service"

	"github.com/hibiken/asynq"
)

// Worker consumes scheduled reminder tasks.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewWorker(cfg config.RedisConfig) *Worker {
	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 5,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(service.TaskTypeEventReminder, HandleEventReminder)

	return &Worker{server: server, mux: mux}
}

// Start runs the task server in the background.
func (w *Worker) Start() error {
	return w.server.Start(w.mux)
}

// Shutdown waits for in-flight tasks to finish.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

// HandleEventReminder delivers a reminder for an upcoming event occurrence.
// Delivery is a structured log line; push transport sits behind it later.
func HandleEventReminder(ctx context.Context, t *asynq.Task) error {
	var payload dto.EventReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal reminder payload: %w", err)
	}

	logger.Info("EventReminder:Deliver",
		"event_id", payload.EventID,
		"user_id", payload.UserID.String(),
		"title", payload.Title,
		"starts_at", payload.StartDateTime.Format(time.RFC3339),
	)
	return nil
}
