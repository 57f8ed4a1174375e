package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/core/config"
	"github.com/dancoopper/COMP3074-MobileApp/core/logger"
	"github.com/dancoopper/COMP3074-MobileApp/modules/event/entity"
	"github.com/dancoopper/COMP3074-MobileApp/modules/notification/dto"

	"github.com/hibiken/asynq"
)

const TaskTypeEventReminder = "notification:event_reminder"

// NotificationService schedules delayed reminder tasks through asynq.
// It satisfies the event module's ReminderScheduler.
type NotificationService struct {
	client    *asynq.Client
	inspector *asynq.Inspector
}

func NewNotificationService(cfg config.RedisConfig) *NotificationService {
	opt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	return &NotificationService{
		client:    asynq.NewClient(opt),
		inspector: asynq.NewInspector(opt),
	}
}

// ScheduleEventReminder enqueues a reminder task to run at the given time.
// Rescheduling an updated event reuses the same task ID so the old
// reminder is replaced rather than duplicated.
func (s *NotificationService) ScheduleEventReminder(ctx context.Context, event entity.Event, at time.Time) error {
	payload, err := json.Marshal(dto.EventReminderPayload{
		EventID:       event.ID,
		UserID:        event.UserID,
		Title:         event.Title,
		StartDateTime: event.StartDateTime,
	})
	if err != nil {
		return fmt.Errorf("marshal reminder payload: %w", err)
	}

	taskID := reminderTaskID(event.ID)
	// Drop any previously scheduled reminder for this event so updates
	// replace instead of duplicate.
	_ = s.inspector.DeleteTask("default", taskID)

	task := asynq.NewTask(TaskTypeEventReminder, payload)
	info, err := s.client.EnqueueContext(ctx, task,
		asynq.ProcessAt(at),
		asynq.TaskID(taskID),
	)
	if err != nil {
		return fmt.Errorf("enqueue reminder: %w", err)
	}

	logger.Info("NotificationService:ScheduleEventReminder", "event_id", event.ID, "task_id", info.ID, "process_at", at.Format(time.RFC3339))
	return nil
}

// CancelEventReminder drops a pending reminder, used when an event is deleted.
func (s *NotificationService) CancelEventReminder(ctx context.Context, eventID int64) error {
	if err := s.inspector.DeleteTask("default", reminderTaskID(eventID)); err != nil {
		if errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
			return nil
		}
		return fmt.Errorf("delete reminder: %w", err)
	}
	logger.Info("NotificationService:CancelEventReminder", "event_id", eventID)
	return nil
}

func (s *NotificationService) Close() error {
	return s.client.Close()
}

func reminderTaskID(eventID int64) string {
	return fmt.Sprintf("event-reminder-%d", eventID)
}
