package dto

import (
	"time"

	"github.com/google/uuid"
)

// EventReminderPayload is the task body enqueued for a scheduled reminder.
type EventReminderPayload struct {
	EventID       int64     `json:"event_id"`
	UserID        uuid.UUID `json:"user_id"`
	Title         string    `json:"title"`
	StartDateTime time.Time `json:"start_datetime"`
}
