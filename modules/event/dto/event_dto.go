package dto

import (
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/core/errors"
	"github.com/dancoopper/COMP3074-MobileApp/modules/event/entity"

	"github.com/google/uuid"
)

// CreateEventRequest is the event form. Field validation lives here, not on
// the entity.
type CreateEventRequest struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	StartDateTime time.Time `json:"start_datetime"`
	EndDateTime   time.Time `json:"end_datetime"`
	IsRepeat      bool      `json:"is_repeat"`
}

func (r *CreateEventRequest) Validate() *errors.AppError {
	if r.Title == "" {
		return errors.New(errors.ErrInvalidInput, "title is required")
	}
	if r.StartDateTime.IsZero() || r.EndDateTime.IsZero() {
		return errors.New(errors.ErrInvalidInput, "start_datetime and end_datetime are required")
	}
	if r.EndDateTime.Before(r.StartDateTime) {
		return errors.New(errors.ErrInvalidInput, "end_datetime must not be before start_datetime")
	}
	return nil
}

func (r *CreateEventRequest) ToEntity(userID uuid.UUID) *entity.Event {
	return &entity.Event{
		UserID:        userID,
		Title:         r.Title,
		Description:   r.Description,
		Type:          r.Type,
		StartDateTime: r.StartDateTime,
		EndDateTime:   r.EndDateTime,
		IsRepeat:      r.IsRepeat,
	}
}

// UpdateEventRequest edits an existing event; the edit produces a full
// replacement record under the same id.
type UpdateEventRequest struct {
	CreateEventRequest
}

type EventResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	StartDateTime time.Time `json:"start_datetime"`
	EndDateTime   time.Time `json:"end_datetime"`
	IsRepeat      bool      `json:"is_repeat"`
}

func NewEventResponse(e *entity.Event) EventResponse {
	return EventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Type:          e.Type,
		StartDateTime: e.StartDateTime,
		EndDateTime:   e.EndDateTime,
		IsRepeat:      e.IsRepeat,
	}
}

func NewEventResponses(events []entity.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, NewEventResponse(&events[i]))
	}
	return out
}

// TimelineResponse maps a day's events plus the current time onto a vertical
// axis of the requested height.
type TimelineResponse struct {
	Date        string          `json:"date"`
	NowOffset   float64         `json:"now_offset"`
	Blocks      []TimelineBlock `json:"blocks"`
	TotalHeight float64         `json:"total_height"`
}

type TimelineBlock struct {
	Event  EventResponse `json:"event"`
	Top    float64       `json:"top"`
	Height float64       `json:"height"`
}
