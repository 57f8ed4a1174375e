package service

import (
	"context"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/core/errors"
	"github.com/dancoopper/COMP3074-MobileApp/core/logger"
	"github.com/dancoopper/COMP3074-MobileApp/modules/event/dto"
	"github.com/dancoopper/COMP3074-MobileApp/modules/event/entity"
	"github.com/dancoopper/COMP3074-MobileApp/modules/event/repository"

	"github.com/google/uuid"
)

// ReminderScheduler enqueues a reminder for an event instance. Implemented by
// the notification service; nil disables reminders.
type ReminderScheduler interface {
	ScheduleEventReminder(ctx context.Context, event entity.Event, at time.Time) error
	CancelEventReminder(ctx context.Context, eventID int64) error
}

type EventService interface {
	CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*entity.Event, *errors.AppError)
	UpdateEvent(ctx context.Context, userID uuid.UUID, id int64, req *dto.UpdateEventRequest) (*entity.Event, *errors.AppError)
	DeleteEvent(ctx context.Context, userID uuid.UUID, id int64) *errors.AppError
	ListEvents(ctx context.Context, userID uuid.UUID) ([]entity.Event, *errors.AppError)
	DayEvents(ctx context.Context, userID uuid.UUID, date time.Time) ([]entity.Event, *errors.AppError)
	Timeline(ctx context.Context, userID uuid.UUID, date time.Time, totalHeight float64, now time.Time) (*dto.TimelineResponse, *errors.AppError)
}

type eventService struct {
	repo      repository.EventRepositoryInterface
	reminders ReminderScheduler
}

func NewEventService(repo repository.EventRepositoryInterface, reminders ReminderScheduler) EventService {
	return &eventService{repo: repo, reminders: reminders}
}

func (s *eventService) CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*entity.Event, *errors.AppError) {
	if appErr := req.Validate(); appErr != nil {
		return nil, appErr
	}

	created, err := s.repo.CreateEvent(ctx, req.ToEntity(userID))
	if err != nil {
		logger.Error("EventService:CreateEvent", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create event", err)
	}

	s.scheduleReminder(ctx, *created)
	return created, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, userID uuid.UUID, id int64, req *dto.UpdateEventRequest) (*entity.Event, *errors.AppError) {
	if appErr := req.Validate(); appErr != nil {
		return nil, appErr
	}

	existing, err := s.repo.GetEventByID(ctx, id, userID)
	if err != nil {
		logger.Error("EventService:UpdateEvent:GetEventByID", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load event", err)
	}
	if existing == nil {
		return nil, errors.New(errors.ErrNotFound, "event not found")
	}

	// Edit semantics: full replacement record under the same id.
	updated := req.ToEntity(userID)
	updated.ID = existing.ID

	if err := s.repo.UpdateEvent(ctx, updated); err != nil {
		logger.Error("EventService:UpdateEvent", "event_id", id, "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update event", err)
	}

	s.scheduleReminder(ctx, *updated)
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, userID uuid.UUID, id int64) *errors.AppError {
	existing, err := s.repo.GetEventByID(ctx, id, userID)
	if err != nil {
		logger.Error("EventService:DeleteEvent:GetEventByID", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to load event", err)
	}
	if existing == nil {
		return errors.New(errors.ErrNotFound, "event not found")
	}

	if err := s.repo.DeleteEvent(ctx, id, userID); err != nil {
		logger.Error("EventService:DeleteEvent", "event_id", id, "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete event", err)
	}

	if s.reminders != nil {
		if err := s.reminders.CancelEventReminder(ctx, id); err != nil {
			logger.Warn("EventService:DeleteEvent:CancelEventReminder", "event_id", id, "error", err)
		}
	}
	return nil
}

func (s *eventService) ListEvents(ctx context.Context, userID uuid.UUID) ([]entity.Event, *errors.AppError) {
	events, err := s.repo.GetAllEvents(ctx, userID)
	if err != nil {
		logger.Error("EventService:ListEvents", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list events", err)
	}
	return events, nil
}

// DayEvents fetches the full snapshot once and filters it in memory; the
// store has no date-indexed query.
func (s *eventService) DayEvents(ctx context.Context, userID uuid.UUID, date time.Time) ([]entity.Event, *errors.AppError) {
	events, err := s.repo.GetAllEvents(ctx, userID)
	if err != nil {
		logger.Error("EventService:DayEvents", "date", date.Format("2006-01-02"), "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load events", err)
	}
	return EventsOnDate(events, date), nil
}

func (s *eventService) Timeline(ctx context.Context, userID uuid.UUID, date time.Time, totalHeight float64, now time.Time) (*dto.TimelineResponse, *errors.AppError) {
	if totalHeight <= 0 {
		return nil, errors.New(errors.ErrInvalidInput, "height must be positive")
	}

	events, appErr := s.DayEvents(ctx, userID, date)
	if appErr != nil {
		return nil, appErr
	}

	blocks := make([]dto.TimelineBlock, 0, len(events))
	for i := range events {
		b := BlockFor(events[i], totalHeight)
		blocks = append(blocks, dto.TimelineBlock{
			Event:  dto.NewEventResponse(&events[i]),
			Top:    b.Top,
			Height: b.Height,
		})
	}

	return &dto.TimelineResponse{
		Date:        date.Format("2006-01-02"),
		NowOffset:   TimeToOffset(now, totalHeight),
		Blocks:      blocks,
		TotalHeight: totalHeight,
	}, nil
}

func (s *eventService) scheduleReminder(ctx context.Context, ev entity.Event) {
	if s.reminders == nil {
		return
	}
	next := NextOccurrenceOnOrAfter(ev, time.Now())
	if next.IsZero() {
		return
	}
	if err := s.reminders.ScheduleEventReminder(ctx, ev, next); err != nil {
		// Reminder delivery is best effort; the event itself is already saved.
		logger.Warn("EventService:scheduleReminder", "event_id", ev.ID, "error", err)
	}
}
