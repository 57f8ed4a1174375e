package repository

import (
	"context"
	"database/sql"

	"github.com/dancoopper/COMP3074-MobileApp/core/database"
	"github.com/dancoopper/COMP3074-MobileApp/core/logger"
	"github.com/dancoopper/COMP3074-MobileApp/modules/event/entity"

	"github.com/google/uuid"
)

// EventRepository handles event database operations (events table)
type EventRepository struct {
	DB database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the repository contract. There is
// deliberately no date-filtered query: callers fetch the full collection and
// filter in memory.
type EventRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetEventByID(ctx context.Context, id int64, userID uuid.UUID) (*entity.Event, error)
	GetAllEvents(ctx context.Context, userID uuid.UUID) ([]entity.Event, error)
	UpdateEvent(ctx context.Context, event *entity.Event) error
	DeleteEvent(ctx context.Context, id int64, userID uuid.UUID) error
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (user_id, title, description, type, start_datetime, end_datetime, is_repeat)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, title, description, type, start_datetime, end_datetime, is_repeat
	`

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.UserID, event.Title, event.Description, event.Type,
		event.StartDateTime, event.EndDateTime, event.IsRepeat)
	if err != nil {
		logger.Error("EventRepository:CreateEvent", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id int64, userID uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT id, user_id, title, description, type, start_datetime, end_datetime, is_repeat
		FROM events WHERE id = $1 AND user_id = $2
	`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventByID", err)
		return nil, err
	}

	return &event, nil
}

// GetAllEvents returns the user's full event collection ordered by start
// time, the store's natural order.
func (r *EventRepository) GetAllEvents(ctx context.Context, userID uuid.UUID) ([]entity.Event, error) {
	query := `
		SELECT id, user_id, title, description, type, start_datetime, end_datetime, is_repeat
		FROM events
		WHERE user_id = $1
		ORDER BY start_datetime ASC
	`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query, userID)
	if err != nil {
		logger.Error("EventRepository:GetAllEvents", err)
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET title = $3, description = $4, type = $5, start_datetime = $6, end_datetime = $7, is_repeat = $8
		WHERE id = $1 AND user_id = $2
	`

	err := r.DB.ExecContext(ctx, query,
		event.ID, event.UserID, event.Title, event.Description, event.Type,
		event.StartDateTime, event.EndDateTime, event.IsRepeat)
	if err != nil {
		logger.Error("EventRepository:UpdateEvent", "event_id", event.ID, "error", err)
		return err
	}

	return nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id int64, userID uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1 AND user_id = $2`

	err := r.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		logger.Error("EventRepository:DeleteEvent", "event_id", id, "error", err)
		return err
	}

	return nil
}
