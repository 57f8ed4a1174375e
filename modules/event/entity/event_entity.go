package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a stored calendar event. A single record with IsRepeat set stands
// for infinitely many weekly instances anchored on the start date.
//
// The record itself carries no validation: required fields (non-empty title,
// end not before start) are enforced by the create/update request DTOs, the
// same way the entry form owned validation in the original design. That is a
// policy choice, not an omission.
type Event struct {
	ID            int64     `db:"id" json:"id"`
	UserID        uuid.UUID `db:"user_id" json:"user_id"`
	Title         string    `db:"title" json:"title"`
	Description   string    `db:"description" json:"description"`
	Type          string    `db:"type" json:"type"`
	StartDateTime time.Time `db:"start_datetime" json:"start_datetime"`
	EndDateTime   time.Time `db:"end_datetime" json:"end_datetime"`
	IsRepeat      bool      `db:"is_repeat" json:"is_repeat"`
}

// Duration is the stored span length; repeating instances keep it on every
// date they recur onto.
func (e Event) Duration() time.Duration {
	return e.EndDateTime.Sub(e.StartDateTime)
}
