package dto

import (
	"fmt"
	"time"
)

// ClockTime is a time-of-day with no date component.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func (t ClockTime) Before(other ClockTime) bool {
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}
	return t.Minute < other.Minute
}

// At projects the time-of-day onto the given calendar date.
func (t ClockTime) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// TimeRange is a (start, end) pair of times-of-day. Producers are expected to
// keep start < end within a day; the parser deliberately passes malformed
// ranges through unmodified.
type TimeRange struct {
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

// Contains reports whether t lies within the range, start inclusive, end
// exclusive.
func (r TimeRange) Contains(t ClockTime) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// ParsedAvailability is the output of one parse call: a date and the time
// slots found. Transient, consumed immediately by the caller.
type ParsedAvailability struct {
	Date      time.Time   `json:"date"`
	TimeSlots []TimeRange `json:"time_slots"`
}

type ParseRequest struct {
	Text string `json:"text"`
}

// SlotResponse is the busy/available classification of one hour slot.
type SlotResponse struct {
	Hour              int      `json:"hour"`
	Busy              bool     `json:"busy"`
	ConflictingTitles []string `json:"conflicting_titles,omitempty"`

	// Booking mode fields; ImportedAvailable is always true outside it.
	ImportedAvailable bool `json:"imported_available"`
	Bookable          bool `json:"bookable"`
}

type DaySlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// BookingCheckRequest imports third-party availability text and cross-checks
// it against the local calendar.
type BookingCheckRequest struct {
	Text string `json:"text"`
}

type ShareRequest struct {
	Date    string `json:"date"`  // YYYY-MM-DD
	Hours   []int  `json:"hours"` // selected 1-hour slots
	Booking bool   `json:"booking"`
}

type ShareResponse struct {
	Slug string `json:"slug"`
	URL  string `json:"url"`
	Text string `json:"text"`
}
