package service

import (
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/modules/availability/dto"
	"github.com/dancoopper/COMP3074-MobileApp/modules/event/entity"
)

// SlotStatus is the busy/free classification of a one-hour slot, with every
// conflicting event when busy. Presentation may choose to show only the
// first.
type SlotStatus struct {
	Hour      int
	Busy      bool
	Conflicts []entity.Event
}

// EffectiveSpan computes the concrete start/end of an event instance on the
// query date. Non-repeating events keep their stored span. Repeating events
// are re-anchored: same time-of-day on the query date, same duration as the
// stored span, whichever date it recurs onto.
func EffectiveSpan(event entity.Event, date time.Time) (time.Time, time.Time) {
	if !event.IsRepeat {
		return event.StartDateTime, event.EndDateTime
	}

	start := time.Date(date.Year(), date.Month(), date.Day(),
		event.StartDateTime.Hour(), event.StartDateTime.Minute(), event.StartDateTime.Second(), 0,
		event.StartDateTime.Location())
	return start, start.Add(event.Duration())
}

// Overlaps is the half-open interval test: touching endpoints do not
// conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// StatusForHour classifies the slot [hour:00, hour+1:00) on the given date
// against a day's events.
func StatusForHour(date time.Time, hour int, events []entity.Event) SlotStatus {
	hourStart := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
	hourEnd := hourStart.Add(time.Hour)

	status := SlotStatus{Hour: hour}
	for _, ev := range events {
		effStart, effEnd := EffectiveSpan(ev, date)
		if Overlaps(effStart, effEnd, hourStart, hourEnd) {
			status.Busy = true
			status.Conflicts = append(status.Conflicts, ev)
		}
	}
	return status
}

// InImportedRanges reports whether the hour start lies inside at least one
// imported time range (start inclusive, end exclusive).
func InImportedRanges(hour int, ranges []dto.TimeRange) bool {
	hourStart := dto.ClockTime{Hour: hour}
	for _, r := range ranges {
		if r.Contains(hourStart) {
			return true
		}
	}
	return false
}

// Bookable composes the local busy check with imported availability: a slot
// can be booked only when it is free locally and the other party advertised
// it. The local overlap algorithm itself is unchanged by booking mode.
func Bookable(status SlotStatus, importedAvailable bool) bool {
	return importedAvailable && !status.Busy
}
