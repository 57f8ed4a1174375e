package service

import (
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/modules/event/entity"
)

// DateOf strips the time-of-day component, keeping only the civil date.
// Day arithmetic is done on UTC-anchored dates so DST transitions in the
// local zone cannot skew the count.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)) / (24 * time.Hour))
}

// OccursOn reports whether an instance of the event falls on targetDate.
//
// Non-repeating events match every date of their stored [start, end] span,
// inclusive. Repeating events match their start date and every 7th day after
// it, open-ended; dates before the first occurrence never match.
//
// A repeating event whose stored span crosses midnight is anchored on the
// start date alone: the matcher projects the same time-of-day span onto each
// matching date and ignores the end date's weekday. Defined-but-unusual
// behavior, kept as is.
func OccursOn(event entity.Event, targetDate time.Time) bool {
	if !event.IsRepeat {
		days := DaysBetween(event.StartDateTime, targetDate)
		span := DaysBetween(event.StartDateTime, event.EndDateTime)
		return days >= 0 && days <= span
	}

	days := DaysBetween(event.StartDateTime, targetDate)
	return days >= 0 && days%7 == 0
}

// EventsOnDate filters a full event snapshot down to the instances active on
// targetDate. Order follows the input snapshot (store order); an empty result
// is a valid outcome, not an error.
func EventsOnDate(events []entity.Event, targetDate time.Time) []entity.Event {
	matched := make([]entity.Event, 0)
	for _, ev := range events {
		if OccursOn(ev, targetDate) {
			matched = append(matched, ev)
		}
	}
	return matched
}

// NextOccurrenceOnOrAfter returns the start of the first instance at or after
// the given moment, or the zero time when there is none. Used to schedule
// reminders.
func NextOccurrenceOnOrAfter(event entity.Event, from time.Time) time.Time {
	if !event.IsRepeat {
		if event.StartDateTime.Before(from) {
			return time.Time{}
		}
		return event.StartDateTime
	}

	start := event.StartDateTime
	if !start.Before(from) {
		return start
	}

	days := DaysBetween(start, from)
	weeks := days / 7
	candidate := start.AddDate(0, 0, weeks*7)
	for candidate.Before(from) {
		candidate = candidate.AddDate(0, 0, 7)
	}
	return candidate
}
