package service

import (
	"testing"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/modules/event/entity"

	"github.com/stretchr/testify/assert"
)

func dayAt(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(dayAt(2024, time.January, 1, 9, 0), dayAt(2024, time.January, 1, 23, 59)))
	assert.Equal(t, 1, DaysBetween(dayAt(2024, time.January, 1, 23, 59), dayAt(2024, time.January, 2, 0, 0)))
	assert.Equal(t, -7, DaysBetween(dayAt(2024, time.January, 8, 12, 0), dayAt(2024, time.January, 1, 12, 0)))
	// Leap day.
	assert.Equal(t, 2, DaysBetween(dayAt(2024, time.February, 28, 10, 0), dayAt(2024, time.March, 1, 10, 0)))
}

func TestOccursOnSingleEvent(t *testing.T) {
	ev := entity.Event{
		Title:         "Dentist",
		StartDateTime: dayAt(2024, time.January, 10, 14, 0),
		EndDateTime:   dayAt(2024, time.January, 10, 15, 0),
		IsRepeat:      false,
	}

	assert.True(t, OccursOn(ev, dayAt(2024, time.January, 10, 0, 0)))
	assert.False(t, OccursOn(ev, dayAt(2024, time.January, 9, 0, 0)))
	assert.False(t, OccursOn(ev, dayAt(2024, time.January, 11, 0, 0)))
}

func TestOccursOnMultiDayEvent(t *testing.T) {
	ev := entity.Event{
		Title:         "Conference",
		StartDateTime: dayAt(2024, time.March, 4, 9, 0),
		EndDateTime:   dayAt(2024, time.March, 6, 17, 0),
		IsRepeat:      false,
	}

	for day := 4; day <= 6; day++ {
		assert.True(t, OccursOn(ev, dayAt(2024, time.March, day, 0, 0)), "day %d", day)
	}
	assert.False(t, OccursOn(ev, dayAt(2024, time.March, 3, 0, 0)))
	assert.False(t, OccursOn(ev, dayAt(2024, time.March, 7, 0, 0)))
}

func TestOccursOnWeeklyRepeat(t *testing.T) {
	ev := entity.Event{
		Title:         "Standup",
		StartDateTime: dayAt(2024, time.January, 1, 9, 0),
		EndDateTime:   dayAt(2024, time.January, 1, 9, 30),
		IsRepeat:      true,
	}

	// Every 7th day from the anchor, open-ended.
	for weeks := 0; weeks < 8; weeks++ {
		target := dayAt(2024, time.January, 1, 0, 0).AddDate(0, 0, weeks*7)
		assert.True(t, OccursOn(ev, target), "week %d", weeks)
	}

	assert.False(t, OccursOn(ev, dayAt(2024, time.January, 2, 0, 0)))
	assert.False(t, OccursOn(ev, dayAt(2024, time.January, 4, 0, 0)))
	// Before the anchor never matches, even on the right weekday.
	assert.False(t, OccursOn(ev, dayAt(2023, time.December, 25, 0, 0)))
}

func TestOccursOnWeeklyRepeatAcrossDSTTransition(t *testing.T) {
	// Day arithmetic is anchored on UTC dates, so a 23-hour or 25-hour local
	// day does not shift the 7-day cadence.
	ev := entity.Event{
		Title:         "Yoga",
		StartDateTime: dayAt(2024, time.March, 4, 18, 0),
		EndDateTime:   dayAt(2024, time.March, 4, 19, 0),
		IsRepeat:      true,
	}

	assert.True(t, OccursOn(ev, dayAt(2024, time.March, 11, 0, 0)))
	assert.True(t, OccursOn(ev, dayAt(2024, time.March, 18, 0, 0)))
	assert.False(t, OccursOn(ev, dayAt(2024, time.March, 12, 0, 0)))
}

func TestOccursOnRepeatCrossingMidnightAnchorsOnStartDate(t *testing.T) {
	// The stored span ends the next day; only the start date drives the cadence.
	ev := entity.Event{
		Title:         "Night shift",
		StartDateTime: dayAt(2024, time.January, 1, 22, 0),
		EndDateTime:   dayAt(2024, time.January, 2, 2, 0),
		IsRepeat:      true,
	}

	assert.True(t, OccursOn(ev, dayAt(2024, time.January, 8, 0, 0)))
	assert.False(t, OccursOn(ev, dayAt(2024, time.January, 9, 0, 0)))
}

func TestEventsOnDate(t *testing.T) {
	events := []entity.Event{
		{Title: "A", StartDateTime: dayAt(2024, time.May, 6, 9, 0), EndDateTime: dayAt(2024, time.May, 6, 10, 0)},
		{Title: "B", StartDateTime: dayAt(2024, time.May, 7, 9, 0), EndDateTime: dayAt(2024, time.May, 7, 10, 0)},
		{Title: "C", StartDateTime: dayAt(2024, time.April, 29, 12, 0), EndDateTime: dayAt(2024, time.April, 29, 13, 0), IsRepeat: true},
	}

	matched := EventsOnDate(events, dayAt(2024, time.May, 6, 0, 0))

	assert.Len(t, matched, 2)
	assert.Equal(t, "A", matched[0].Title)
	assert.Equal(t, "C", matched[1].Title)
}

func TestEventsOnDateEmptyResult(t *testing.T) {
	events := []entity.Event{
		{Title: "A", StartDateTime: dayAt(2024, time.May, 6, 9, 0), EndDateTime: dayAt(2024, time.May, 6, 10, 0)},
	}

	matched := EventsOnDate(events, dayAt(2024, time.May, 20, 0, 0))
	assert.NotNil(t, matched)
	assert.Empty(t, matched)
}

func TestNextOccurrenceOnOrAfter(t *testing.T) {
	single := entity.Event{
		StartDateTime: dayAt(2024, time.June, 10, 15, 0),
		EndDateTime:   dayAt(2024, time.June, 10, 16, 0),
	}
	assert.Equal(t, single.StartDateTime, NextOccurrenceOnOrAfter(single, dayAt(2024, time.June, 1, 0, 0)))
	assert.True(t, NextOccurrenceOnOrAfter(single, dayAt(2024, time.June, 11, 0, 0)).IsZero())

	weekly := entity.Event{
		StartDateTime: dayAt(2024, time.June, 3, 9, 0),
		EndDateTime:   dayAt(2024, time.June, 3, 10, 0),
		IsRepeat:      true,
	}
	assert.Equal(t, weekly.StartDateTime, NextOccurrenceOnOrAfter(weekly, dayAt(2024, time.May, 1, 0, 0)))

	next := NextOccurrenceOnOrAfter(weekly, dayAt(2024, time.June, 4, 0, 0))
	assert.Equal(t, dayAt(2024, time.June, 10, 9, 0), next)

	// Later the same day still counts as on-or-after the anchor week.
	sameDay := NextOccurrenceOnOrAfter(weekly, dayAt(2024, time.June, 10, 9, 0))
	assert.Equal(t, dayAt(2024, time.June, 10, 9, 0), sameDay)
}
