package service

import (
	"testing"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/modules/availability/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var parserNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)

func TestParseAvailability(t *testing.T) {
	text := "I'm available on Tuesday, Nov 25 at:\n" +
		"- 12:00 to 13:00\n" +
		"- 14:00 to 15:00\n"

	parsed, err := parseAvailabilityAt(text, parserNow)
	require.NoError(t, err)

	assert.Equal(t, 2024, parsed.Date.Year())
	assert.Equal(t, time.November, parsed.Date.Month())
	assert.Equal(t, 25, parsed.Date.Day())

	require.Len(t, parsed.TimeSlots, 2)
	assert.Equal(t, dto.TimeRange{Start: dto.ClockTime{Hour: 12}, End: dto.ClockTime{Hour: 13}}, parsed.TimeSlots[0])
	assert.Equal(t, dto.TimeRange{Start: dto.ClockTime{Hour: 14}, End: dto.ClockTime{Hour: 15}}, parsed.TimeSlots[1])
}

func TestParseAvailabilitySkipsNoiseLines(t *testing.T) {
	text := "Booking request for Dec 1\n" +
		"\n" +
		"see you there\n" +
		"- 9:00 to 10:30\n" +
		"cheers\n"

	parsed, err := parseAvailabilityAt(text, parserNow)
	require.NoError(t, err)

	require.Len(t, parsed.TimeSlots, 1)
	assert.Equal(t, dto.ClockTime{Hour: 9, Minute: 0}, parsed.TimeSlots[0].Start)
	assert.Equal(t, dto.ClockTime{Hour: 10, Minute: 30}, parsed.TimeSlots[0].End)
}

func TestParseAvailabilityNoDateHeader(t *testing.T) {
	_, err := parseAvailabilityAt("hello there\n- 12:00 to 13:00\n", parserNow)
	assert.ErrorIs(t, err, ErrNoDateHeader)
}

func TestParseAvailabilityBadCalendarDate(t *testing.T) {
	// Feb 30 matches the header pattern but is not a real date.
	_, err := parseAvailabilityAt("available on Feb 30\n- 12:00 to 13:00\n", parserNow)
	assert.ErrorIs(t, err, ErrBadDate)
}

func TestParseAvailabilityNoTimeSlots(t *testing.T) {
	_, err := parseAvailabilityAt("I'm available on Nov 25 at:\nno times listed\n", parserNow)
	assert.ErrorIs(t, err, ErrNoTimeSlots)
}

func TestParseAvailabilityBadTimeOfDay(t *testing.T) {
	_, err := parseAvailabilityAt("Nov 25\n- 25:00 to 26:00\n", parserNow)
	assert.ErrorIs(t, err, ErrBadTimeSlot)
}

func TestParseAvailabilityAllOrNothing(t *testing.T) {
	// One good slot plus one invalid one fails the whole parse.
	text := "Nov 25\n- 12:00 to 13:00\n- 24:61 to 25:00\n"
	parsed, err := parseAvailabilityAt(text, parserNow)
	assert.Nil(t, parsed)
	assert.ErrorIs(t, err, ErrBadTimeSlot)
}

// The parser passes end-before-start ranges through as matched. Deliberate
// permissiveness; downstream booking checks treat such a range as empty.
func TestParseAvailabilityKeepsBackwardsRange(t *testing.T) {
	parsed, err := parseAvailabilityAt("Nov 25\n- 15:00 to 14:00\n", parserNow)
	require.NoError(t, err)

	require.Len(t, parsed.TimeSlots, 1)
	r := parsed.TimeSlots[0]
	assert.Equal(t, dto.ClockTime{Hour: 15}, r.Start)
	assert.Equal(t, dto.ClockTime{Hour: 14}, r.End)
	// Nothing is inside a backwards range.
	assert.False(t, InImportedRanges(14, parsed.TimeSlots))
	assert.False(t, InImportedRanges(15, parsed.TimeSlots))
}

func TestParseAvailabilityCurrentYearAssumption(t *testing.T) {
	earlier := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.Local)
	parsed, err := parseAvailabilityAt("Jan 5\n- 8:00 to 9:00\n", earlier)
	require.NoError(t, err)
	assert.Equal(t, 2023, parsed.Date.Year())
}
