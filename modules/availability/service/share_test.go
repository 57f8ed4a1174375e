package service

import (
	"strings"
	"testing"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/modules/availability/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatShareText(t *testing.T) {
	date := time.Date(2025, time.November, 25, 0, 0, 0, 0, time.Local)

	text := FormatShareText(date, []int{14, 12}, false)
	assert.Equal(t,
		"I'm available on Tuesday, Nov 25 at:\n"+
			"- 12:00 to 13:00\n"+
			"- 14:00 to 15:00\n",
		text)

	booking := FormatShareText(date, []int{9}, true)
	assert.Equal(t,
		"I'd like to book time on Tuesday, Nov 25 at:\n"+
			"- 09:00 to 10:00\n",
		booking)
}

// Share output must be consumable by the parser, closing the loop between
// two users of the app.
func TestFormatShareTextRoundTrip(t *testing.T) {
	date := time.Date(2025, time.November, 25, 0, 0, 0, 0, time.Local)
	text := FormatShareText(date, []int{12, 14}, false)

	parsed, err := parseAvailabilityAt(text, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)

	assert.Equal(t, date.Month(), parsed.Date.Month())
	assert.Equal(t, date.Day(), parsed.Date.Day())
	require.Len(t, parsed.TimeSlots, 2)
	assert.Equal(t, dto.TimeRange{Start: dto.ClockTime{Hour: 12}, End: dto.ClockTime{Hour: 13}}, parsed.TimeSlots[0])
	assert.Equal(t, dto.TimeRange{Start: dto.ClockTime{Hour: 14}, End: dto.ClockTime{Hour: 15}}, parsed.TimeSlots[1])
}

func TestShareSlug(t *testing.T) {
	s := ShareSlug("Jane Doe")
	assert.True(t, strings.HasPrefix(s, "jane-doe-"), s)
	assert.NotEqual(t, s, ShareSlug("Jane Doe"))

	// Names with no sluggable characters fall back to a generic prefix.
	empty := ShareSlug("!!!")
	assert.True(t, strings.HasPrefix(empty, "availability-"), empty)
}
