package service

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/modules/availability/dto"
)

// Parse failure modes. These are the parser's only errors; empty input lines
// between recognizable ones are skipped, never fatal.
var (
	ErrNoDateHeader = stderrors.New("no recognizable month and day in the first line")
	ErrBadDate      = stderrors.New("header date is not a valid calendar date")
	ErrBadTimeSlot  = stderrors.New("a matched time slot is not a valid time of day")
	ErrNoTimeSlots  = stderrors.New("no recognizable time slots found")
)

var (
	// "Nov 25" anywhere in the header line.
	headerDateRe = regexp.MustCompile(`([A-Za-z]{3})\s+(\d{1,2})`)
	// "12:00 to 13:00" anywhere in a line.
	timeSlotRe = regexp.MustCompile(`(\d{1,2}):(\d{2})\s+to\s+(\d{1,2}):(\d{2})`)
)

// ParseAvailability extracts a date and a list of time ranges from pasted
// free-form availability text, e.g.
//
//	I'm available on Tuesday, Nov 25 at:
//	- 12:00 to 13:00
//	- 14:00 to 15:00
//
// The first line must contain a month abbreviation and day; the year is
// assumed to be the current one. Every later line is scanned independently
// for a "H:MM to H:MM" pattern; lines without one are ignored. The result is
// all-or-nothing: any failure yields a nil result and an error, never partial
// output.
//
// Extracted ranges are passed through as matched: no start<end check, no
// sorting, no overlap normalization. Callers own any further judgement.
func ParseAvailability(text string) (*dto.ParsedAvailability, error) {
	return parseAvailabilityAt(text, time.Now())
}

// parseAvailabilityAt is ParseAvailability with an injectable clock for the
// current-year assumption.
func parseAvailabilityAt(text string, now time.Time) (*dto.ParsedAvailability, error) {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return nil, ErrNoDateHeader
	}

	header := lines[0]
	dateMatch := headerDateRe.FindStringSubmatch(header)
	if dateMatch == nil {
		return nil, ErrNoDateHeader
	}

	monthStr, dayStr := dateMatch[1], dateMatch[2]
	dateStr := fmt.Sprintf("%s %s %d", monthStr, dayStr, now.Year())
	date, err := time.ParseInLocation("Jan 2 2006", dateStr, time.Local)
	if err != nil {
		// Unknown month abbreviation or day out of range for that month.
		return nil, fmt.Errorf("%w: %q", ErrBadDate, dateStr)
	}

	timeSlots := make([]dto.TimeRange, 0)
	for _, line := range lines[1:] {
		m := timeSlotRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		start, err := clockFrom(m[1], m[2])
		if err != nil {
			return nil, err
		}
		end, err := clockFrom(m[3], m[4])
		if err != nil {
			return nil, err
		}
		timeSlots = append(timeSlots, dto.TimeRange{Start: start, End: end})
	}

	if len(timeSlots) == 0 {
		return nil, ErrNoTimeSlots
	}

	return &dto.ParsedAvailability{Date: date, TimeSlots: timeSlots}, nil
}

func clockFrom(hourStr, minuteStr string) (dto.ClockTime, error) {
	hour, _ := strconv.Atoi(hourStr)
	minute, _ := strconv.Atoi(minuteStr)
	if hour > 23 || minute > 59 {
		return dto.ClockTime{}, fmt.Errorf("%w: %s:%s", ErrBadTimeSlot, hourStr, minuteStr)
	}
	return dto.ClockTime{Hour: hour, Minute: minute}, nil
}
