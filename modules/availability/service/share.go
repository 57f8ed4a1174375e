package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/core/utils"

	"github.com/gosimple/slug"
)

// FormatShareText renders selected 1-hour slots into the shareable text
// format, the inverse of ParseAvailability:
//
//	I'm available on Tuesday, Nov 25 at:
//	- 12:00 to 13:00
//
// In booking mode the lead-in changes to a booking request. Hours are
// rendered sorted and zero-padded regardless of selection order.
func FormatShareText(date time.Time, hours []int, booking bool) string {
	sorted := append([]int(nil), hours...)
	sort.Ints(sorted)

	dateStr := date.Format("Monday, Jan 2")

	var sb strings.Builder
	if booking {
		sb.WriteString(fmt.Sprintf("I'd like to book time on %s at:\n", dateStr))
	} else {
		sb.WriteString(fmt.Sprintf("I'm available on %s at:\n", dateStr))
	}

	for _, hour := range sorted {
		sb.WriteString(fmt.Sprintf("- %02d:00 to %02d:00\n", hour, hour+1))
	}
	return sb.String()
}

// ShareSlug builds a URL-safe slug for a shared snapshot: the owner's display
// name plus a short random token so names never collide.
func ShareSlug(displayName string) string {
	base := slug.Make(displayName)
	if base == "" {
		base = "availability"
	}
	return base + "-" + utils.GenerateID()
}
