package service

import (
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/modules/event/entity"
)

const (
	secondsPerDay = 24 * 60 * 60

	// TimelineBaseInset keeps the 00:00 mark off the container edge. A
	// presentation constant, not a scheduling invariant.
	TimelineBaseInset = 10.0

	// MinimumBlockHeight keeps very short events visible and clickable.
	MinimumBlockHeight = 24.0
)

// TimeToOffset maps a time-of-day onto a vertical axis of the given height.
// Monotonic: for any totalHeight > 0, a later time always lands lower on the
// axis than an earlier one.
func TimeToOffset(t time.Time, totalHeight float64) float64 {
	elapsed := t.Hour()*3600 + t.Minute()*60 + t.Second()
	fraction := float64(elapsed) / float64(secondsPerDay)
	return totalHeight*fraction + TimelineBaseInset
}

// Block is an event's placement on the timeline axis.
type Block struct {
	Top    float64
	Height float64
}

// BlockFor places an event by the time-of-day of its stored start and end.
// The height is floored at MinimumBlockHeight.
func BlockFor(event entity.Event, totalHeight float64) Block {
	top := TimeToOffset(event.StartDateTime, totalHeight)
	bottom := TimeToOffset(event.EndDateTime, totalHeight)

	height := bottom - top
	if height < MinimumBlockHeight {
		height = MinimumBlockHeight
	}
	return Block{Top: top, Height: height}
}
