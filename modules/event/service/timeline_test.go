package service

import (
	"testing"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/modules/event/entity"

	"github.com/stretchr/testify/assert"
)

func TestTimeToOffset(t *testing.T) {
	const height = 2400.0

	midnight := dayAt(2024, time.January, 1, 0, 0)
	noon := dayAt(2024, time.January, 1, 12, 0)

	assert.InDelta(t, TimelineBaseInset, TimeToOffset(midnight, height), 0.001)
	assert.InDelta(t, height/2+TimelineBaseInset, TimeToOffset(noon, height), 0.001)
}

func TestTimeToOffsetMonotonic(t *testing.T) {
	const height = 1440.0

	prev := TimeToOffset(dayAt(2024, time.January, 1, 0, 0), height)
	for hour := 1; hour < 24; hour++ {
		cur := TimeToOffset(dayAt(2024, time.January, 1, hour, 0), height)
		assert.Greater(t, cur, prev, "hour %d", hour)
		prev = cur
	}
}

func TestBlockFor(t *testing.T) {
	const height = 2400.0

	ev := entity.Event{
		StartDateTime: dayAt(2024, time.January, 1, 9, 0),
		EndDateTime:   dayAt(2024, time.January, 1, 11, 0),
	}

	b := BlockFor(ev, height)
	assert.InDelta(t, height*9.0/24.0+TimelineBaseInset, b.Top, 0.001)
	assert.InDelta(t, height*2.0/24.0, b.Height, 0.001)
}

func TestBlockForMinimumHeight(t *testing.T) {
	ev := entity.Event{
		StartDateTime: dayAt(2024, time.January, 1, 9, 0),
		EndDateTime:   dayAt(2024, time.January, 1, 9, 5),
	}

	// 5 minutes on a short axis collapses below the floor.
	b := BlockFor(ev, 100.0)
	assert.Equal(t, MinimumBlockHeight, b.Height)
}
