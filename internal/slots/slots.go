package slots

import (
	"time"

	"turfbooker/internal/models"
)

const (
	timeLayout = "15:04"

	// The turf opens at 06:00 and the grid runs through midnight
	// of the following day in fixed 1-hour steps.
	openingHour = 6
	slotCount   = 18
)

// Interval is a (start, end) pair in "HH:MM" form, used as a set key
// when matching bookings against the grid.
type Interval struct {
	Start string
	End   string
}

// Grid returns the canonical daily slot grid: 06:00-07:00 through
// 23:00-00:00, where "00:00" is midnight of the next calendar day.
func Grid() []Interval {
	cursor := time.Date(2000, time.January, 1, openingHour, 0, 0, 0, time.UTC)
	closing := time.Date(2000, time.January, 2, 0, 0, 0, 0, time.UTC)

	grid := make([]Interval, 0, slotCount)

	for cursor.Before(closing) {
		next := cursor.Add(time.Hour)

		grid = append(grid, Interval{
			Start: cursor.Format(timeLayout),
			End:   next.Format(timeLayout),
		})

		cursor = next
	}

	return grid
}

var gridSet = func() map[Interval]struct{} {
	set := make(map[Interval]struct{}, slotCount)
	for _, iv := range Grid() {
		set[iv] = struct{}{}
	}

	return set
}()

// OnGrid reports whether (start, end) is one of the canonical slots.
func OnGrid(start, end string) bool {
	_, ok := gridSet[Interval{Start: start, End: end}]

	return ok
}

// Generate marks each grid slot as booked or available against the
// given set of booked intervals for a single date.
func Generate(booked map[Interval]struct{}) []models.TimeSlot {
	grid := Grid()

	result := make([]models.TimeSlot, 0, len(grid))

	for _, iv := range grid {
		status := models.SlotAvailable
		if _, ok := booked[iv]; ok {
			status = models.SlotBooked
		}

		result = append(result, models.TimeSlot{
			StartTime: iv.Start,
			EndTime:   iv.End,
			Status:    status,
		})
	}

	return result
}
