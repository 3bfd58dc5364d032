package data

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/carebook/carebook/models"
)

const (
	// Schedules cover a rolling window of the next 7 calendar days.
	scheduleDays = 7

	// Fraction of slots generated as bookable, per daily band.
	morningAvailability = 0.7
	eveningAvailability = 0.8
)

// GenerateTimeSlots builds a doctor's schedule for the 7 days starting at
// now: one-hour slots at 9, 10 and 11 in the morning and 14 through 17 in
// the evening, 7 per day. Each slot is independently marked available using
// the caller's random source, so tests can seed it for deterministic
// fixtures.
func GenerateTimeSlots(now time.Time, rng *rand.Rand) []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, scheduleDays*7)
	for dayOffset := 0; dayOffset < scheduleDays; dayOffset++ {
		date := now.AddDate(0, 0, dayOffset).Format("2006-01-02")

		// Morning slots (9 AM - 12 PM)
		for hour := 9; hour < 12; hour++ {
			slots = append(slots, newSlot(date, hour, rng.Float64() < morningAvailability))
		}

		// Evening slots (2 PM - 6 PM)
		for hour := 14; hour < 18; hour++ {
			slots = append(slots, newSlot(date, hour, rng.Float64() < eveningAvailability))
		}
	}
	return slots
}

func newSlot(date string, hour int, available bool) models.TimeSlot {
	return models.TimeSlot{
		ID:          fmt.Sprintf("%s-%d:00", date, hour),
		Date:        date,
		StartTime:   fmt.Sprintf("%02d:00", hour),
		EndTime:     fmt.Sprintf("%02d:00", hour+1),
		IsAvailable: available,
	}
}

// unavailableSchedule generates a schedule and marks every slot taken, for
// fully booked or on-leave doctors.
func unavailableSchedule(now time.Time, rng *rand.Rand) []models.TimeSlot {
	slots := GenerateTimeSlots(now, rng)
	for i := range slots {
		slots[i].IsAvailable = false
	}
	return slots
}
