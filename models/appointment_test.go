package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusTransitions(t *testing.T) {
	for _, next := range []AppointmentStatus{StatusCompleted, StatusCancelled, StatusNoShow} {
		a := Appointment{Status: StatusScheduled}
		require.NoError(t, a.UpdateStatus(next))
		assert.Equal(t, next, a.Status)

		// Terminal states reject everything.
		assert.Error(t, a.UpdateStatus(StatusScheduled))
		assert.Error(t, a.UpdateStatus(StatusCompleted))
	}

	a := Appointment{Status: StatusScheduled}
	assert.Error(t, a.UpdateStatus(AppointmentStatus("rescheduled")))
	assert.Equal(t, StatusScheduled, a.Status, "failed transition must not change status")
}

func TestStartsAt(t *testing.T) {
	a := Appointment{AppointmentDate: "2026-03-10", AppointmentTime: "14:00"}
	startsAt, err := a.StartsAt(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC), startsAt)

	a.AppointmentTime = "not a time"
	_, err = a.StartsAt(time.UTC)
	assert.Error(t, err)
}
