package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactStatusValid(t *testing.T) {
	assert.True(t, ContactStatusNew.Valid())
	assert.True(t, ContactStatusContacted.Valid())
	assert.True(t, ContactStatusResolved.Valid())
	assert.False(t, ContactStatus("archived").Valid())
	assert.False(t, ContactStatus("").Valid())
}

func TestContactTransitions(t *testing.T) {
	tests := []struct {
		from, to ContactStatus
		ok       bool
	}{
		{ContactStatusNew, ContactStatusNew, true},
		{ContactStatusNew, ContactStatusContacted, true},
		{ContactStatusNew, ContactStatusResolved, false},
		{ContactStatusContacted, ContactStatusResolved, true},
		{ContactStatusContacted, ContactStatusNew, false},
		{ContactStatusResolved, ContactStatusResolved, true},
		{ContactStatusResolved, ContactStatusContacted, false},
		{ContactStatusResolved, ContactStatusNew, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestAppointmentTransitions(t *testing.T) {
	tests := []struct {
		from, to AppointmentStatus
		ok       bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCompleted, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{AppointmentStatusCancelled, AppointmentStatusCancelled, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestSlotCovers(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	slot := SurgerySlot{StartTime: start, EndTime: start.Add(2 * time.Hour)}

	assert.True(t, slot.Covers(start))
	assert.True(t, slot.Covers(start.Add(time.Hour)))
	// end is exclusive: back-to-back slots do not overlap
	assert.False(t, slot.Covers(start.Add(2*time.Hour)))
	assert.False(t, slot.Covers(start.Add(-time.Minute)))
}

func TestAppointmentStartsAt(t *testing.T) {
	appt := Appointment{
		AppointmentDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "14:30",
	}
	at, err := appt.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC), at)

	appt.AppointmentTime = "2pm"
	_, err = appt.StartsAt()
	assert.Error(t, err)
}
