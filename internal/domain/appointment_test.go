package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_EndTime(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	a := &Appointment{StartTime: start, DurationMinutes: 90}

	assert.Equal(t, start.Add(90*time.Minute), a.EndTime())
	assert.Equal(t, Interval{Start: start, End: start.Add(90 * time.Minute)}, a.Window())
}

func TestAppointment_IsActive(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		active bool
	}{
		{StatusPending, true},
		{StatusApproved, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
		{StatusRejected, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Appointment{Status: tt.status}
			assert.Equal(t, tt.active, a.IsActive())
			assert.Equal(t, !tt.active, a.IsTerminal())
		})
	}
}

func TestAppointment_MoreThanNoticeAway(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"exactly 24h away is too late", now.Add(24 * time.Hour), false},
		{"one second past the notice window", now.Add(24*time.Hour + time.Second), true},
		{"well inside the notice window", now.Add(2 * time.Hour), false},
		{"well past the notice window", now.Add(72 * time.Hour), true},
		{"already started", now.Add(-time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{StartTime: tt.start}
			assert.Equal(t, tt.want, a.MoreThanNoticeAway(now))
		})
	}
}

func TestAppointment_CanBeEdited(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	farEnough := now.Add(48 * time.Hour)

	tests := []struct {
		name string
		appt Appointment
		want bool
	}{
		{"pending with edits left", Appointment{Status: StatusPending, StartTime: farEnough}, true},
		{"approved with edits left", Appointment{Status: StatusApproved, StartTime: farEnough}, true},
		{"rejected stays editable", Appointment{Status: StatusRejected, StartTime: farEnough}, true},
		{"cancelled is final", Appointment{Status: StatusCancelled, StartTime: farEnough}, false},
		{"completed is final", Appointment{Status: StatusCompleted, StartTime: farEnough}, false},
		{"edit limit exhausted", Appointment{Status: StatusPending, StartTime: farEnough, EditCount: MaxEditCount}, false},
		{"too close to start", Appointment{Status: StatusPending, StartTime: now.Add(23 * time.Hour)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.appt.CanBeEdited(now))
		})
	}
}

func TestAppointment_EditsRemaining(t *testing.T) {
	assert.Equal(t, MaxEditCount, (&Appointment{}).EditsRemaining())
	assert.Equal(t, 1, (&Appointment{EditCount: MaxEditCount - 1}).EditsRemaining())
	assert.Equal(t, 0, (&Appointment{EditCount: MaxEditCount}).EditsRemaining())
	assert.Equal(t, 0, (&Appointment{EditCount: MaxEditCount + 5}).EditsRemaining())
}

func TestParseAppointmentStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "completed", "cancelled", "rejected"} {
		parsed, ok := ParseAppointmentStatus(s)
		assert.True(t, ok)
		assert.Equal(t, AppointmentStatus(s), parsed)
	}

	_, ok := ParseAppointmentStatus("confirmed")
	assert.False(t, ok)
	_, ok = ParseAppointmentStatus("")
	assert.False(t, ok)
}
