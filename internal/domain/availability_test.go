package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kerem-haeger/PetGroom-BookingService/pkg/ptr"
)

func TestEmployeeIsFree(t *testing.T) {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	window := Interval{Start: base.Add(2 * time.Hour), End: base.Add(3 * time.Hour)} // 11:00-12:00

	entry := func(employeeID, appointmentID int64, at time.Time) *CalendarEntry {
		return &CalendarEntry{
			EmployeeID:      employeeID,
			AppointmentID:   appointmentID,
			ScheduledTime:   at,
			DurationMinutes: 60,
		}
	}
	timeOff := func(employeeID int64, from, to time.Time, status TimeOffStatus) *TimeOffRequest {
		return &TimeOffRequest{EmployeeID: employeeID, StartTime: from, EndTime: to, Status: status}
	}

	t.Run("free with no commitments", func(t *testing.T) {
		assert.True(t, EmployeeIsFree(1, window, nil, nil, nil))
	})

	t.Run("busy when an entry starts inside the window", func(t *testing.T) {
		entries := []*CalendarEntry{entry(1, 10, base.Add(2*time.Hour+30*time.Minute))}
		assert.False(t, EmployeeIsFree(1, window, entries, nil, nil))
	})

	t.Run("entry at the window start blocks", func(t *testing.T) {
		entries := []*CalendarEntry{entry(1, 10, window.Start)}
		assert.False(t, EmployeeIsFree(1, window, entries, nil, nil))
	})

	t.Run("entry at the window end does not block", func(t *testing.T) {
		entries := []*CalendarEntry{entry(1, 10, window.End)}
		assert.True(t, EmployeeIsFree(1, window, entries, nil, nil))
	})

	t.Run("other employees entries are ignored", func(t *testing.T) {
		entries := []*CalendarEntry{entry(2, 10, window.Start)}
		assert.True(t, EmployeeIsFree(1, window, entries, nil, nil))
	})

	t.Run("excluded appointment does not conflict with itself", func(t *testing.T) {
		entries := []*CalendarEntry{entry(1, 10, window.Start)}
		assert.True(t, EmployeeIsFree(1, window, entries, nil, ptr.Ptr(int64(10))))
		assert.False(t, EmployeeIsFree(1, window, entries, nil, ptr.Ptr(int64(11))))
	})

	t.Run("approved time off blocks", func(t *testing.T) {
		off := []*TimeOffRequest{timeOff(1, base, base.Add(8*time.Hour), TimeOffApproved)}
		assert.False(t, EmployeeIsFree(1, window, nil, off, nil))
	})

	t.Run("pending time off does not block", func(t *testing.T) {
		off := []*TimeOffRequest{timeOff(1, base, base.Add(8*time.Hour), TimeOffPending)}
		assert.True(t, EmployeeIsFree(1, window, nil, off, nil))
	})

	t.Run("time off of another employee does not block", func(t *testing.T) {
		off := []*TimeOffRequest{timeOff(2, base, base.Add(8*time.Hour), TimeOffApproved)}
		assert.True(t, EmployeeIsFree(1, window, nil, off, nil))
	})
}

func TestFirstFreeEmployee(t *testing.T) {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	window := Interval{Start: base, End: base.Add(time.Hour)}

	busy := []*CalendarEntry{
		{EmployeeID: 1, AppointmentID: 10, ScheduledTime: base, DurationMinutes: 60},
	}

	t.Run("skips busy employees", func(t *testing.T) {
		id, ok := FirstFreeEmployee([]int64{1, 2, 3}, window, busy, nil)
		assert.True(t, ok)
		assert.Equal(t, int64(2), id)
	})

	t.Run("no one free", func(t *testing.T) {
		allBusy := []*CalendarEntry{
			{EmployeeID: 1, AppointmentID: 10, ScheduledTime: base, DurationMinutes: 60},
			{EmployeeID: 2, AppointmentID: 11, ScheduledTime: base, DurationMinutes: 60},
		}
		_, ok := FirstFreeEmployee([]int64{1, 2}, window, allBusy, nil)
		assert.False(t, ok)
	})

	t.Run("empty roster", func(t *testing.T) {
		_, ok := FirstFreeEmployee(nil, window, nil, nil)
		assert.False(t, ok)
	})
}
