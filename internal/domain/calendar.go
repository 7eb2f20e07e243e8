package domain

import "time"

// CalendarEntry is one row of the employee commitment ledger. It is not a
// general calendar: exactly one entry exists per approved appointment, and
// the entry is removed or replaced when the appointment is reassigned or
// cancelled. Only the lifecycle engine writes entries; availability and
// overlap checks read them.
type CalendarEntry struct {
	ID              int64
	EmployeeID      int64
	AppointmentID   int64
	ScheduledTime   time.Time
	DurationMinutes int
	Available       bool // false once the slot is committed
	CreatedAt       time.Time
}

// Window returns the committed half-open interval.
func (e *CalendarEntry) Window() Interval {
	return Interval{
		Start: e.ScheduledTime,
		End:   e.ScheduledTime.Add(time.Duration(e.DurationMinutes) * time.Minute),
	}
}
