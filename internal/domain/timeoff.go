package domain

import "time"

// TimeOffStatus represents the approval state of a time-off request.
type TimeOffStatus string

const (
	TimeOffPending  TimeOffStatus = "pending"
	TimeOffApproved TimeOffStatus = "approved"
	TimeOffRejected TimeOffStatus = "rejected"
)

// TimeOffRequest marks an interval during which an employee is not
// schedulable. Only approved requests affect availability.
type TimeOffRequest struct {
	ID          int64
	EmployeeID  int64
	StartTime   time.Time
	EndTime     time.Time
	Status      TimeOffStatus
	RequestedAt time.Time
}

// Window returns the requested half-open interval.
func (r *TimeOffRequest) Window() Interval {
	return Interval{Start: r.StartTime, End: r.EndTime}
}

// Blocks reports whether the request makes the employee unavailable for
// the given window.
func (r *TimeOffRequest) Blocks(window Interval) bool {
	return r.Status == TimeOffApproved && r.Window().Overlaps(window)
}
