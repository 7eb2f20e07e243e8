package domain

import "time"

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusRejected  AppointmentStatus = "rejected"
)

// ActiveStatuses are the non-terminal appointment states.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
}

// TerminalStatuses are the states an appointment never leaves.
var TerminalStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
	StatusRejected,
}

// Appointment represents a grooming appointment in the system.
type Appointment struct {
	ID              int64
	PetID           int64
	ClientID        int64
	ServiceID       int64
	StartTime       time.Time
	DurationMinutes int
	EmployeeID      *int64 // nil until a manager approves and assigns
	Status          AppointmentStatus
	EditCount       int
	FinalPrice      float64
	VoucherCode     *string

	// Denormalized data for history
	PetName     string
	ServiceName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime derives the end of the appointment window from its start and the
// service duration captured at booking time.
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// Window returns the half-open interval occupied by the appointment.
func (a *Appointment) Window() Interval {
	return Interval{Start: a.StartTime, End: a.EndTime()}
}

// IsActive returns true while the appointment is pending or approved.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// IsTerminal returns true once the appointment reached a final state.
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted ||
		a.Status == StatusCancelled ||
		a.Status == StatusRejected
}

// IsAssigned reports whether an employee has been assigned.
func (a *Appointment) IsAssigned() bool {
	return a.EmployeeID != nil
}

// MoreThanNoticeAway reports whether the appointment starts strictly more
// than the cancellation notice period after now. An appointment exactly
// 24h0m0s away is NOT editable or cancellable.
func (a *Appointment) MoreThanNoticeAway(now time.Time) bool {
	return a.StartTime.Sub(now) > CancellationNoticeHours*time.Hour
}

// CanBeCancelled reports whether a client may still cancel at time now.
func (a *Appointment) CanBeCancelled(now time.Time) bool {
	return a.IsActive() && a.MoreThanNoticeAway(now)
}

// CanBeEdited reports whether a client may still self-edit at time now.
// Rejected appointments stay editable so a client can resubmit a slot;
// cancelled and completed ones do not.
func (a *Appointment) CanBeEdited(now time.Time) bool {
	if a.Status == StatusCancelled || a.Status == StatusCompleted {
		return false
	}
	if a.EditCount >= MaxEditCount {
		return false
	}
	return a.MoreThanNoticeAway(now)
}

// EditsRemaining returns how many self-service edits are left.
func (a *Appointment) EditsRemaining() int {
	remaining := MaxEditCount - a.EditCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ParseAppointmentStatus validates a status string.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusApproved, StatusCompleted, StatusCancelled, StatusRejected:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}
