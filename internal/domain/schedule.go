package domain

import "time"

// IsBusinessDay reports whether appointments may be scheduled on the date.
// The salon is closed on Sundays.
func IsBusinessDay(t time.Time) bool {
	return t.Weekday() != time.Sunday
}

// WithinBusinessHours reports whether a start time falls inside the
// closed-open business window [09:00, 18:00).
func WithinBusinessHours(t time.Time) bool {
	return t.Hour() >= BusinessOpenHour && t.Hour() < BusinessCloseHour
}

// WithinBookingHorizon reports whether t is at most MaxAdvanceBookingDays
// after now.
func WithinBookingHorizon(t, now time.Time) bool {
	return !t.After(now.AddDate(0, 0, MaxAdvanceBookingDays))
}

// DayBounds returns the start of the given day and the start of the next
// day in the date's location, for day-scoped range queries.
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
