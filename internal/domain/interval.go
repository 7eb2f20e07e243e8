package domain

import "time"

// Interval is a half-open time window [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals share at least one
// instant: [s1,e1) overlaps [s2,e2) iff s1 < e2 && s2 < e1. Windows that
// merely touch at a boundary do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains reports whether t falls inside the half-open window.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Duration returns the length of the window.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
