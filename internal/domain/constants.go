package domain

// Business window: appointments run Monday through Saturday between
// 09:00 (inclusive) and 18:00 (exclusive). Sundays are never bookable.
const (
	BusinessOpenHour  = 9
	BusinessCloseHour = 18
)

// Booking rules.
const (
	MaxAdvanceBookingDays   = 90 // furthest a client may book ahead
	MaxSameDayAppointments  = 2  // pending/approved per client per day
	MaxEditCount            = 3  // self-service edits per appointment
	CancellationNoticeHours = 24 // strict: exactly 24h out is too late
)

// Service validation constants.
const (
	MinServiceDurationMinutes = 15
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxServicePrice           = 999.99
)

// Time format constants.
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
