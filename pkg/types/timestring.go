package types

import (
	"errors"
	"fmt"
	"time"
)

// timeLayout is the wire format for times of day, e.g. "09:00".
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString is returned for strings that are not "HH:MM" times
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")
)

// TimeString represents a time of day as an "HH:MM" string.
// Used for slot start times where only the wall-clock component matters.
type TimeString string

// NewTimeString creates a TimeString from the wall-clock component of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(parsed.Format(timeLayout)), nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (t TimeString) Validate() error {
	_, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes returns the time of day minutes later than t.
// The result wraps within a single day is not allowed: exceeding 24:00
// returns an error, since slot arithmetic never crosses midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	result := parsed.Add(time.Duration(minutes) * time.Minute)
	if result.Day() != parsed.Day() && result.Format(timeLayout) != "00:00" {
		return "", fmt.Errorf("time %s + %d minutes crosses midnight", t, minutes)
	}

	return TimeString(result.Format(timeLayout)), nil
}

// Hour returns the hour component (0-23).
func (t TimeString) Hour() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour(), nil
}

// Minute returns the minute component (0-59).
func (t TimeString) Minute() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Minute(), nil
}

// At anchors the time of day onto the given date in the given location.
func (t TimeString) At(date time.Time, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, loc), nil
}
