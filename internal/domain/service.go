package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/pkg/types"
)

// Service represents a grooming service offered by the salon.
// Candidate appointment start times come from an explicit comma-separated
// list of "HH:MM" times rather than a fixed grid.
type Service struct {
	ID                int64
	Name              string
	Description       *string
	DurationMinutes   int
	AllowedStartTimes string // e.g. "09:00,11:30,14:00"
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Duration returns the service length.
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// AllowedTimes parses the allowed start-time list: entries are trimmed,
// malformed ones are skipped (not fatal), duplicates removed, and the
// result sorted ascending.
func (s *Service) AllowedTimes() []types.TimeString {
	parts := strings.Split(s.AllowedStartTimes, ",")
	seen := make(map[types.TimeString]struct{}, len(parts))
	times := make([]types.TimeString, 0, len(parts))

	for _, part := range parts {
		ts, err := types.NewTimeStringFromString(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if _, ok := seen[ts]; ok {
			continue
		}
		seen[ts] = struct{}{}
		times = append(times, ts)
	}

	sort.Slice(times, func(i, j int) bool { return times[i].IsBefore(times[j]) })
	return times
}

// AllowsStartTime reports whether the wall-clock time of t is one of the
// service's allowed start times.
func (s *Service) AllowsStartTime(t time.Time) bool {
	candidate := types.NewTimeString(t)
	for _, allowed := range s.AllowedTimes() {
		if allowed == candidate {
			return true
		}
	}
	return false
}

// PetSize categorizes pets for pricing purposes.
type PetSize string

const (
	SizeSmall  PetSize = "small"
	SizeMedium PetSize = "medium"
	SizeLarge  PetSize = "large"
)

// ParsePetSize validates a size string.
func ParsePetSize(s string) (PetSize, bool) {
	switch PetSize(s) {
	case SizeSmall, SizeMedium, SizeLarge:
		return PetSize(s), true
	default:
		return "", false
	}
}

// ServicePrice maps a (service, pet size) pair to a price.
// Unique per pair; there is no fallback price — a missing row is an error
// at booking time, never silently defaulted.
type ServicePrice struct {
	ID        int64
	ServiceID int64
	Size      PetSize
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
