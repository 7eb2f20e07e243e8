package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kerem-haeger/PetGroom-BookingService/pkg/types"
)

func TestService_AllowedTimes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []types.TimeString
	}{
		{"simple list", "09:00,11:30,14:00", []types.TimeString{"09:00", "11:30", "14:00"}},
		{"whitespace trimmed", " 09:00 , 11:30 ", []types.TimeString{"09:00", "11:30"}},
		{"malformed entries skipped", "09:00,9am,25:00,11:30", []types.TimeString{"09:00", "11:30"}},
		{"duplicates removed", "09:00,11:30,09:00", []types.TimeString{"09:00", "11:30"}},
		{"unsorted input sorted", "14:00,09:00,11:30", []types.TimeString{"09:00", "11:30", "14:00"}},
		{"empty string", "", []types.TimeString{}},
		{"only garbage", "soon,later", []types.TimeString{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Service{AllowedStartTimes: tt.raw}
			assert.Equal(t, tt.want, s.AllowedTimes())
		})
	}
}

func TestService_AllowsStartTime(t *testing.T) {
	s := &Service{AllowedStartTimes: "09:00,11:30,14:00"}
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, s.AllowsStartTime(day.Add(9*time.Hour)))
	assert.True(t, s.AllowsStartTime(day.Add(11*time.Hour+30*time.Minute)))
	assert.False(t, s.AllowsStartTime(day.Add(10*time.Hour)))
	assert.False(t, s.AllowsStartTime(day.Add(9*time.Hour+1*time.Minute)))
}

func TestService_Duration(t *testing.T) {
	s := &Service{DurationMinutes: 90}
	assert.Equal(t, 90*time.Minute, s.Duration())
}

func TestParsePetSize(t *testing.T) {
	for _, s := range []string{"small", "medium", "large"} {
		size, ok := ParsePetSize(s)
		assert.True(t, ok)
		assert.Equal(t, PetSize(s), size)
	}

	_, ok := ParsePetSize("huge")
	assert.False(t, ok)
	_, ok = ParsePetSize("Small")
	assert.False(t, ok)
}
