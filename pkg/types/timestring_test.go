package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{"09:00", "09:00", false},
		{"23:59", "23:59", false},
		{"00:00", "00:00", false},
		{"9:00", "", true},
		{"24:00", "", true},
		{"09:60", "", true},
		{"soon", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("11:30"))
	assert.False(t, TimeString("11:30").IsBefore("09:00"))
	assert.True(t, TimeString("14:00").IsAfter("11:30"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	_, err = TimeString("23:30").AddMinutes(45)
	assert.Error(t, err, "slot arithmetic never crosses midnight")
}

func TestTimeString_At(t *testing.T) {
	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	date := time.Date(2025, 6, 2, 0, 0, 0, 0, loc)
	got, err := TimeString("11:30").At(date, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 11, 30, 0, 0, loc), got)
}

func TestNewTimeString(t *testing.T) {
	at := time.Date(2025, 6, 2, 9, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(at))
}
