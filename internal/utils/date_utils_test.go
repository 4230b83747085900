package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateBound(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		endOfDay bool
		expected time.Time
	}{
		{"date only start", "2024-01-01", false, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"date only end", "2024-01-01", true, time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC)},
		{"full timestamp kept", "2024-01-01 12:30:00", true, time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"datetime-local", "2024-03-05T08:15", false, time.Date(2024, 3, 5, 8, 15, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDateBound(tt.input, tt.endOfDay)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result), "got %v", result)
		})
	}
}

func TestParseDateBoundRejectsGarbage(t *testing.T) {
	_, err := ParseDateBound("01/02/2024", false)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDateBoundIncludesMidnightExcludesPreviousDay(t *testing.T) {
	from, err := ParseDateBound("2024-01-01", false)
	require.NoError(t, err)
	midnight := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	lastSecond := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)
	assert.False(t, midnight.Before(from))
	assert.True(t, lastSecond.Before(from))
}

func TestMonthKeys(t *testing.T) {
	now := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	keys := MonthKeys(now, 3)
	assert.Equal(t, []string{"2023-12", "2024-01", "2024-02"}, keys)
}
