package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      CalendarDate
		expectedError bool
	}{
		{
			name:     "valid date",
			input:    "2026-02-15",
			expected: CalendarDate{Year: 2026, Month: 2, Day: 15},
		},
		{
			name:     "valid date with single digit components",
			input:    "2024-01-05",
			expected: CalendarDate{Year: 2024, Month: 1, Day: 5},
		},
		{
			name:          "wrong separator",
			input:         "2026/02/15",
			expectedError: true,
		},
		{
			name:          "too short",
			input:         "2026-2-15",
			expectedError: true,
		},
		{
			name:          "month out of range",
			input:         "2026-13-01",
			expectedError: true,
		},
		{
			name:          "day out of range",
			input:         "2026-02-32",
			expectedError: true,
		},
		{
			name:          "not a number",
			input:         "abcd-02-15",
			expectedError: true,
		},
		{
			name:          "empty string",
			input:         "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, date)
			}
		})
	}
}

func TestCalendarDate_String_RoundTrip(t *testing.T) {
	inputs := []string{"2026-02-15", "2026-12-31", "2024-01-01", "2026-03-01"}

	for _, input := range inputs {
		date, err := ParseDate(input)
		assert.NoError(t, err)
		assert.Equal(t, input, date.String())
	}
}

func TestCalendarDate_DaysSince(t *testing.T) {
	epoch := CalendarDate{Year: 2026, Month: 2, Day: 15}

	tests := []struct {
		name     string
		date     CalendarDate
		expected int
	}{
		{
			name:     "same day",
			date:     CalendarDate{Year: 2026, Month: 2, Day: 15},
			expected: 0,
		},
		{
			name:     "next day",
			date:     CalendarDate{Year: 2026, Month: 2, Day: 16},
			expected: 1,
		},
		{
			name:     "across month boundary",
			date:     CalendarDate{Year: 2026, Month: 3, Day: 1},
			expected: 14,
		},
		{
			name:     "day before",
			date:     CalendarDate{Year: 2026, Month: 2, Day: 14},
			expected: -1,
		},
		{
			name:     "across year boundary",
			date:     CalendarDate{Year: 2027, Month: 2, Day: 15},
			expected: 365,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.date.DaysSince(epoch))
		})
	}
}

func TestCalendarDate_AddDays(t *testing.T) {
	date := CalendarDate{Year: 2026, Month: 2, Day: 27}

	assert.Equal(t, CalendarDate{Year: 2026, Month: 3, Day: 1}, date.AddDays(2))
	assert.Equal(t, CalendarDate{Year: 2026, Month: 2, Day: 26}, date.AddDays(-1))
	assert.Equal(t, date, date.AddDays(0))
}

func TestCalendarDate_BeforeAfter(t *testing.T) {
	earlier := CalendarDate{Year: 2026, Month: 2, Day: 15}
	later := CalendarDate{Year: 2026, Month: 2, Day: 16}

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
	assert.False(t, earlier.Before(earlier))
	assert.False(t, earlier.After(earlier))
}

func TestDateOf_UsesLocalComponents(t *testing.T) {
	// 23:30 on Feb 15 in a UTC-8 zone must stay Feb 15, even though the
	// same instant is Feb 16 in UTC
	zone := time.FixedZone("UTC-8", -8*3600)
	at := time.Date(2026, 2, 15, 23, 30, 0, 0, zone)

	assert.Equal(t, CalendarDate{Year: 2026, Month: 2, Day: 15}, DateOf(at))
	assert.Equal(t, CalendarDate{Year: 2026, Month: 2, Day: 16}, DateOf(at.In(time.UTC)))
}

func TestCalendarDate_IsZero(t *testing.T) {
	assert.True(t, CalendarDate{}.IsZero())
	assert.False(t, CalendarDate{Year: 2026, Month: 2, Day: 15}.IsZero())
}
