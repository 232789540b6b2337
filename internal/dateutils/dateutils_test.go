package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		expectOk  bool
		expectedY int
		expectedM time.Month
		expectedD int
	}{
		{"ISO format", "2024-03-15", true, 2024, time.March, 15},
		{"European dots", "15.03.2024", true, 2024, time.March, 15},
		{"Day-first slashes", "15/03/2024", true, 2024, time.March, 15},
		{"Day-first dashes", "15-03-2024", true, 2024, time.March, 15},
		{"US slashes", "03/15/2024", true, 2024, time.March, 15},
		{"Full timestamp", "2024-03-15 10:30:45", true, 2024, time.March, 15},
		{"Month name", "15 Mar 2024", true, 2024, time.March, 15},
		{"Extra whitespace", "  2024-03-15  ", true, 2024, time.March, 15},
		{"Ambiguous resolves day-first", "02/01/2024", true, 2024, time.January, 2},
		{"Empty string", "", false, 0, 0, 0},
		{"Garbage", "not a date", false, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseDate(tc.dateStr)
			if !tc.expectOk {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedY, parsed.Year())
			assert.Equal(t, tc.expectedM, parsed.Month())
			assert.Equal(t, tc.expectedD, parsed.Day())
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected string
	}{
		{"Monday maps to itself", "2024-03-11", "2024-03-11"},
		{"Wednesday maps back", "2024-03-13", "2024-03-11"},
		{"Sunday maps back six days", "2024-03-17", "2024-03-11"},
		{"Month boundary", "2024-03-01", "2024-02-26"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseDate(tc.date)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, ToISODate(WeekStart(date)))
		})
	}
}

func TestIsWeekend(t *testing.T) {
	saturday, _ := ParseDate("2024-03-16")
	sunday, _ := ParseDate("2024-03-17")
	monday, _ := ParseDate("2024-03-18")

	assert.True(t, IsWeekend(saturday))
	assert.True(t, IsWeekend(sunday))
	assert.False(t, IsWeekend(monday))
}

func TestDayKey(t *testing.T) {
	a := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	b := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, DayKey(a), DayKey(b))
	assert.True(t, SameDay(a, b))
}
