// Package dateutils provides the date operations shared by the pipeline stages.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date format constants used throughout the application.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// CommonFormats is the list of layouts tried when parsing statement dates.
// Day-first layouts come before month-first so ambiguous dates resolve the
// way most bank exports write them.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05-07:00",
	DateLayoutEuropean,
	"02/01/2006",
	"02-01-2006",
	DateLayoutUS,
	"01-02-2006",
	"2.1.2006",
	"2006/01/02",
	"2-Jan-2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

var spaceRe = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace in a date string.
func CleanDateString(dateStr string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDate attempts to parse a date string using the common layouts.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = CleanDateString(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// WeekStart returns the Monday beginning the ISO week containing the given
// date, truncated to midnight.
func WeekStart(date time.Time) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	// time.Weekday numbers Sunday as 0; shift so Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// IsWeekend reports whether a date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DayKey truncates a timestamp to its calendar day, for grouping.
func DayKey(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
