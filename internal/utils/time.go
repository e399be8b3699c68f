package utils

import (
	"strings"
	"time"
)

const (
	layoutDate  = "2006-01-02"
	layoutClock = "15:04"
)

// ParseDate parses a YYYY-MM-DD calendar date. The result is a wall-clock
// date in UTC; no timezone shifting is applied.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(layoutDate, strings.TrimSpace(s))
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// ValidClock reports whether s is a zero-padded 24h HH:MM string.
func ValidClock(s string) bool {
	_, err := time.Parse(layoutClock, strings.TrimSpace(s))
	return err == nil
}

// WeekdayOf returns the weekday name ("Monday"...) of a YYYY-MM-DD date.
// The date is treated as a plain calendar date, never timezone-shifted.
func WeekdayOf(date string) (string, bool) {
	t, err := ParseDate(date)
	if err != nil {
		return "", false
	}
	return t.Weekday().String(), true
}

// ValidZone reports whether tz names a loadable IANA timezone.
func ValidZone(tz string) bool {
	if strings.TrimSpace(tz) == "" {
		return true // absent timezone falls back to UTC
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}
