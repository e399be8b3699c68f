// Package hours parses free-text venue opening hours and checks scheduled
// visits against them. Parsing is best-effort and fails closed: malformed
// input yields nil / Unparsed instead of an error, so callers can treat
// "unparseable" as "assume open" rather than raise false conflicts.
package hours

import (
	"encoding/json"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ClockTime is a parsed wall-clock time of day.
type ClockTime struct {
	Hour   int // 0..23
	Minute int // 0..59
}

// Minutes returns the minute-of-day value for comparisons.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// ParseClockTime parses strings like "9:00 AM", "18:30" or "6 PM" into a
// ClockTime. Everything except digits and the colon is stripped before the
// hour/minute split; a trailing AM/PM marker (case-insensitive) is honored
// (PM adds 12 unless the hour is 12, AM turns 12 into 0). A missing minute
// defaults to 0. Returns nil for anything that does not yield a valid time.
func ParseClockTime(text string) *ClockTime {
	lower := strings.ToLower(text)
	pm := strings.Contains(lower, "pm")
	am := strings.Contains(lower, "am")

	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == ':' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return nil
	}

	hourPart, minutePart, hasMinute := strings.Cut(cleaned, ":")
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return nil
	}
	minute := 0
	if hasMinute && minutePart != "" {
		minute, err = strconv.Atoi(minutePart)
		if err != nil {
			return nil
		}
	}

	if pm && hour != 12 {
		hour += 12
	}
	if am && hour == 12 {
		hour = 0
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil
	}
	return &ClockTime{Hour: hour, Minute: minute}
}

// Kind tags the outcome of parsing one weekday's opening-hours line.
type Kind int

const (
	// KindUnparsed means the line could not be understood. Callers must
	// fail open on it.
	KindUnparsed Kind = iota
	// KindRange means the venue has an open/close window that day.
	KindRange
	// KindClosed means the line explicitly says the venue is closed.
	KindClosed
)

// DayHours is the parsed form of one "<Weekday>: <open> – <close>" line.
// OpenText/CloseText keep the venue's stated times verbatim so conflict
// reasons can cite them unchanged.
type DayHours struct {
	Kind        Kind
	OpenMinute  int
	CloseMinute int
	OpenText    string
	CloseText   string
}

// ParseDayRange parses a single weekday line. The weekday label before the
// first ": " is discarded; a remainder containing "closed" (any case) maps
// to KindClosed, which is distinct from a parse failure. The remainder is
// otherwise split on an en-dash or hyphen into two clock times; if either
// side fails to parse, the whole line is KindUnparsed.
func ParseDayRange(line string) DayHours {
	_, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return DayHours{}
	}
	if strings.Contains(strings.ToLower(rest), "closed") {
		return DayHours{Kind: KindClosed}
	}

	openText, closeText, ok := splitTimeRange(rest)
	if !ok {
		return DayHours{}
	}
	open := ParseClockTime(openText)
	clo := ParseClockTime(closeText)
	if open == nil || clo == nil {
		return DayHours{}
	}
	return DayHours{
		Kind:        KindRange,
		OpenMinute:  open.Minutes(),
		CloseMinute: clo.Minutes(),
		OpenText:    strings.TrimSpace(openText),
		CloseText:   strings.TrimSpace(closeText),
	}
}

func splitTimeRange(s string) (string, string, bool) {
	// Google-style hours use an en-dash; fall back to em-dash and hyphen.
	for _, sep := range []string{"–", "—", "-"} {
		if open, clo, ok := strings.Cut(s, sep); ok {
			return open, clo, true
		}
	}
	return "", "", false
}

// DecodeWeek decodes the serialized opening-hours payload (a JSON array of
// weekday lines) stored on an activity. Malformed or non-array JSON means
// "no hours data" and yields nil, never an error.
func DecodeWeek(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var week []string
	if err := json.Unmarshal([]byte(raw), &week); err != nil {
		return nil
	}
	if len(week) == 0 {
		return nil
	}
	return week
}
