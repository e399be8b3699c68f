package hours

import (
	"fmt"
	"strings"
)

// Conflict is the advisory result of checking a scheduled visit against a
// venue's opening hours. It annotates timeline entries for display and is
// never a hard validation gate.
type Conflict struct {
	InConflict bool   `json:"inConflict"`
	Reason     string `json:"reason,omitempty"`
}

// CheckConflict reports whether the window [startTime, startTime+duration)
// falls outside the venue's stated hours for the given weekday.
//
// Every ambiguity resolves to "no conflict": missing hours data, a missing
// weekday line, an unparseable line, or an unparseable start time. The only
// positive outcomes are an explicit "Closed" line and a window that starts
// before opening or ends after closing. Ranges that close past midnight
// (close <= open) are treated as spanning into the next day.
func CheckConflict(week []string, weekday, startTime string, durationMinutes int) Conflict {
	if len(week) == 0 {
		return Conflict{}
	}
	line, ok := findDayLine(week, weekday)
	if !ok {
		return Conflict{}
	}

	day := ParseDayRange(line)
	switch day.Kind {
	case KindClosed:
		return Conflict{InConflict: true, Reason: fmt.Sprintf("venue closed on %s", weekday)}
	case KindUnparsed:
		return Conflict{}
	}

	start := ParseClockTime(startTime)
	if start == nil {
		return Conflict{}
	}
	if durationMinutes < 0 {
		durationMinutes = 0
	}

	startMin := start.Minutes()
	endMin := startMin + durationMinutes
	open, clo := day.OpenMinute, day.CloseMinute
	if clo <= open {
		// Overnight range, e.g. 6 PM – 2 AM. Shift the close past midnight
		// and move pre-opening starts into the same frame so a 1 AM visit
		// compares against the previous evening's window.
		clo += minutesPerDay
		if startMin < open {
			startMin += minutesPerDay
			endMin += minutesPerDay
		}
	}

	if startMin < open || endMin > clo {
		return Conflict{
			InConflict: true,
			Reason:     fmt.Sprintf("scheduled outside opening hours (%s – %s)", day.OpenText, day.CloseText),
		}
	}
	return Conflict{}
}

// findDayLine locates the line whose label before the first colon matches
// the weekday name, case-insensitively. Line order does not matter, so
// weeks that start on Sunday or Monday both work.
func findDayLine(week []string, weekday string) (string, bool) {
	for _, line := range week {
		name, _, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(name), strings.TrimSpace(weekday)) {
			return line, true
		}
	}
	return "", false
}
