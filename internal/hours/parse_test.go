package hours

import "testing"

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
	}{
		{"9:00 AM", 9, 0},
		{"6:30 PM", 18, 30},
		{"12:00 PM", 12, 0},
		{"12:15 AM", 0, 15},
		{"18:30", 18, 30},
		{"7 PM", 19, 0},
		{"00:00", 0, 0},
		{"  8:05 am ", 8, 5},
	}
	for _, c := range cases {
		got := ParseClockTime(c.in)
		if got == nil {
			t.Fatalf("ParseClockTime(%q) returned nil", c.in)
		}
		if got.Hour != c.hour || got.Minute != c.minute {
			t.Fatalf("ParseClockTime(%q) = %d:%02d, want %d:%02d", c.in, got.Hour, got.Minute, c.hour, c.minute)
		}
	}
}

func TestParseClockTimeMalformed(t *testing.T) {
	for _, in := range []string{"", "abc", "PM", "25:00", "9:75", "::", "営業時間"} {
		if got := ParseClockTime(in); got != nil {
			t.Fatalf("ParseClockTime(%q) = %+v, want nil", in, got)
		}
	}
}

func TestParseDayRange(t *testing.T) {
	d := ParseDayRange("Wednesday: 9:00 AM – 6:00 PM")
	if d.Kind != KindRange {
		t.Fatalf("expected range, got kind %d", d.Kind)
	}
	if d.OpenMinute != 9*60 || d.CloseMinute != 18*60 {
		t.Fatalf("wrong minutes: open=%d close=%d", d.OpenMinute, d.CloseMinute)
	}
	if d.OpenText != "9:00 AM" || d.CloseText != "6:00 PM" {
		t.Fatalf("verbatim texts not preserved: %q / %q", d.OpenText, d.CloseText)
	}
}

func TestParseDayRangeHyphen(t *testing.T) {
	d := ParseDayRange("Monday: 08:00 - 17:00")
	if d.Kind != KindRange || d.OpenMinute != 480 || d.CloseMinute != 1020 {
		t.Fatalf("hyphen range not parsed: %+v", d)
	}
}

func TestParseDayRangeClosed(t *testing.T) {
	for _, in := range []string{"Sunday: Closed", "Sunday: CLOSED", "Sunday: closed all day"} {
		if d := ParseDayRange(in); d.Kind != KindClosed {
			t.Fatalf("ParseDayRange(%q) kind = %d, want closed", in, d.Kind)
		}
	}
}

func TestParseDayRangeUnparsed(t *testing.T) {
	cases := []string{
		"",
		"Tuesday",
		"Tuesday: open late",
		"Tuesday: 9:00 AM to 6:00 PM", // no dash separator
		"Tuesday: 9:00 AM – gibberish",
	}
	for _, in := range cases {
		if d := ParseDayRange(in); d.Kind != KindUnparsed {
			t.Fatalf("ParseDayRange(%q) kind = %d, want unparsed", in, d.Kind)
		}
	}
}

func TestDecodeWeek(t *testing.T) {
	raw := `["Monday: 9:00 AM – 5:00 PM","Tuesday: Closed"]`
	week := DecodeWeek(raw)
	if len(week) != 2 {
		t.Fatalf("DecodeWeek returned %d lines, want 2", len(week))
	}
}

func TestDecodeWeekMalformed(t *testing.T) {
	for _, raw := range []string{"", "not json", `{"monday":"closed"}`, "[]", "123"} {
		if week := DecodeWeek(raw); week != nil {
			t.Fatalf("DecodeWeek(%q) = %v, want nil", raw, week)
		}
	}
}
