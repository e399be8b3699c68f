package models

// TripActivity is one scheduled occurrence of an Activity inside a trip.
// Activity is resolved with a LEFT JOIN and may be nil when the referenced
// activity row has been deleted; consumers must treat that as a data gap,
// not assume it is present.
type TripActivity struct {
	ID         int64     `json:"id"`
	TripID     int64     `json:"tripId"`
	ActivityID int64     `json:"activityId"`
	Activity   *Activity `json:"activity,omitempty"`
	// PlannedDate is a "2006-01-02" calendar date, StartTime a zero-padded
	// 24h "15:04" clock string. Both are wall-clock values in Timezone.
	PlannedDate     string   `json:"plannedDate"`
	StartTime       string   `json:"startTime"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Timezone        string   `json:"timezone,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	ActualCost      *float64 `json:"actualCost,omitempty"`
}

// EffectiveDuration returns the scheduled duration in minutes, falling
// back to the referenced activity's typical duration, then to 0.
func (ta TripActivity) EffectiveDuration() int {
	if ta.DurationMinutes != nil {
		return *ta.DurationMinutes
	}
	if ta.Activity != nil && ta.Activity.DurationMinutes != nil {
		return *ta.Activity.DurationMinutes
	}
	return 0
}

// EffectiveTimezone returns the stored IANA zone, defaulting to UTC.
func (ta TripActivity) EffectiveTimezone() string {
	if ta.Timezone == "" {
		return "UTC"
	}
	return ta.Timezone
}
