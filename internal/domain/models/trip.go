package models

// Trip is the top-level aggregate. Dates are inclusive "2006-01-02"
// strings; the trip service guarantees StartDate <= EndDate, so lexical
// comparison against a planned date is safe everywhere downstream.
type Trip struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Budget    *float64 `json:"budget,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}
