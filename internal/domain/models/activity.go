package models

// Activity is a point-of-interest record as delivered by the places
// fetch layer. Optional fields are pointers: absence means the upstream
// provider had no data, which ranking and cost aggregation must respect
// (a nil rating is not a zero-star rating).
type Activity struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"userRatingsTotal,omitempty"`
	EstimatedCost    *float64 `json:"estimatedCost,omitempty"`
	DurationMinutes  *int     `json:"durationMinutes,omitempty"`
	// OpeningHours is the raw serialized JSON array of 7 weekday lines
	// ("Monday: 9:00 AM – 6:00 PM", "Sunday: Closed", ...) exactly as
	// stored by the fetch layer. Decode with hours.DecodeWeek.
	OpeningHours string `json:"openingHours,omitempty"`
	// ReviewsJSON is the provider's serialized review list, decoded on
	// demand with DecodeReviews. Not included in list payloads.
	ReviewsJSON string `json:"-"`
	Address     string `json:"address,omitempty"`
	PlaceID     string `json:"placeId,omitempty"`
}
