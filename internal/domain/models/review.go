package models

import "encoding/json"

// Review is one entry of an activity's serialized reviews payload,
// mirroring the provider's field names.
type Review struct {
	AuthorName              string `json:"author_name"`
	Rating                  int    `json:"rating"`
	Text                    string `json:"text"`
	Time                    int64  `json:"time"`
	RelativeTimeDescription string `json:"relative_time_description"`
}

// DecodeReviews parses a serialized reviews array best-effort.
// Malformed JSON yields nil rather than an error; reviews are
// display-only and must never block anything else.
func DecodeReviews(raw string) []Review {
	if raw == "" {
		return nil
	}
	var out []Review
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}
