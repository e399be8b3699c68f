package services

import (
	"strings"
	"testing"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/hours"
	"tripplanner/internal/timeline"
)

func TestDocsServiceGenerateItinerary(t *testing.T) {
	cost := 25.0
	loader := func(id int64) (Itinerary, error) {
		museum := &models.Activity{ID: 1, Name: "City Museum", EstimatedCost: &cost}
		return Itinerary{
			Trip: models.Trip{ID: id, Name: "June trip", StartDate: "2025-06-01", EndDate: "2025-06-09"},
			Timeline: timeline.Timeline{
				Groups: []timeline.Group{{
					Date:     "2025-06-02",
					Timezone: "UTC",
					Activities: []timeline.Entry{
						{TripActivity: models.TripActivity{ID: 1, StartTime: "09:00", Activity: museum}},
						{
							TripActivity: models.TripActivity{ID: 2, StartTime: "19:00", Activity: museum},
							Conflict:     hours.Conflict{InConflict: true, Reason: "scheduled outside opening hours (9:00 AM – 6:00 PM)"},
						},
					},
					TotalDurationMinutes: 120,
					TotalEstimatedCost:   50,
					Count:                2,
				}},
				InvalidByDate: map[string][]models.TripActivity{},
				InvalidDates:  []string{},
				Unrenderable:  []models.TripActivity{},
			},
			Budget: BudgetSummary{PlannedSpend: 50},
		}, nil
	}

	svc := DocsService{Loader: loader}
	pdf, filename, err := svc.GenerateItineraryPDF(5)
	if err != nil {
		t.Fatalf("GenerateItineraryPDF returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("GenerateItineraryPDF returned empty data")
	}
	if !strings.HasPrefix(filename, "ITINERARY_5_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := safeFilenamePart("June trip / 2025"); got != "June_trip__2025" {
		t.Fatalf("safeFilenamePart = %q", got)
	}
	if got := safeFilenamePart("???"); got != "trip" {
		t.Fatalf("empty sanitized name should fall back, got %q", got)
	}
}
