package services

import (
	"database/sql"
	"errors"
	"fmt"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/repositories"
	"tripplanner/internal/timeline"
	"tripplanner/internal/utils"
)

// Itinerary is the full grouped view of one trip: the timeline plus a
// budget summary over the items that actually count (in-range, resolvable).
type Itinerary struct {
	Trip     models.Trip       `json:"trip"`
	Timeline timeline.Timeline `json:"timeline"`
	Budget   BudgetSummary     `json:"budget"`
}

// BudgetSummary compares the trip budget with the planned spend.
// Only valid schedule entries count; out-of-range and unrenderable items
// never move the total. Remaining is nil when the trip has no budget.
type BudgetSummary struct {
	Budget       *float64 `json:"budget,omitempty"`
	PlannedSpend float64  `json:"plannedSpend"`
	Remaining    *float64 `json:"remaining,omitempty"`
}

// ItineraryService assembles the timeline view for one trip.
type ItineraryService struct {
	Trips     repositories.TripRepository
	Schedule  repositories.TripActivityRepository
	RequestID string
	// LoadTrip/LoadSchedule override repository reads in tests.
	LoadTrip     func(int64) (models.Trip, error)
	LoadSchedule func(int64) ([]models.TripActivity, error)
}

// BuildItinerary loads a snapshot of the trip and its schedule and runs
// the grouper over it. The result is recomputed from scratch on every
// call; nothing is cached between requests.
func (s ItineraryService) BuildItinerary(tripID int64) (Itinerary, error) {
	trip, err := s.loadTrip(tripID)
	if err != nil {
		return Itinerary{}, err
	}
	items, err := s.loadSchedule(tripID)
	if err != nil {
		return Itinerary{}, domain.InternalError{Msg: "failed to load schedule", Err: err}
	}

	tl := timeline.Build(trip, items)
	utils.LogEvent(s.RequestID, "itinerary", "build",
		fmt.Sprintf("trip_id=%d groups=%d invalid_dates=%d unrenderable=%d",
			tripID, len(tl.Groups), len(tl.InvalidDates), len(tl.Unrenderable)))

	return Itinerary{
		Trip:     trip,
		Timeline: tl,
		Budget:   summarizeBudget(trip, tl),
	}, nil
}

func (s ItineraryService) loadTrip(id int64) (models.Trip, error) {
	if s.LoadTrip != nil {
		return s.LoadTrip(id)
	}
	t, err := s.Trips.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	return t, nil
}

func (s ItineraryService) loadSchedule(tripID int64) ([]models.TripActivity, error) {
	if s.LoadSchedule != nil {
		return s.LoadSchedule(tripID)
	}
	return s.Schedule.ListByTripID(tripID)
}

// summarizeBudget totals the spend of grouped (valid) entries, preferring
// the recorded actual cost over the activity's estimate.
func summarizeBudget(trip models.Trip, tl timeline.Timeline) BudgetSummary {
	out := BudgetSummary{Budget: trip.Budget}
	for _, g := range tl.Groups {
		for _, e := range g.Activities {
			out.PlannedSpend += entryCost(e.TripActivity)
		}
	}
	if trip.Budget != nil {
		remaining := *trip.Budget - out.PlannedSpend
		out.Remaining = &remaining
	}
	return out
}

func entryCost(ta models.TripActivity) float64 {
	if ta.ActualCost != nil {
		return *ta.ActualCost
	}
	if ta.Activity != nil && ta.Activity.EstimatedCost != nil {
		return *ta.Activity.EstimatedCost
	}
	return 0
}
