package services

import (
	"database/sql"
	"errors"
	"fmt"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/repositories"
	"tripplanner/internal/utils"
)

// ScheduleService manages the trip_activities rows: one scheduled
// occurrence of a catalog activity inside a trip. Creating an entry checks
// both parents exist; scheduling outside the trip's date range is allowed
// on purpose (the timeline reports such items instead of rejecting them,
// so the user can fix the date or the trip).
type ScheduleService struct {
	Trips      repositories.TripRepository
	Activities repositories.ActivityRepository
	Schedule   repositories.TripActivityRepository
	RequestID  string
	// FetchTrip/FetchActivity override parent lookups in tests.
	FetchTrip     func(int64) (models.Trip, error)
	FetchActivity func(int64) (models.Activity, error)
}

func (s ScheduleService) ListByTrip(tripID int64) ([]models.TripActivity, error) {
	if _, err := s.fetchTrip(tripID); err != nil {
		return nil, err
	}
	items, err := s.Schedule.ListByTripID(tripID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load schedule", Err: err}
	}
	return items, nil
}

func (s ScheduleService) Get(tripID, id int64) (models.TripActivity, error) {
	ta, err := s.Schedule.GetByID(tripID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TripActivity{}, domain.NotFoundError{Resource: "schedule entry"}
	}
	if err != nil {
		return models.TripActivity{}, domain.InternalError{Err: err}
	}
	return ta, nil
}

func (s ScheduleService) Create(ta models.TripActivity) (models.TripActivity, error) {
	if _, err := s.fetchTrip(ta.TripID); err != nil {
		return models.TripActivity{}, err
	}
	if _, err := s.fetchActivity(ta.ActivityID); err != nil {
		return models.TripActivity{}, err
	}
	if err := validateScheduleEntry(ta); err != nil {
		return models.TripActivity{}, err
	}
	id, err := s.Schedule.Create(ta)
	if err != nil {
		return models.TripActivity{}, domain.InternalError{Msg: "failed to create schedule entry", Err: err}
	}
	ta.ID = id
	utils.LogEvent(s.RequestID, "schedule", "create",
		fmt.Sprintf("trip_id=%d activity_id=%d date=%s", ta.TripID, ta.ActivityID, ta.PlannedDate))
	return ta, nil
}

func (s ScheduleService) Update(ta models.TripActivity) (models.TripActivity, error) {
	if err := validateScheduleEntry(ta); err != nil {
		return models.TripActivity{}, err
	}
	err := s.Schedule.Update(ta)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TripActivity{}, domain.NotFoundError{Resource: "schedule entry"}
	}
	if err != nil {
		return models.TripActivity{}, domain.InternalError{Msg: "failed to update schedule entry", Err: err}
	}
	utils.LogEvent(s.RequestID, "schedule", "update", fmt.Sprintf("trip_id=%d id=%d", ta.TripID, ta.ID))
	return ta, nil
}

func (s ScheduleService) Delete(tripID, id int64) error {
	err := s.Schedule.Delete(tripID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "schedule entry"}
	}
	if err != nil {
		return domain.InternalError{Msg: "failed to delete schedule entry", Err: err}
	}
	utils.LogEvent(s.RequestID, "schedule", "delete", fmt.Sprintf("trip_id=%d id=%d", tripID, id))
	return nil
}

func (s ScheduleService) fetchTrip(id int64) (models.Trip, error) {
	if s.FetchTrip != nil {
		return s.FetchTrip(id)
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

func (s ScheduleService) fetchActivity(id int64) (models.Activity, error) {
	if s.FetchActivity != nil {
		return s.FetchActivity(id)
	}
	a, err := s.Activities.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Activity{}, domain.NotFoundError{Resource: "activity"}
	}
	if err != nil {
		return models.Activity{}, domain.InternalError{Err: err}
	}
	return a, nil
}

func validateScheduleEntry(ta models.TripActivity) error {
	if _, err := utils.ParseDate(ta.PlannedDate); err != nil {
		return domain.ValidationError{Field: "plannedDate", Msg: "must be a YYYY-MM-DD date"}
	}
	if !utils.ValidClock(ta.StartTime) {
		return domain.ValidationError{Field: "startTime", Msg: "must be a zero-padded HH:MM time"}
	}
	if ta.DurationMinutes != nil && *ta.DurationMinutes <= 0 {
		return domain.ValidationError{Field: "durationMinutes", Msg: "must be positive"}
	}
	if !utils.ValidZone(ta.Timezone) {
		return domain.ValidationError{Field: "timezone", Msg: "must be a valid IANA timezone"}
	}
	if ta.ActualCost != nil && *ta.ActualCost < 0 {
		return domain.ValidationError{Field: "actualCost", Msg: "must not be negative"}
	}
	return nil
}
