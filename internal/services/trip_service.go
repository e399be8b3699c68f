package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/repositories"
	"tripplanner/internal/utils"
)

// TripService implements trip CRUD. Its main job beyond plumbing is
// guaranteeing the StartDate <= EndDate invariant everything downstream
// (timeline partitioning, budget accounting) relies on.
type TripService struct {
	Repo      repositories.TripRepository
	RequestID string
}

func (s TripService) List() ([]models.Trip, error) {
	trips, err := s.Repo.List()
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list trips", Err: err}
	}
	return trips, nil
}

func (s TripService) Get(id int64) (models.Trip, error) {
	t, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	return t, nil
}

func (s TripService) Create(t models.Trip) (models.Trip, error) {
	t.Name = utils.NormalizeSpace(t.Name)
	if err := validateTrip(t); err != nil {
		return models.Trip{}, err
	}
	id, err := s.Repo.Create(t)
	if err != nil {
		return models.Trip{}, domain.InternalError{Msg: "failed to create trip", Err: err}
	}
	t.ID = id
	utils.LogEvent(s.RequestID, "trips", "create", fmt.Sprintf("id=%d range=%s..%s", id, t.StartDate, t.EndDate))
	return t, nil
}

func (s TripService) Update(t models.Trip) (models.Trip, error) {
	t.Name = utils.NormalizeSpace(t.Name)
	if err := validateTrip(t); err != nil {
		return models.Trip{}, err
	}
	err := s.Repo.Update(t)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return models.Trip{}, domain.InternalError{Msg: "failed to update trip", Err: err}
	}
	utils.LogEvent(s.RequestID, "trips", "update", fmt.Sprintf("id=%d", t.ID))
	return t, nil
}

func (s TripService) Delete(id int64) error {
	err := s.Repo.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return domain.InternalError{Msg: "failed to delete trip", Err: err}
	}
	utils.LogEvent(s.RequestID, "trips", "delete", fmt.Sprintf("id=%d", id))
	return nil
}

func validateTrip(t models.Trip) error {
	if strings.TrimSpace(t.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "is required"}
	}
	start, err := utils.ParseDate(t.StartDate)
	if err != nil {
		return domain.ValidationError{Field: "startDate", Msg: "must be a YYYY-MM-DD date"}
	}
	end, err := utils.ParseDate(t.EndDate)
	if err != nil {
		return domain.ValidationError{Field: "endDate", Msg: "must be a YYYY-MM-DD date"}
	}
	if end.Before(start) {
		return domain.ValidationError{Field: "endDate", Msg: "must not be before startDate"}
	}
	if t.Budget != nil && *t.Budget < 0 {
		return domain.ValidationError{Field: "budget", Msg: "must not be negative"}
	}
	return nil
}
