package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/rank"
	"tripplanner/internal/repositories"
	"tripplanner/internal/utils"
)

// ActivityService owns the activity catalog: CRUD plumbing plus the
// ranked browse view the activity browser renders.
type ActivityService struct {
	Repo      repositories.ActivityRepository
	RequestID string
	// Loader overrides the repository fetch in tests.
	Loader func() ([]models.Activity, error)
}

// Browse loads the catalog snapshot and runs the ranking engine over it.
// Filtering, scoring and paging all happen in memory; the catalog is at
// most a few thousand rows.
func (s ActivityService) Browse(p rank.Params) (rank.Page, error) {
	activities, err := s.load()
	if err != nil {
		return rank.Page{}, domain.InternalError{Msg: "failed to load activities", Err: err}
	}
	page := rank.Rank(activities, p)
	utils.LogEvent(s.RequestID, "activities", "browse",
		fmt.Sprintf("category=%q query_len=%d page=%d total=%d", p.Category, len(p.Query), page.Page, page.TotalCount))
	return page, nil
}

func (s ActivityService) load() ([]models.Activity, error) {
	if s.Loader != nil {
		return s.Loader()
	}
	return s.Repo.List()
}

func (s ActivityService) Get(id int64) (models.Activity, error) {
	a, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Activity{}, domain.NotFoundError{Resource: "activity"}
	}
	if err != nil {
		return models.Activity{}, domain.InternalError{Err: err}
	}
	return a, nil
}

func (s ActivityService) Create(a models.Activity) (models.Activity, error) {
	a.Name = utils.NormalizeSpace(a.Name)
	if err := validateActivity(a); err != nil {
		return models.Activity{}, err
	}
	id, err := s.Repo.Create(a)
	if err != nil {
		return models.Activity{}, domain.InternalError{Msg: "failed to create activity", Err: err}
	}
	a.ID = id
	utils.LogEvent(s.RequestID, "activities", "create", fmt.Sprintf("id=%d", id))
	return a, nil
}

func (s ActivityService) Update(a models.Activity) (models.Activity, error) {
	a.Name = utils.NormalizeSpace(a.Name)
	if err := validateActivity(a); err != nil {
		return models.Activity{}, err
	}
	err := s.Repo.Update(a)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Activity{}, domain.NotFoundError{Resource: "activity"}
	}
	if err != nil {
		return models.Activity{}, domain.InternalError{Msg: "failed to update activity", Err: err}
	}
	utils.LogEvent(s.RequestID, "activities", "update", fmt.Sprintf("id=%d", a.ID))
	return a, nil
}

func (s ActivityService) Delete(id int64) error {
	err := s.Repo.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "activity"}
	}
	if err != nil {
		return domain.InternalError{Msg: "failed to delete activity", Err: err}
	}
	utils.LogEvent(s.RequestID, "activities", "delete", fmt.Sprintf("id=%d", id))
	return nil
}

func validateActivity(a models.Activity) error {
	if strings.TrimSpace(a.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "is required"}
	}
	if a.Rating != nil && (*a.Rating < 0 || *a.Rating > 5) {
		return domain.ValidationError{Field: "rating", Msg: "must be between 0 and 5"}
	}
	if a.UserRatingsTotal != nil && *a.UserRatingsTotal < 0 {
		return domain.ValidationError{Field: "userRatingsTotal", Msg: "must not be negative"}
	}
	if a.EstimatedCost != nil && *a.EstimatedCost < 0 {
		return domain.ValidationError{Field: "estimatedCost", Msg: "must not be negative"}
	}
	if a.DurationMinutes != nil && *a.DurationMinutes <= 0 {
		return domain.ValidationError{Field: "durationMinutes", Msg: "must be positive"}
	}
	return nil
}
