package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/repositories"
)

func TestValidateScheduleEntry(t *testing.T) {
	dur := 60
	entry := models.TripActivity{
		TripID:          1,
		ActivityID:      2,
		PlannedDate:     "2025-06-03",
		StartTime:       "09:30",
		DurationMinutes: &dur,
		Timezone:        "Europe/Paris",
	}
	if err := validateScheduleEntry(entry); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}
	// Absent timezone defaults to UTC downstream and must pass validation.
	entry.Timezone = ""
	if err := validateScheduleEntry(entry); err != nil {
		t.Fatalf("entry without timezone rejected: %v", err)
	}
}

func TestValidateScheduleEntryRejects(t *testing.T) {
	zero := 0
	bad := -3.0
	cases := []struct {
		name  string
		entry models.TripActivity
	}{
		{"bad date", models.TripActivity{PlannedDate: "June 3rd", StartTime: "09:30"}},
		{"bad time", models.TripActivity{PlannedDate: "2025-06-03", StartTime: "9am"}},
		{"zero duration", models.TripActivity{PlannedDate: "2025-06-03", StartTime: "09:30", DurationMinutes: &zero}},
		{"bogus timezone", models.TripActivity{PlannedDate: "2025-06-03", StartTime: "09:30", Timezone: "Mars/Olympus"}},
		{"negative cost", models.TripActivity{PlannedDate: "2025-06-03", StartTime: "09:30", ActualCost: &bad}},
	}
	for _, c := range cases {
		if err := validateScheduleEntry(c.entry); !domain.IsValidation(err) {
			t.Fatalf("%s: expected ValidationError, got %v", c.name, err)
		}
	}
}

func TestScheduleCreateChecksParents(t *testing.T) {
	svc := ScheduleService{
		FetchTrip: func(id int64) (models.Trip, error) {
			return models.Trip{}, domain.NotFoundError{Resource: "trip"}
		},
	}
	_, err := svc.Create(models.TripActivity{TripID: 99, ActivityID: 1, PlannedDate: "2025-06-03", StartTime: "09:30"})
	if !domain.IsNotFound(err) {
		t.Fatalf("missing trip should surface as not found, got %v", err)
	}

	svc = ScheduleService{
		FetchTrip: func(id int64) (models.Trip, error) {
			return models.Trip{ID: id, StartDate: "2025-06-01", EndDate: "2025-06-09"}, nil
		},
		FetchActivity: func(id int64) (models.Activity, error) {
			return models.Activity{}, domain.NotFoundError{Resource: "activity"}
		},
	}
	_, err = svc.Create(models.TripActivity{TripID: 1, ActivityID: 404, PlannedDate: "2025-06-03", StartTime: "09:30"})
	if !domain.IsNotFound(err) {
		t.Fatalf("missing activity should surface as not found, got %v", err)
	}
}

func TestScheduleCreatePersists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO trip_activities").
		WillReturnResult(sqlmock.NewResult(7, 1))

	svc := ScheduleService{
		Schedule: repositories.TripActivityRepository{DB: db},
		FetchTrip: func(id int64) (models.Trip, error) {
			return models.Trip{ID: id, StartDate: "2025-06-01", EndDate: "2025-06-09"}, nil
		},
		FetchActivity: func(id int64) (models.Activity, error) {
			return models.Activity{ID: id, Name: "Louvre"}, nil
		},
	}

	created, err := svc.Create(models.TripActivity{
		TripID: 1, ActivityID: 9, PlannedDate: "2025-06-03", StartTime: "09:30",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("created ID = %d, want 7", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
