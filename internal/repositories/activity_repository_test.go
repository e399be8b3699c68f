package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var activityCols = []string{
	"id", "name", "category", "rating", "user_ratings_total",
	"estimated_cost", "duration_minutes", "opening_hours", "address", "place_id",
	"reviews_json",
}

func TestActivityRepositoryListScansNulls(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(activityCols).
		AddRow(1, "Museum", "museum", 4.5, 100, 25.0, 90, `["Monday: Closed"]`, "1 Main St", "place-1", `[{"rating":5}]`).
		AddRow(2, "Mystery Spot", "", nil, nil, nil, nil, "", "", "", "")
	mock.ExpectQuery("SELECT (.+) FROM activities").WillReturnRows(rows)

	repo := ActivityRepository{DB: db}
	out, err := repo.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(out))
	}

	full := out[0]
	if full.Rating == nil || *full.Rating != 4.5 || full.UserRatingsTotal == nil || *full.UserRatingsTotal != 100 {
		t.Fatalf("populated fields lost in scan: %+v", full)
	}
	bare := out[1]
	if bare.Rating != nil || bare.UserRatingsTotal != nil || bare.EstimatedCost != nil || bare.DurationMinutes != nil {
		t.Fatalf("NULL columns must map to nil pointers: %+v", bare)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestActivityRepositoryGetByIDMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM activities WHERE id").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(activityCols))

	repo := ActivityRepository{DB: db}
	if _, err := repo.GetByID(42); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestActivityRepositoryDeleteMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM activities").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := ActivityRepository{DB: db}
	if err := repo.Delete(7); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("deleting a missing row should report sql.ErrNoRows, got %v", err)
	}
}
