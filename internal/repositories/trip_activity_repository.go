package repositories

import (
	"database/sql"

	intconfig "tripplanner/internal/config"
	"tripplanner/internal/domain/models"
)

type TripActivityRepository struct {
	DB *sql.DB
}

func (r TripActivityRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// The activities side is a LEFT JOIN on purpose: a schedule row whose
// activity has been deleted still comes back, with a nil Activity, so the
// timeline can report it instead of hiding it.
const tripActivityQuery = `
	SELECT ta.id, ta.trip_id, ta.activity_id,
	       DATE_FORMAT(ta.planned_date,'%Y-%m-%d'),
	       TIME_FORMAT(ta.start_time,'%H:%i'),
	       ta.duration_minutes, COALESCE(ta.timezone,''),
	       COALESCE(ta.notes,''), ta.actual_cost,
	       a.id, a.name, COALESCE(a.category,''), a.rating, a.user_ratings_total,
	       a.estimated_cost, a.duration_minutes, COALESCE(a.opening_hours,''),
	       COALESCE(a.address,''), COALESCE(a.place_id,'')
	FROM trip_activities ta
	LEFT JOIN activities a ON a.id = ta.activity_id`

func scanTripActivity(row interface{ Scan(...any) error }) (models.TripActivity, error) {
	var ta models.TripActivity
	var duration sql.NullInt64
	var actualCost sql.NullFloat64

	var actID sql.NullInt64
	var actName, actCategory, actHours, actAddress, actPlaceID sql.NullString
	var actRating, actCost sql.NullFloat64
	var actRatings, actDuration sql.NullInt64

	err := row.Scan(
		&ta.ID, &ta.TripID, &ta.ActivityID,
		&ta.PlannedDate, &ta.StartTime,
		&duration, &ta.Timezone,
		&ta.Notes, &actualCost,
		&actID, &actName, &actCategory, &actRating, &actRatings,
		&actCost, &actDuration, &actHours,
		&actAddress, &actPlaceID,
	)
	if err != nil {
		return models.TripActivity{}, err
	}
	ta.DurationMinutes = intPtr(duration)
	ta.ActualCost = floatPtr(actualCost)

	if actID.Valid {
		ta.Activity = &models.Activity{
			ID:               actID.Int64,
			Name:             actName.String,
			Category:         actCategory.String,
			Rating:           floatPtr(actRating),
			UserRatingsTotal: intPtr(actRatings),
			EstimatedCost:    floatPtr(actCost),
			DurationMinutes:  intPtr(actDuration),
			OpeningHours:     actHours.String,
			Address:          actAddress.String,
			PlaceID:          actPlaceID.String,
		}
	}
	return ta, nil
}

// ListByTripID returns the trip's full schedule with the referenced
// activities embedded. Order is left to the timeline grouper.
func (r TripActivityRepository) ListByTripID(tripID int64) ([]models.TripActivity, error) {
	rows, err := r.db().Query(tripActivityQuery+` WHERE ta.trip_id = ? ORDER BY ta.id`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TripActivity{}
	for rows.Next() {
		ta, err := scanTripActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ta)
	}
	return out, rows.Err()
}

func (r TripActivityRepository) GetByID(tripID, id int64) (models.TripActivity, error) {
	row := r.db().QueryRow(tripActivityQuery+` WHERE ta.trip_id = ? AND ta.id = ?`, tripID, id)
	return scanTripActivity(row)
}

func (r TripActivityRepository) Create(ta models.TripActivity) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trip_activities
			(trip_id, activity_id, planned_date, start_time, duration_minutes,
			 timezone, notes, actual_cost)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ta.TripID, ta.ActivityID, ta.PlannedDate, ta.StartTime,
		intArg(ta.DurationMinutes), stringArg(ta.Timezone),
		stringArg(ta.Notes), floatArg(ta.ActualCost),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TripActivityRepository) Update(ta models.TripActivity) error {
	res, err := r.db().Exec(`
		UPDATE trip_activities SET
			planned_date = ?, start_time = ?, duration_minutes = ?,
			timezone = ?, notes = ?, actual_cost = ?
		WHERE trip_id = ? AND id = ?`,
		ta.PlannedDate, ta.StartTime, intArg(ta.DurationMinutes),
		stringArg(ta.Timezone), stringArg(ta.Notes), floatArg(ta.ActualCost),
		ta.TripID, ta.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r TripActivityRepository) Delete(tripID, id int64) error {
	res, err := r.db().Exec(`DELETE FROM trip_activities WHERE trip_id = ? AND id = ?`, tripID, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
