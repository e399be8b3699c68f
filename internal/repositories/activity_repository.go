package repositories

import (
	"database/sql"

	intconfig "tripplanner/internal/config"
	"tripplanner/internal/domain/models"
)

type ActivityRepository struct {
	DB *sql.DB
}

func (r ActivityRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const activityColumns = `id, name, COALESCE(category,''), rating, user_ratings_total,
       estimated_cost, duration_minutes, COALESCE(opening_hours,''),
       COALESCE(address,''), COALESCE(place_id,''), COALESCE(reviews_json,'')`

func scanActivity(row interface{ Scan(...any) error }) (models.Activity, error) {
	var a models.Activity
	var rating, cost sql.NullFloat64
	var ratings, duration sql.NullInt64
	err := row.Scan(
		&a.ID, &a.Name, &a.Category, &rating, &ratings,
		&cost, &duration, &a.OpeningHours,
		&a.Address, &a.PlaceID, &a.ReviewsJSON,
	)
	if err != nil {
		return models.Activity{}, err
	}
	a.Rating = floatPtr(rating)
	a.UserRatingsTotal = intPtr(ratings)
	a.EstimatedCost = floatPtr(cost)
	a.DurationMinutes = intPtr(duration)
	return a, nil
}

// List returns every stored activity. The ranker works on the full
// in-memory snapshot; filtering and paging are not pushed into SQL.
func (r ActivityRepository) List() ([]models.Activity, error) {
	rows, err := r.db().Query(`SELECT ` + activityColumns + ` FROM activities ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r ActivityRepository) GetByID(id int64) (models.Activity, error) {
	row := r.db().QueryRow(`SELECT `+activityColumns+` FROM activities WHERE id = ?`, id)
	return scanActivity(row)
}

func (r ActivityRepository) Create(a models.Activity) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO activities
			(name, category, rating, user_ratings_total, estimated_cost,
			 duration_minutes, opening_hours, address, place_id, reviews_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Name, stringArg(a.Category), floatArg(a.Rating), intArg(a.UserRatingsTotal),
		floatArg(a.EstimatedCost), intArg(a.DurationMinutes), stringArg(a.OpeningHours),
		stringArg(a.Address), stringArg(a.PlaceID), stringArg(a.ReviewsJSON),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ActivityRepository) Update(a models.Activity) error {
	res, err := r.db().Exec(`
		UPDATE activities SET
			name = ?, category = ?, rating = ?, user_ratings_total = ?,
			estimated_cost = ?, duration_minutes = ?, opening_hours = ?,
			address = ?, place_id = ?, reviews_json = ?
		WHERE id = ?`,
		a.Name, stringArg(a.Category), floatArg(a.Rating), intArg(a.UserRatingsTotal),
		floatArg(a.EstimatedCost), intArg(a.DurationMinutes), stringArg(a.OpeningHours),
		stringArg(a.Address), stringArg(a.PlaceID), stringArg(a.ReviewsJSON), a.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r ActivityRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
