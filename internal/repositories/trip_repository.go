package repositories

import (
	"database/sql"

	intconfig "tripplanner/internal/config"
	"tripplanner/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `id, name, DATE_FORMAT(start_date,'%Y-%m-%d'),
       DATE_FORMAT(end_date,'%Y-%m-%d'), budget, COALESCE(notes,'')`

func scanTrip(row interface{ Scan(...any) error }) (models.Trip, error) {
	var t models.Trip
	var budget sql.NullFloat64
	if err := row.Scan(&t.ID, &t.Name, &t.StartDate, &t.EndDate, &budget, &t.Notes); err != nil {
		return models.Trip{}, err
	}
	t.Budget = floatPtr(budget)
	return t, nil
}

func (r TripRepository) List() ([]models.Trip, error) {
	rows, err := r.db().Query(`SELECT ` + tripColumns + ` FROM trips ORDER BY start_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	row := r.db().QueryRow(`SELECT `+tripColumns+` FROM trips WHERE id = ?`, id)
	return scanTrip(row)
}

func (r TripRepository) Create(t models.Trip) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trips (name, start_date, end_date, budget, notes)
		VALUES (?, ?, ?, ?, ?)`,
		t.Name, t.StartDate, t.EndDate, floatArg(t.Budget), stringArg(t.Notes),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TripRepository) Update(t models.Trip) error {
	res, err := r.db().Exec(`
		UPDATE trips SET name = ?, start_date = ?, end_date = ?, budget = ?, notes = ?
		WHERE id = ?`,
		t.Name, t.StartDate, t.EndDate, floatArg(t.Budget), stringArg(t.Notes), t.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r TripRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
