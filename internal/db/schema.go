// Package db holds schema helpers shared by the repositories.
package db

import (
	"database/sql"
	"database/sql/driver"
	"errors"
)

type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// HasTable reports whether the current database has the named table.
// Connection errors read as "no"; callers treat missing schema as empty.
func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)

	if err != nil {
		if errors.Is(err, driver.ErrBadConn) {
			return false
		}
		return false
	}
	return name.Valid && name.String != ""
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS activities (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(100) NULL,
		rating DECIMAL(2,1) NULL,
		user_ratings_total INT NULL,
		estimated_cost DECIMAL(10,2) NULL,
		duration_minutes INT NULL,
		opening_hours TEXT NULL,
		address VARCHAR(500) NULL,
		place_id VARCHAR(255) NULL,
		reviews_json TEXT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS trips (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		budget DECIMAL(10,2) NULL,
		notes TEXT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS trip_activities (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		trip_id BIGINT NOT NULL,
		activity_id BIGINT NOT NULL,
		planned_date DATE NOT NULL,
		start_time TIME NOT NULL,
		duration_minutes INT NULL,
		timezone VARCHAR(64) NULL,
		notes TEXT NULL,
		actual_cost DECIMAL(10,2) NULL,
		KEY idx_trip_activities_trip (trip_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the application tables when they do not exist yet.
// There is no migration history; the schema is small enough to be
// idempotent DDL.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
