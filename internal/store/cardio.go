package store

import (
	"database/sql"
	"fmt"
	"time"
)

// UpsertCardioActivity inserts or updates a cardio activity by ID
func (db *DB) UpsertCardioActivity(a *CardioActivity) error {
	_, err := db.Exec(`
		INSERT INTO cardio_activities (
			id, source, name, activity_type, start_date,
			duration_min, distance_miles, avg_heartrate, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			source = excluded.source,
			name = excluded.name,
			activity_type = excluded.activity_type,
			start_date = excluded.start_date,
			duration_min = excluded.duration_min,
			distance_miles = excluded.distance_miles,
			avg_heartrate = excluded.avg_heartrate,
			updated_at = CURRENT_TIMESTAMP
	`,
		a.ID, a.Source, a.Name, a.ActivityType, a.StartDate.Format(time.RFC3339),
		a.DurationMin, a.DistanceMiles, a.AvgHeartrate,
	)
	return err
}

// ReplaceCardioActivities deletes all activities from the given source
// and inserts the provided ones in a single transaction.
func (db *DB) ReplaceCardioActivities(source string, activities []CardioActivity) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM cardio_activities WHERE source = ?`, source); err != nil {
		return fmt.Errorf("clearing %s activities: %w", source, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO cardio_activities (
			id, source, name, activity_type, start_date,
			duration_min, distance_miles, avg_heartrate
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range activities {
		_, err := stmt.Exec(
			a.ID, source, a.Name, a.ActivityType, a.StartDate.Format(time.RFC3339),
			a.DurationMin, a.DistanceMiles, a.AvgHeartrate,
		)
		if err != nil {
			return fmt.Errorf("inserting activity %d: %w", a.ID, err)
		}
	}

	return tx.Commit()
}

// ListCardioActivities returns all cardio activities ordered by start
// date ascending
func (db *DB) ListCardioActivities() ([]CardioActivity, error) {
	rows, err := db.Query(`
		SELECT id, source, name, activity_type, start_date,
			duration_min, distance_miles, avg_heartrate
		FROM cardio_activities
		ORDER BY start_date ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCardioActivities(rows)
}

// LatestCardioStart returns the most recent start date among stored
// activities from the given source, or the zero time when none exist.
func (db *DB) LatestCardioStart(source string) (time.Time, error) {
	var startDate sql.NullString
	err := db.QueryRow(`
		SELECT MAX(start_date) FROM cardio_activities WHERE source = ?
	`, source).Scan(&startDate)
	if err != nil {
		return time.Time{}, err
	}
	if !startDate.Valid {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, startDate.String)
}

func scanCardioActivities(rows *sql.Rows) ([]CardioActivity, error) {
	var activities []CardioActivity
	for rows.Next() {
		var a CardioActivity
		var startDate string
		var name *string
		err := rows.Scan(
			&a.ID, &a.Source, &name, &a.ActivityType, &startDate,
			&a.DurationMin, &a.DistanceMiles, &a.AvgHeartrate,
		)
		if err != nil {
			return nil, err
		}
		a.StartDate, err = time.Parse(time.RFC3339, startDate)
		if err != nil {
			return nil, fmt.Errorf("parsing start_date %q: %w", startDate, err)
		}
		if name != nil {
			a.Name = *name
		}
		activities = append(activities, a)
	}

	return activities, rows.Err()
}
