package store

import (
	"fmt"
	"time"
)

// ReplaceStrengthSets deletes all sets from the given source and
// inserts the provided ones in a single transaction, so a re-imported
// CSV never duplicates rows.
func (db *DB) ReplaceStrengthSets(source string, sets []StrengthSet) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM strength_sets WHERE source = ?`, source); err != nil {
		return fmt.Errorf("clearing %s sets: %w", source, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO strength_sets (
			source, workout_title, performed_at, exercise_title,
			set_index, set_type, weight_lbs, reps, rpe
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range sets {
		_, err := stmt.Exec(
			source, s.WorkoutTitle, s.PerformedAt.Format(time.RFC3339), s.ExerciseTitle,
			s.SetIndex, s.SetType, s.WeightLbs, s.Reps, s.RPE,
		)
		if err != nil {
			return fmt.Errorf("inserting set: %w", err)
		}
	}

	return tx.Commit()
}

// ListStrengthSets returns all strength sets ordered by date ascending
func (db *DB) ListStrengthSets() ([]StrengthSet, error) {
	rows, err := db.Query(`
		SELECT id, source, workout_title, performed_at, exercise_title,
			set_index, set_type, weight_lbs, reps, rpe
		FROM strength_sets
		ORDER BY performed_at ASC, set_index ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []StrengthSet
	for rows.Next() {
		var s StrengthSet
		var performedAt string
		var title, setType *string
		err := rows.Scan(
			&s.ID, &s.Source, &title, &performedAt, &s.ExerciseTitle,
			&s.SetIndex, &setType, &s.WeightLbs, &s.Reps, &s.RPE,
		)
		if err != nil {
			return nil, err
		}
		s.PerformedAt, err = time.Parse(time.RFC3339, performedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing performed_at %q: %w", performedAt, err)
		}
		if title != nil {
			s.WorkoutTitle = *title
		}
		if setType != nil {
			s.SetType = *setType
		}
		sets = append(sets, s)
	}

	return sets, rows.Err()
}

// CountStrengthSets returns the total number of stored sets and the
// number of distinct training days they span.
func (db *DB) CountStrengthSets() (sets, days int, err error) {
	err = db.QueryRow(`
		SELECT COUNT(*), COUNT(DISTINCT DATE(performed_at))
		FROM strength_sets
	`).Scan(&sets, &days)
	return sets, days, err
}

// HasRealStrengthData reports whether any non-demo sets are stored.
func (db *DB) HasRealStrengthData() (bool, error) {
	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM strength_sets WHERE source != ?
	`, SourceDemo).Scan(&n)
	return n > 0, err
}
