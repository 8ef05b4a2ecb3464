package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Authentication (singleton row)
		`CREATE TABLE IF NOT EXISTS auth (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			athlete_id INTEGER NOT NULL,
			access_token TEXT NOT NULL,
			refresh_token TEXT NOT NULL,
			expires_at INTEGER NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Strength sets (one row per logged set, from Hevy CSV or demo data)
		`CREATE TABLE IF NOT EXISTS strength_sets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			workout_title TEXT,
			performed_at TEXT NOT NULL,
			exercise_title TEXT NOT NULL,
			set_index INTEGER NOT NULL DEFAULT 0,
			set_type TEXT,
			weight_lbs REAL NOT NULL DEFAULT 0,
			reps INTEGER NOT NULL DEFAULT 0,
			rpe REAL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_strength_sets_performed_at ON strength_sets(performed_at)`,
		`CREATE INDEX IF NOT EXISTS idx_strength_sets_source ON strength_sets(source)`,
		`CREATE INDEX IF NOT EXISTS idx_strength_sets_exercise ON strength_sets(exercise_title)`,

		// Cardio activities (normalized from Strava or demo data)
		`CREATE TABLE IF NOT EXISTS cardio_activities (
			id INTEGER PRIMARY KEY,
			source TEXT NOT NULL,
			name TEXT,
			activity_type TEXT NOT NULL,
			start_date TEXT NOT NULL,
			duration_min REAL NOT NULL,
			distance_miles REAL NOT NULL DEFAULT 0,
			avg_heartrate REAL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_cardio_start_date ON cardio_activities(start_date)`,
		`CREATE INDEX IF NOT EXISTS idx_cardio_type ON cardio_activities(activity_type)`,
		`CREATE INDEX IF NOT EXISTS idx_cardio_source ON cardio_activities(source)`,

		// Sync State (key-value store for sync tracking)
		`CREATE TABLE IF NOT EXISTS sync_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
