package store

import (
	"database/sql"
	"errors"
	"time"
)

// Sync bookkeeping lives in a small key/value table so adding a new
// cursor never needs a migration. Only one cursor exists today.
const keyLastActivitySync = "last_activity_sync"

// LastActivitySync returns the completion time of the most recent
// Strava activity sync. The zero time means no sync has finished yet;
// an unparseable stored value is treated the same way.
func (db *DB) LastActivitySync() (time.Time, error) {
	var v string
	err := db.QueryRow(`
		SELECT value FROM sync_state WHERE key = ?
	`, keyLastActivitySync).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, nil
	}
	return t, nil
}

// SetLastActivitySync records when an activity sync completed.
func (db *DB) SetLastActivitySync(t time.Time) error {
	_, err := db.Exec(`
		INSERT INTO sync_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, keyLastActivitySync, t.UTC().Format(time.RFC3339))
	return err
}
