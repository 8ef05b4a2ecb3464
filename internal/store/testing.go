package store

import (
	"database/sql"
	"testing"
)

// NewTestStore creates a DB backed by an in-memory database with all
// migrations applied. This is only intended for use in tests.
func NewTestStore(t *testing.T) *DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if err := migrate(sqlDB); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	return &DB{sqlDB}
}
