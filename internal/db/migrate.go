package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS pick_history (
		id        TEXT PRIMARY KEY,
		word      TEXT NOT NULL,
		category  TEXT NOT NULL,
		all_play  INTEGER NOT NULL DEFAULT 0 CHECK(all_play IN (0, 1)),
		picked_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_pick_history_picked_at ON pick_history(picked_at)`,
}
