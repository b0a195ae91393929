package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plan_runs (
		id               TEXT PRIMARY KEY,
		created_at       TEXT NOT NULL,
		status           TEXT NOT NULL,
		objective        REAL NOT NULL DEFAULT 0,
		delivered_value  REAL NOT NULL DEFAULT 0,
		active_people    INTEGER NOT NULL DEFAULT 0,
		stories_selected INTEGER NOT NULL DEFAULT 0,
		stories_eligible INTEGER NOT NULL DEFAULT 0,
		data_dir         TEXT NOT NULL DEFAULT '',
		out_dir          TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plan_runs_created_at ON plan_runs(created_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
