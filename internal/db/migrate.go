package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list can be re-run against an existing database.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS service_requests (
		id             TEXT PRIMARY KEY,
		seq            INTEGER NOT NULL UNIQUE,
		type           TEXT NOT NULL,
		description    TEXT NOT NULL,
		preferred_time TEXT NOT NULL DEFAULT '',
		urgency        TEXT NOT NULL
		               CHECK(urgency IN ('Low','Medium','High','Urgent')),
		status         TEXT NOT NULL
		               CHECK(status IN ('Pending','In Progress','Completed','Cancelled')),
		created_at     TEXT NOT NULL,
		volunteer      TEXT NOT NULL DEFAULT 'TBD',
		resident       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_service_requests_status
		ON service_requests(status)`,

	`CREATE TABLE IF NOT EXISTS donations (
		id         TEXT PRIMARY KEY,
		amount     INTEGER NOT NULL CHECK(amount > 0),
		donor      TEXT NOT NULL,
		created_at TEXT NOT NULL,
		campaign   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_donations_created_at
		ON donations(created_at)`,

	`CREATE TABLE IF NOT EXISTS volunteer_tasks (
		id          TEXT PRIMARY KEY,
		service     TEXT NOT NULL,
		resident    TEXT NOT NULL,
		time        TEXT NOT NULL,
		urgency     TEXT NOT NULL
		            CHECK(urgency IN ('Low','Medium','High','Urgent')),
		status      TEXT NOT NULL
		            CHECK(status IN ('Open','Assigned','In Progress')),
		assigned_to TEXT NOT NULL DEFAULT ''
	)`,
}
