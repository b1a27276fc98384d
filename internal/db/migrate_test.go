package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemory(t *testing.T) {
	database, err := OpenDB(InMemory)
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"service_requests", "donations", "volunteer_tasks"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := OpenDB(InMemory)
	require.NoError(t, err)
	defer database.Close()

	// Re-running the full migration list must not fail.
	require.NoError(t, Migrate(database))
}

func TestOpenDB_RejectsBadStatus(t *testing.T) {
	database, err := OpenDB(InMemory)
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO service_requests (id, seq, type, description, urgency, status, created_at, resident)
		 VALUES ('REQ001', 1, 'Morning Walk', 'd', 'Low', 'Bogus', '2026-01-01T00:00:00Z', 'Mrs. Sharma')`,
	)
	assert.Error(t, err, "CHECK constraint should reject unknown status")
}
