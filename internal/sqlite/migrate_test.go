package sqlite

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// openTestDB opens a fresh in-memory database with the schema applied.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(types.Config{Port: types.DefaultPort, InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrateAppliesAndRecords(t *testing.T) {
	db := openTestDB(t)

	// The tasks table exists.
	var name string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'tasks'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "tasks", name)

	// Every migration is recorded exactly once, in version order.
	rows, err := db.Query("SELECT version, description, applied_at FROM migrations ORDER BY version")
	require.NoError(t, err)
	defer rows.Close()

	var got []int
	for rows.Next() {
		var version int
		var description, appliedAt string
		require.NoError(t, rows.Scan(&version, &description, &appliedAt))
		assert.NotEmpty(t, description)
		assert.NotEmpty(t, appliedAt)
		got = append(got, version)
	}
	require.NoError(t, rows.Err())

	want := make([]int, len(migrations))
	for i, m := range migrations {
		want[i] = m.Version
	}
	assert.Equal(t, want, got)
}

func TestMigrateRerunIsNoOp(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, len(migrations), count)
}

func TestMigrateFailureRecordsNothing(t *testing.T) {
	db := openTestDB(t)

	// A migration whose Up fails must leave no trace in the tracking table.
	bad := Migration{
		Version:     999,
		Description: "Intentionally broken",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec("THIS IS NOT SQL")
			return err
		},
	}
	err := applyMigration(db, bad)
	require.Error(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations WHERE version = 999").Scan(&count))
	assert.Zero(t, count)
}
