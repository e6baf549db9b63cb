package testdb

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/tasks-api/internal/platform/migrate"
	"github.com/phrazzld/tasks-api/internal/platform/sqlite"
	"github.com/stretchr/testify/require"
)

// NewSQLite returns a migrated in-memory SQLite database owned by t.
func NewSQLite(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := sqlite.Open(ctx, sqlite.MemoryDSN)
	require.NoError(t, err, "failed to open in-memory sqlite")
	t.Cleanup(func() { CleanupDB(t, db) })

	runner := migrate.NewRunner(migrate.DialectSQLite, sqlite.Migrations(), silentLogger())
	require.NoError(t, runner.Up(ctx, db), "failed to migrate in-memory sqlite")

	return db
}
