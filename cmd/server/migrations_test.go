package main

import (
	"context"
	"testing"

	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/platform/migrate"
	"github.com/phrazzld/tasks-api/internal/platform/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsFor(t *testing.T) {
	dialect, files, err := migrationsFor(DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, migrate.DialectPostgres, dialect)
	assert.NotNil(t, files)

	dialect, files, err = migrationsFor(DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, migrate.DialectSQLite, dialect)
	assert.NotNil(t, files)

	_, _, err = migrationsFor("oracle")
	assert.Error(t, err)
}

func TestRunMigrationsSQLite(t *testing.T) {
	ctx := context.Background()
	log, _ := logger.NewTestLogger(t)

	db, err := sqlite.Open(ctx, sqlite.MemoryDSN)
	require.NoError(t, err)
	defer closeDB(db, log)

	require.NoError(t, runMigrations(ctx, db, DriverSQLite, migrate.CommandUp, log))
	_, err = db.ExecContext(ctx, "SELECT id FROM task LIMIT 1")
	require.NoError(t, err, "task table exists after up")

	require.NoError(t, runMigrations(ctx, db, DriverSQLite, migrate.CommandStatus, log))
	require.NoError(t, runMigrations(ctx, db, DriverSQLite, migrate.CommandVersion, log))

	require.NoError(t, runMigrations(ctx, db, DriverSQLite, migrate.CommandDown, log))
	_, err = db.ExecContext(ctx, "SELECT id FROM task LIMIT 1")
	assert.Error(t, err, "task table dropped after down")

	err = runMigrations(ctx, db, DriverSQLite, "sideways", log)
	assert.ErrorIs(t, err, migrate.ErrUnknownCommand)

	err = runMigrations(ctx, db, "oracle", migrate.CommandUp, log)
	assert.Error(t, err)
}
