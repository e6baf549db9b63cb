package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/platform/migrate"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/platform/sqlite"
)

// migrationsFor returns the goose dialect and migration files for driver.
func migrationsFor(driver string) (string, fs.FS, error) {
	switch driver {
	case DriverPostgres:
		return migrate.DialectPostgres, postgres.Migrations(), nil
	case DriverSQLite:
		return migrate.DialectSQLite, sqlite.Migrations(), nil
	default:
		return "", nil, fmt.Errorf("no migrations for database driver %q", driver)
	}
}

// runMigrations executes a migration command against db.
func runMigrations(ctx context.Context, db *sql.DB, driver, command string, logger *slog.Logger) error {
	dialect, files, err := migrationsFor(driver)
	if err != nil {
		return err
	}

	logger.Info("executing migrations",
		slog.String("command", command),
		slog.String("dialect", dialect))

	runner := migrate.NewRunner(dialect, files, logger)
	if err := runner.Run(ctx, db, command); err != nil {
		return err
	}

	if version, err := runner.CurrentVersion(db); err == nil {
		logger.Info("migrations finished",
			slog.String("command", command),
			slog.Int64("version", version))
	}
	return nil
}
