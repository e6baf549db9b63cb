package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/pressly/goose/v3"
)

// TableName is the goose version table shared by every dialect.
const TableName = "schema_migrations"

// Supported goose dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// Supported commands.
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandStatus  = "status"
	CommandVersion = "version"
)

// Commands lists the commands Run accepts.
var Commands = []string{CommandUp, CommandDown, CommandStatus, CommandVersion}

// ErrUnknownCommand is returned for commands outside Commands.
var ErrUnknownCommand = errors.New("unknown migration command")

var gooseMu sync.Mutex

// Runner applies the migrations in FS to a database of the given Dialect.
type Runner struct {
	Dialect string
	FS      fs.FS
	Logger  *slog.Logger
}

// NewRunner creates a Runner. If logger is nil, slog.Default() is used.
func NewRunner(dialect string, migrations fs.FS, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		Dialect: dialect,
		FS:      migrations,
		Logger:  logger.With(slog.String("component", "migrations"), slog.String("dialect", dialect)),
	}
}

// Up applies all pending migrations.
func (r *Runner) Up(ctx context.Context, db *sql.DB) error {
	return r.Run(ctx, db, CommandUp)
}

// Run executes one goose command against db.
func (r *Runner) Run(ctx context.Context, db *sql.DB, command string) error {
	if db == nil {
		return errors.New("migrate: nil database")
	}
	if r.FS == nil {
		return errors.New("migrate: no migrations filesystem")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetLogger(&slogGooseLogger{logger: r.Logger})
	goose.SetBaseFS(r.FS)
	defer goose.SetBaseFS(nil)
	goose.SetTableName(TableName)
	if err := goose.SetDialect(r.Dialect); err != nil {
		return fmt.Errorf("failed to set dialect %q: %w", r.Dialect, err)
	}

	r.Logger.Info("running migration command", slog.String("command", command))

	var err error
	switch command {
	case CommandUp:
		err = goose.UpContext(ctx, db, ".")
	case CommandDown:
		err = goose.DownContext(ctx, db, ".")
	case CommandStatus:
		err = goose.StatusContext(ctx, db, ".")
	case CommandVersion:
		err = goose.VersionContext(ctx, db, ".")
	default:
		return fmt.Errorf("%w: %s (expected one of %v)", ErrUnknownCommand, command, Commands)
	}
	if err != nil {
		r.Logger.Error("migration command failed",
			slog.String("command", command),
			slog.String("error", err.Error()))
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	r.Logger.Info("migration command finished", slog.String("command", command))
	return nil
}

// CurrentVersion reports the highest applied migration version.
func (r *Runner) CurrentVersion(db *sql.DB) (int64, error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetTableName(TableName)
	if err := goose.SetDialect(r.Dialect); err != nil {
		return 0, fmt.Errorf("failed to set dialect %q: %w", r.Dialect, err)
	}
	return goose.GetDBVersion(db)
}

// slogGooseLogger adapts the goose logger interface to slog
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf logs at error level but does NOT exit; goose also returns the error
// to the caller.
func (l *slogGooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
