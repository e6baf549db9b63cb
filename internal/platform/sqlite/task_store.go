package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

const taskColumns = `id, title, description, is_completed, created_at, updated_at`

// Option configures a SQLiteTaskStore.
type Option func(*SQLiteTaskStore)

// WithClock overrides the time source used for generated timestamps.
func WithClock(clock store.Clock) Option {
	return func(s *SQLiteTaskStore) {
		if clock != nil {
			s.now = clock
		}
	}
}

// SQLiteTaskStore implements store.TaskStore on SQLite.
type SQLiteTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
	now    store.Clock
}

// NewSQLiteTaskStore creates a SQLite-backed TaskStore. The schema must already be
// migrated. If logger is nil, a default logger will be used.
func NewSQLiteTaskStore(db store.DBTX, logger *slog.Logger, opts ...Option) *SQLiteTaskStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse is a programming error
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &SQLiteTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
		now:    store.SystemClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ store.TaskStore = (*SQLiteTaskStore)(nil)

// ListRecentActive implements store.TaskStore.ListRecentActive
func (s *SQLiteTaskStore) ListRecentActive(ctx context.Context, limit int) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = store.DefaultRecentLimit
	}

	tasks, err := s.queryTasks(ctx, `
		SELECT `+taskColumns+`
		FROM task
		WHERE is_completed = 0
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		log.Error("failed to list recent active tasks",
			slog.String("error", err.Error()),
			slog.Int("limit", limit))
		return nil, wrapError("list_recent", "failed to query recent tasks", err)
	}

	log.Debug("listed recent active tasks",
		slog.Int("limit", limit),
		slog.Int("count", len(tasks)))
	return tasks, nil
}

// ListAll implements store.TaskStore.ListAll
func (s *SQLiteTaskStore) ListAll(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.queryTasks(ctx, `
		SELECT `+taskColumns+`
		FROM task
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, wrapError("list", "failed to query tasks", err)
	}
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID
func (s *SQLiteTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM task WHERE id = ?`, id.String())
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, wrapError("get", "failed to query task", err)
	}
	return task, nil
}

// Create implements store.TaskStore.Create
func (s *SQLiteTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := store.Timestamp(s.now())
	task.ID = uuid.New()
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO task (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		task.ID.String(),
		task.Title,
		task.Description,
		boolToInt(task.IsCompleted),
		task.CreatedAt.UnixMicro(),
		task.UpdatedAt.UnixMicro(),
	)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return wrapError("create", "failed to insert task", err)
	}

	log.Info("task created", slog.String("task_id", task.ID.String()))
	return nil
}

// Update implements store.TaskStore.Update
func (s *SQLiteTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	updatedAt := store.Timestamp(s.now())
	if updatedAt.Before(task.CreatedAt) {
		updatedAt = task.CreatedAt
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE task
		SET title = ?, description = ?, is_completed = ?, updated_at = ?
		WHERE id = ?
	`,
		task.Title,
		task.Description,
		boolToInt(task.IsCompleted),
		updatedAt.UnixMicro(),
		task.ID.String(),
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return wrapError("update", "failed to update task", err)
	}

	if err := checkRowsAffected(result); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("task not found for update", slog.String("task_id", task.ID.String()))
			return err
		}
		return wrapError("update", "failed to confirm update", err)
	}

	task.UpdatedAt = updatedAt
	log.Info("task updated",
		slog.String("task_id", task.ID.String()),
		slog.Bool("is_completed", task.IsCompleted))
	return nil
}

// Delete implements store.TaskStore.Delete
func (s *SQLiteTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM task WHERE id = ?`, id.String())
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return wrapError("delete", "failed to delete task", err)
	}

	if err := checkRowsAffected(result); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("task not found for delete", slog.String("task_id", id.String()))
			return err
		}
		return wrapError("delete", "failed to confirm delete", err)
	}

	log.Info("task deleted", slog.String("task_id", id.String()))
	return nil
}

// Ping implements store.TaskStore.Ping
func (s *SQLiteTaskStore) Ping(ctx context.Context) error {
	var one int
	if err := s.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one); err != nil {
		return wrapError("ping", "database unreachable", err)
	}
	return nil
}

func (s *SQLiteTaskStore) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task                 domain.Task
		id                   string
		completed            int64
		createdAt, updatedAt int64
	)
	if err := row.Scan(&id, &task.Title, &task.Description, &completed, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	task.ID = parsed
	task.IsCompleted = completed != 0
	task.CreatedAt = time.UnixMicro(createdAt).UTC()
	task.UpdatedAt = time.UnixMicro(updatedAt).UTC()
	return &task, nil
}

func checkRowsAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrTaskNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
