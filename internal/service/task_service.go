package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskService provides task-related operations. Every method returns the
// externally visible TaskView rather than the stored entity.
type TaskService interface {
	// ListRecent returns up to count of the newest incomplete tasks.
	ListRecent(ctx context.Context, count int) ([]domain.TaskView, error)

	// ListAll returns every task.
	ListAll(ctx context.Context) ([]domain.TaskView, error)

	// GetTask returns a single task or ErrTaskNotFound.
	GetTask(ctx context.Context, id uuid.UUID) (domain.TaskView, error)

	// CreateTask validates input and stores a new incomplete task.
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.TaskView, error)

	// UpdateTask applies the non-nil fields of patch.
	UpdateTask(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (domain.TaskView, error)

	// CompleteTask marks the task completed.
	CompleteTask(ctx context.Context, id uuid.UUID) (domain.TaskView, error)

	// DeleteTask removes the task or returns ErrTaskNotFound.
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo      store.TaskStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if repo is nil.
func NewTaskService(repo store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if repo == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "repo cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		repo:      repo,
		validator: newValidator(),
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// ListRecent implements TaskService.ListRecent
func (s *taskServiceImpl) ListRecent(ctx context.Context, count int) ([]domain.TaskView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.repo.ListRecentActive(ctx, count)
	if err != nil {
		log.Error("failed to list recent tasks",
			slog.String("error", err.Error()),
			slog.Int("count", count))
		return nil, NewTaskServiceError("list_recent", "failed to list recent tasks", err)
	}
	return domain.Views(tasks), nil
}

// ListAll implements TaskService.ListAll
func (s *taskServiceImpl) ListAll(ctx context.Context) ([]domain.TaskView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("list_all", "failed to list tasks", err)
	}
	return domain.Views(tasks), nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (domain.TaskView, error) {
	task, err := s.getTask(ctx, "get_task", id)
	if err != nil {
		return domain.TaskView{}, err
	}
	return task.View(), nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	input domain.CreateTaskInput,
) (domain.TaskView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	input = input.Normalize()
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		IsCompleted: false,
	}

	if err := validateTask(s.validator, task); err != nil {
		log.Debug("rejected invalid task", slog.String("error", err.Error()))
		return domain.TaskView{}, err
	}

	if err := s.repo.Create(ctx, task); err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()))
		return domain.TaskView{}, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created", slog.String("task_id", task.ID.String()))
	return task.View(), nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	patch domain.TaskPatch,
) (domain.TaskView, error) {
	return s.update(ctx, "update_task", id, patch)
}

// CompleteTask implements TaskService.CompleteTask
func (s *taskServiceImpl) CompleteTask(ctx context.Context, id uuid.UUID) (domain.TaskView, error) {
	return s.update(ctx, "complete_task", id, domain.TaskPatch{IsCompleted: domain.Ptr(true)})
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("task to delete not found", slog.String("task_id", id.String()))
			return ErrTaskNotFound
		}
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted", slog.String("task_id", id.String()))
	return nil
}

func (s *taskServiceImpl) update(
	ctx context.Context,
	operation string,
	id uuid.UUID,
	patch domain.TaskPatch,
) (domain.TaskView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.getTask(ctx, operation, id)
	if err != nil {
		return domain.TaskView{}, err
	}

	task.Apply(patch)
	if err := validateTask(s.validator, task); err != nil {
		log.Debug("rejected invalid task update",
			slog.String("task_id", id.String()),
			slog.String("error", err.Error()))
		return domain.TaskView{}, err
	}

	if err := s.repo.Update(ctx, task); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to save task",
				slog.String("error", err.Error()),
				slog.String("task_id", id.String()))
		}
		return domain.TaskView{}, NewTaskServiceError(operation, "failed to save task", err)
	}

	log.Info("task updated",
		slog.String("task_id", id.String()),
		slog.String("operation", operation),
		slog.Bool("is_completed", task.IsCompleted))
	return task.View(), nil
}

func (s *taskServiceImpl) getTask(ctx context.Context, operation string, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, ErrTaskNotFound
		}
		log.Error("failed to retrieve task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, NewTaskServiceError(operation, "failed to retrieve task", err)
	}
	return task, nil
}
