// Package board keeps the local view state of a task board: the most recent
// active tasks, an add form and one-at-a-time completion.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// DefaultSize is how many tasks the board shows.
const DefaultSize = 5

// ErrBusy is returned by Complete while another completion is pending.
var ErrBusy = errors.New("another task is being completed")

// TaskAPI is the subset of the API client the board needs.
type TaskAPI interface {
	Recent(ctx context.Context, count int) ([]domain.TaskView, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.TaskView, error)
	Complete(ctx context.Context, id uuid.UUID) (domain.TaskView, error)
}

// Board holds the recent active tasks shown to the user.
type Board struct {
	api      TaskAPI
	size     int
	validate *validator.Validate
	logger   *slog.Logger

	mu         sync.Mutex
	tasks      []domain.TaskView
	completing uuid.UUID
	busy       bool
}

// New creates an empty board backed by api. If logger is nil, slog.Default()
// is used.
func New(api TaskAPI, logger *slog.Logger) *Board {
	if api == nil {
		// ALLOW-PANIC: constructor misuse is a programming error
		panic("task api cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Board{
		api:      api,
		size:     DefaultSize,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.With(slog.String("component", "board")),
		tasks:    []domain.TaskView{},
	}
}

// Load replaces the board with the most recent active tasks.
func (b *Board) Load(ctx context.Context) error {
	views, err := b.api.Recent(ctx, b.size)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = append(make([]domain.TaskView, 0, len(views)), views...)
	b.logger.Debug("board loaded", slog.Int("count", len(views)))
	return nil
}

// Add validates the form, creates the task and puts it at the top of the
// board. Invalid input fails without contacting the API.
func (b *Board) Add(ctx context.Context, title, description string) (domain.TaskView, error) {
	input := domain.CreateTaskInput{Title: title, Description: description}.Normalize()
	if err := b.validateForm(input); err != nil {
		return domain.TaskView{}, err
	}

	view, err := b.api.Create(ctx, input)
	if err != nil {
		return domain.TaskView{}, fmt.Errorf("failed to add task: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	tasks := make([]domain.TaskView, 0, b.size)
	tasks = append(tasks, view)
	for _, t := range b.tasks {
		if len(tasks) == b.size {
			break
		}
		tasks = append(tasks, t)
	}
	b.tasks = tasks
	return view, nil
}

// Complete marks the task completed and drops it from the board. Only one
// completion may be in flight; a concurrent call returns ErrBusy.
func (b *Board) Complete(ctx context.Context, id uuid.UUID) error {
	b.mu.Lock()
	if b.busy {
		b.mu.Unlock()
		return ErrBusy
	}
	b.busy = true
	b.completing = id
	b.mu.Unlock()

	_, err := b.api.Complete(ctx, id)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.busy = false
	b.completing = uuid.Nil
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	for i, t := range b.tasks {
		if t.ID == id {
			b.tasks = append(b.tasks[:i:i], b.tasks[i+1:]...)
			break
		}
	}
	return nil
}

// Completing returns the id of the task whose completion is pending.
func (b *Board) Completing() (uuid.UUID, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.completing, b.busy
}

// Tasks returns a copy of the tasks on the board, newest first.
func (b *Board) Tasks() []domain.TaskView {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.TaskView(nil), b.tasks...)
}
