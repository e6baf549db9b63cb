package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// DefaultRecentLimit is the size of the "recent active" slice when the caller
// does not ask for a specific count.
const DefaultRecentLimit = 5

// TaskStore defines the interface for task data persistence.
// Every mutating method is durable when it returns; there is no separate
// commit step.
type TaskStore interface {
	// ListRecentActive returns incomplete tasks, newest first, at most limit
	// of them. A non-positive limit means DefaultRecentLimit.
	ListRecentActive(ctx context.Context, limit int) ([]*domain.Task, error)

	// ListAll returns every task ordered by creation time.
	ListAll(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Create assigns a fresh ID and creation timestamps to task and saves it.
	// Field content is not validated here.
	Create(ctx context.Context, task *domain.Task) error

	// Update refreshes task.UpdatedAt and saves title, description and
	// completion state. Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task. Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}
