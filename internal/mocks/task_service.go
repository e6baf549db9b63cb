package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
)

// MockTaskService implements service.TaskService for testing. Each method
// calls its Fn field when set and otherwise returns View/Views and Err.
type MockTaskService struct {
	ListRecentFn   func(ctx context.Context, count int) ([]domain.TaskView, error)
	ListAllFn      func(ctx context.Context) ([]domain.TaskView, error)
	GetTaskFn      func(ctx context.Context, id uuid.UUID) (domain.TaskView, error)
	CreateTaskFn   func(ctx context.Context, input domain.CreateTaskInput) (domain.TaskView, error)
	UpdateTaskFn   func(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (domain.TaskView, error)
	CompleteTaskFn func(ctx context.Context, id uuid.UUID) (domain.TaskView, error)
	DeleteTaskFn   func(ctx context.Context, id uuid.UUID) error

	// Default response values
	View  domain.TaskView
	Views []domain.TaskView
	Err   error

	mu    sync.Mutex
	calls map[string]int
}

var _ service.TaskService = (*MockTaskService)(nil)

func (m *MockTaskService) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// Calls returns how many times method was invoked.
func (m *MockTaskService) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// ListRecent implements service.TaskService
func (m *MockTaskService) ListRecent(ctx context.Context, count int) ([]domain.TaskView, error) {
	m.record("ListRecent")
	if m.ListRecentFn != nil {
		return m.ListRecentFn(ctx, count)
	}
	return m.Views, m.Err
}

// ListAll implements service.TaskService
func (m *MockTaskService) ListAll(ctx context.Context) ([]domain.TaskView, error) {
	m.record("ListAll")
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return m.Views, m.Err
}

// GetTask implements service.TaskService
func (m *MockTaskService) GetTask(ctx context.Context, id uuid.UUID) (domain.TaskView, error) {
	m.record("GetTask")
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return m.View, m.Err
}

// CreateTask implements service.TaskService
func (m *MockTaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.TaskView, error) {
	m.record("CreateTask")
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, input)
	}
	return m.View, m.Err
}

// UpdateTask implements service.TaskService
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	patch domain.TaskPatch,
) (domain.TaskView, error) {
	m.record("UpdateTask")
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, patch)
	}
	return m.View, m.Err
}

// CompleteTask implements service.TaskService
func (m *MockTaskService) CompleteTask(ctx context.Context, id uuid.UUID) (domain.TaskView, error) {
	m.record("CompleteTask")
	if m.CompleteTaskFn != nil {
		return m.CompleteTaskFn(ctx, id)
	}
	return m.View, m.Err
}

// DeleteTask implements service.TaskService
func (m *MockTaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	m.record("DeleteTask")
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return m.Err
}
