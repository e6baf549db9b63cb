package cli_test

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/cli"
	"github.com/phrazzld/tasks-api/internal/client"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// fakeClient is an in-memory TaskClient. It answers errors the way the API
// client does.
type fakeClient struct {
	mu        sync.Mutex
	tasks     []domain.TaskView // oldest first
	now       time.Time
	lastCount int
	lastPatch domain.TaskPatch
	Err       error
}

var _ cli.TaskClient = (*fakeClient)(nil)

func newFakeClient() *fakeClient {
	return &fakeClient{now: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)}
}

func (f *fakeClient) add(title, description string, completed bool) domain.TaskView {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(time.Minute)
	v := domain.TaskView{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		IsCompleted: completed,
		CreatedAt:   f.now,
	}
	f.tasks = append(f.tasks, v)
	return v
}

func (f *fakeClient) find(id uuid.UUID) int {
	for i, t := range f.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func notFound() error {
	return &client.APIError{StatusCode: http.StatusNotFound, Message: "task not found"}
}

func badRequest(msg string) error {
	return &client.APIError{StatusCode: http.StatusBadRequest, Message: msg}
}

func (f *fakeClient) Recent(ctx context.Context, count int) ([]domain.TaskView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	f.lastCount = count
	if count <= 0 {
		count = 5
	}
	out := []domain.TaskView{}
	for i := len(f.tasks) - 1; i >= 0 && len(out) < count; i-- {
		if !f.tasks[i].IsCompleted {
			out = append(out, f.tasks[i])
		}
	}
	return out, nil
}

func (f *fakeClient) All(ctx context.Context) ([]domain.TaskView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]domain.TaskView{}, f.tasks...), nil
}

func (f *fakeClient) Get(ctx context.Context, id uuid.UUID) (domain.TaskView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return domain.TaskView{}, f.Err
	}
	i := f.find(id)
	if i < 0 {
		return domain.TaskView{}, notFound()
	}
	return f.tasks[i], nil
}

func (f *fakeClient) Create(ctx context.Context, input domain.CreateTaskInput) (domain.TaskView, error) {
	if f.Err != nil {
		return domain.TaskView{}, f.Err
	}
	input = input.Normalize()
	if input.Title == "" {
		return domain.TaskView{}, badRequest("title must not be empty")
	}
	if input.Description == "" {
		return domain.TaskView{}, badRequest("description must not be empty")
	}
	return f.add(input.Title, input.Description, false), nil
}

func (f *fakeClient) Update(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (domain.TaskView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return domain.TaskView{}, f.Err
	}
	f.lastPatch = patch
	i := f.find(id)
	if i < 0 {
		return domain.TaskView{}, notFound()
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return domain.TaskView{}, badRequest("title must not be empty")
	}
	if patch.Title != nil {
		f.tasks[i].Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		f.tasks[i].Description = strings.TrimSpace(*patch.Description)
	}
	if patch.IsCompleted != nil {
		f.tasks[i].IsCompleted = *patch.IsCompleted
	}
	return f.tasks[i], nil
}

func (f *fakeClient) Complete(ctx context.Context, id uuid.UUID) (domain.TaskView, error) {
	return f.Update(ctx, id, domain.TaskPatch{IsCompleted: domain.Ptr(true)})
}

func (f *fakeClient) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	i := f.find(id)
	if i < 0 {
		return notFound()
	}
	f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
	return nil
}
