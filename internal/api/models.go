package api

import "github.com/phrazzld/tasks-api/internal/domain"

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskRequest is the body of PUT /tasks/{id}. Every field is optional;
// an absent or null field leaves the stored value unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"isCompleted"`
}

// TaskResponse is the wire shape of a task.
type TaskResponse = domain.TaskView

func (r CreateTaskRequest) toInput() domain.CreateTaskInput {
	return domain.CreateTaskInput{Title: r.Title, Description: r.Description}
}

func (r UpdateTaskRequest) toPatch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: r.IsCompleted,
	}
}
