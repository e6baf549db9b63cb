package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field limits for Task content, counted in characters.
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 2000
)

// Task is a single to-do item. A task is active while IsCompleted is false.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskView is the externally visible shape of a Task. UpdatedAt is
// deliberately absent.
type TaskView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateTaskInput carries the fields a caller supplies when creating a task.
type CreateTaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TaskPatch is a partial update. A nil field leaves the stored value
// unchanged; a non-nil pointer to an empty string is a distinct value and
// fails validation.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.IsCompleted == nil
}

// Normalize returns a copy of the input with surrounding whitespace removed.
func (in CreateTaskInput) Normalize() CreateTaskInput {
	return CreateTaskInput{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
	}
}

// Apply copies the non-nil fields of p onto t, trimming strings. It does not
// validate or touch timestamps.
func (t *Task) Apply(p TaskPatch) {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = strings.TrimSpace(*p.Description)
	}
	if p.IsCompleted != nil {
		t.IsCompleted = *p.IsCompleted
	}
}

// View converts the task to its transfer object.
func (t *Task) View() TaskView {
	return TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt.UTC(),
	}
}

// Views converts a slice of tasks, never returning nil.
func Views(tasks []*Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, t.View())
	}
	return views
}

// Ptr returns a pointer to v. It keeps patch literals short.
func Ptr[T any](v T) *T {
	return &v
}
