package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTaskApply(t *testing.T) {
	base := Task{
		ID:          uuid.New(),
		Title:       "Buy milk",
		Description: "2%, 1 gallon",
	}

	t.Run("nil fields leave values untouched", func(t *testing.T) {
		task := base
		task.Apply(TaskPatch{})
		assert.Equal(t, base, task)
	})

	t.Run("provided strings are trimmed", func(t *testing.T) {
		task := base
		task.Apply(TaskPatch{Description: Ptr("  skim  ")})
		assert.Equal(t, "Buy milk", task.Title)
		assert.Equal(t, "skim", task.Description)
		assert.False(t, task.IsCompleted)
	})

	t.Run("completion flag can be toggled both ways", func(t *testing.T) {
		task := base
		task.Apply(TaskPatch{IsCompleted: Ptr(true)})
		assert.True(t, task.IsCompleted)
		task.Apply(TaskPatch{IsCompleted: Ptr(false)})
		assert.False(t, task.IsCompleted)
	})
}

func TestTaskView(t *testing.T) {
	created := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	task := &Task{
		ID:          uuid.New(),
		Title:       "Pay rent",
		Description: "due 1st",
		IsCompleted: true,
		CreatedAt:   created,
		UpdatedAt:   created.Add(time.Hour),
	}

	view := task.View()
	assert.Equal(t, task.ID, view.ID)
	assert.Equal(t, "Pay rent", view.Title)
	assert.True(t, view.IsCompleted)
	assert.Equal(t, time.UTC, view.CreatedAt.Location())
	assert.True(t, created.Equal(view.CreatedAt))
}

func TestViewsNeverNil(t *testing.T) {
	views := Views(nil)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestTaskPatchIsEmpty(t *testing.T) {
	assert.True(t, TaskPatch{}.IsEmpty())
	assert.False(t, TaskPatch{Title: Ptr("")}.IsEmpty())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("title", "cannot be empty", nil)
	assert.Equal(t, "title cannot be empty", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, IsValidationError(err))

	idErr := NewValidationError("id", "has invalid format", ErrInvalidID)
	assert.True(t, errors.Is(idErr, ErrInvalidID))
	assert.False(t, errors.Is(idErr, ErrValidation))
	assert.True(t, IsValidationError(idErr))
}
