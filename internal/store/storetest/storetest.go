// Package storetest holds a behavioural test suite that every store.TaskStore
// implementation must pass.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns a TaskStore over an empty task table that reads time from
// clock.
type Factory func(t *testing.T, clock store.Clock) store.TaskStore

// StepClock is a manual clock. Each Now call advances it by Step first.
type StepClock struct {
	mu      sync.Mutex
	Current time.Time
	Step    time.Duration
}

// NewStepClock starts a clock at start that advances by step per reading.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{Current: start, Step: step}
}

// Now advances the clock and returns the new reading.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Current = c.Current.Add(c.Step)
	return c.Current
}

// Set moves the clock to t; the next reading is t plus Step.
func (c *StepClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Current = t
}

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// Run executes the suite against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("CreateAssignsIdentityAndTimestamps", func(t *testing.T) {
		clock := NewStepClock(epoch.Add(123456789*time.Nanosecond), time.Second)
		s := newStore(t, clock.Now)
		ctx := context.Background()

		task := &domain.Task{Title: "Buy milk", Description: "2 liters"}
		require.NoError(t, s.Create(ctx, task))

		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, task.CreatedAt, task.UpdatedAt)
		assert.Equal(t, time.UTC, task.CreatedAt.Location())
		assert.Zero(t, task.CreatedAt.Nanosecond()%1000, "timestamps are stored at microsecond precision")

		got, err := s.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, task.ID, got.ID)
		assert.Equal(t, "Buy milk", got.Title)
		assert.Equal(t, "2 liters", got.Description)
		assert.False(t, got.IsCompleted)
		assert.True(t, task.CreatedAt.Equal(got.CreatedAt))
		assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
	})

	t.Run("CreateIgnoresCallerIdentity", func(t *testing.T) {
		s := newStore(t, NewStepClock(epoch, time.Second).Now)
		ctx := context.Background()

		preset := uuid.New()
		task := &domain.Task{ID: preset, Title: "a", Description: "b"}
		require.NoError(t, s.Create(ctx, task))
		assert.NotEqual(t, preset, task.ID)
	})

	t.Run("CreateRejectsConstraintViolations", func(t *testing.T) {
		s := newStore(t, NewStepClock(epoch, time.Second).Now)
		err := s.Create(context.Background(), &domain.Task{Title: "", Description: "b"})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		s := newStore(t, NewStepClock(epoch, time.Second).Now)
		_, err := s.GetByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.True(t, store.IsNotFoundError(err))
	})

	t.Run("ListRecentActive", func(t *testing.T) {
		s := newStore(t, NewStepClock(epoch, time.Minute).Now)
		ctx := context.Background()

		var created []*domain.Task
		for i := 0; i < 7; i++ {
			task := &domain.Task{Title: "task", Description: "desc"}
			require.NoError(t, s.Create(ctx, task))
			created = append(created, task)
		}

		// Complete the newest one; it must drop out of the active list.
		created[6].IsCompleted = true
		require.NoError(t, s.Update(ctx, created[6]))

		recent, err := s.ListRecentActive(ctx, 5)
		require.NoError(t, err)
		require.Len(t, recent, 5)
		for i, want := range []int{5, 4, 3, 2, 1} {
			assert.Equal(t, created[want].ID, recent[i].ID, "position %d", i)
			assert.False(t, recent[i].IsCompleted)
		}

		defaulted, err := s.ListRecentActive(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, defaulted, store.DefaultRecentLimit)

		wide, err := s.ListRecentActive(ctx, 100)
		require.NoError(t, err)
		assert.Len(t, wide, 6)

		one, err := s.ListRecentActive(ctx, 1)
		require.NoError(t, err)
		require.Len(t, one, 1)
		assert.Equal(t, created[5].ID, one[0].ID)
	})

	t.Run("ListRecentActiveEmpty", func(t *testing.T) {
		s := newStore(t, NewStepClock(epoch, time.Second).Now)
		recent, err := s.ListRecentActive(context.Background(), 5)
		require.NoError(t, err)
		assert.NotNil(t, recent)
		assert.Empty(t, recent)
	})

	t.Run("ListAllIncludesCompletedOldestFirst", func(t *testing.T) {
		s := newStore(t, NewStepClock(epoch, time.Minute).Now)
		ctx := context.Background()

		first := &domain.Task{Title: "first", Description: "d"}
		second := &domain.Task{Title: "second", Description: "d"}
		require.NoError(t, s.Create(ctx, first))
		require.NoError(t, s.Create(ctx, second))
		first.IsCompleted = true
		require.NoError(t, s.Update(ctx, first))

		all, err := s.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, first.ID, all[0].ID)
		assert.True(t, all[0].IsCompleted)
		assert.Equal(t, second.ID, all[1].ID)
	})

	t.Run("UpdatePersistsFieldsAndRefreshesTimestamp", func(t *testing.T) {
		clock := NewStepClock(epoch, time.Second)
		s := newStore(t, clock.Now)
		ctx := context.Background()

		task := &domain.Task{Title: "Pay rent", Description: "before the 5th"}
		require.NoError(t, s.Create(ctx, task))
		createdAt := task.CreatedAt

		task.Description = "before the 3rd"
		task.IsCompleted = true
		require.NoError(t, s.Update(ctx, task))
		assert.True(t, task.UpdatedAt.After(createdAt))

		got, err := s.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "Pay rent", got.Title)
		assert.Equal(t, "before the 3rd", got.Description)
		assert.True(t, got.IsCompleted)
		assert.True(t, got.CreatedAt.Equal(createdAt), "created_at must not change on update")
		assert.True(t, got.UpdatedAt.Equal(task.UpdatedAt))
	})

	t.Run("UpdateClampsBackwardsClock", func(t *testing.T) {
		clock := NewStepClock(epoch, time.Second)
		s := newStore(t, clock.Now)
		ctx := context.Background()

		task := &domain.Task{Title: "a", Description: "b"}
		require.NoError(t, s.Create(ctx, task))

		clock.Set(epoch.Add(-time.Hour))
		task.Title = "renamed"
		require.NoError(t, s.Update(ctx, task))
		assert.True(t, task.UpdatedAt.Equal(task.CreatedAt))

		got, err := s.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
	})

	t.Run("UpdateNotFound", func(t *testing.T) {
		s := newStore(t, NewStepClock(epoch, time.Second).Now)
		err := s.Update(context.Background(), &domain.Task{
			ID:          uuid.New(),
			Title:       "a",
			Description: "b",
			CreatedAt:   epoch,
		})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		s := newStore(t, NewStepClock(epoch, time.Second).Now)
		ctx := context.Background()

		task := &domain.Task{Title: "a", Description: "b"}
		require.NoError(t, s.Create(ctx, task))

		require.NoError(t, s.Delete(ctx, task.ID))
		_, err := s.GetByID(ctx, task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		assert.ErrorIs(t, s.Delete(ctx, task.ID), store.ErrTaskNotFound)
	})

	t.Run("Ping", func(t *testing.T) {
		s := newStore(t, NewStepClock(epoch, time.Second).Now)
		assert.NoError(t, s.Ping(context.Background()))
	})
}
