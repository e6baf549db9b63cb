package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError("task", "create", "failed to insert task", cause)

	assert.Equal(t, "create operation on task failed: failed to insert task: connection refused", err.Error())
	assert.True(t, errors.Is(err, ErrStorage), "every StoreError is a storage failure")
	assert.True(t, errors.Is(err, cause), "the cause stays reachable")
	assert.False(t, errors.Is(err, ErrNotFound))

	bare := NewStoreError("task", "list", "rows closed early", nil)
	assert.Equal(t, "list operation on task failed: rows closed early", bare.Error())

	var se *StoreError
	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, errors.As(wrapped, &se))
	assert.Equal(t, "create", se.Operation)
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrTaskNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrTaskNotFound)))
	assert.False(t, IsNotFoundError(ErrDuplicate))
	assert.False(t, IsNotFoundError(nil))
}

func TestTimestamp(t *testing.T) {
	in := time.Date(2025, time.May, 2, 10, 30, 0, 123456789, time.FixedZone("X", -5*3600))
	out := Timestamp(in)

	assert.Equal(t, time.UTC, out.Location())
	assert.Equal(t, 123456000, out.Nanosecond())
	assert.True(t, out.Before(in) || out.Equal(in))
}
