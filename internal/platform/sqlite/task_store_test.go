package sqlite_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/platform/sqlite"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/phrazzld/tasks-api/internal/store/storetest"
	"github.com/phrazzld/tasks-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteTaskStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T, clock store.Clock) store.TaskStore {
		log, _ := logger.NewTestLogger(t)
		return sqlite.NewSQLiteTaskStore(testdb.NewSQLite(t), log, sqlite.WithClock(clock))
	})
}

func TestSQLiteTaskStoreStorageErrors(t *testing.T) {
	db := testdb.NewSQLite(t)
	s := sqlite.NewSQLiteTaskStore(db, nil)
	require.NoError(t, db.Close())

	ctx := context.Background()

	_, err := s.ListRecentActive(ctx, 5)
	assert.ErrorIs(t, err, store.ErrStorage)

	_, err = s.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrStorage)
	assert.False(t, store.IsNotFoundError(err))

	err = s.Create(ctx, &domain.Task{Title: "a", Description: "b"})
	assert.ErrorIs(t, err, store.ErrStorage)

	assert.ErrorIs(t, s.Ping(ctx), store.ErrStorage)
}

func TestSQLiteTaskStoreLogsWithContextLogger(t *testing.T) {
	db := testdb.NewSQLite(t)
	s := sqlite.NewSQLiteTaskStore(db, nil)

	log, buf := logger.NewTestLogger(t)
	ctx := logger.WithContext(context.Background(), log)

	task := &domain.Task{Title: "a", Description: "b"}
	require.NoError(t, s.Create(ctx, task))

	assert.Contains(t, buf.String(), "task created")
	assert.Contains(t, buf.String(), task.ID.String())
}

func TestNewSQLiteTaskStorePanicsOnNilDB(t *testing.T) {
	assert.Panics(t, func() { sqlite.NewSQLiteTaskStore(nil, nil) })
}
