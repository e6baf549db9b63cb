package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFileCreatesDirectoryAndUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.db")

	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var mode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var fk int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	assert.Error(t, err)
}

func TestMapError(t *testing.T) {
	db, err := Open(context.Background(), MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE t (id TEXT PRIMARY KEY, n INTEGER CHECK (n > 0))`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO t (id, n) VALUES ('a', 1)`)
	require.NoError(t, err)

	_, dupErr := db.Exec(`INSERT INTO t (id, n) VALUES ('a', 2)`)
	require.Error(t, dupErr)
	assert.ErrorIs(t, MapError(dupErr), store.ErrDuplicate)

	_, checkErr := db.Exec(`INSERT INTO t (id, n) VALUES ('b', 0)`)
	require.Error(t, checkErr)
	assert.ErrorIs(t, MapError(checkErr), store.ErrInvalidEntity)

	assert.NoError(t, MapError(nil))

	_, syntaxErr := db.Exec(`SELEC 1`)
	require.Error(t, syntaxErr)
	assert.Equal(t, syntaxErr, MapError(syntaxErr))
}

func TestWrapError(t *testing.T) {
	err := wrapError("get", "failed", assert.AnError)
	assert.ErrorIs(t, err, store.ErrStorage)
	assert.ErrorIs(t, err, assert.AnError)

	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "task", storeErr.Entity)
	assert.Equal(t, "get", storeErr.Operation)
}
