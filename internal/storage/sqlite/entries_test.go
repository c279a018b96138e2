package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stenodict/internal/models"
	"github.com/iudanet/stenodict/internal/storage"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "main.db")
	s := New()

	entries := []models.Entry{
		models.NewEntry("TKOG", "dog", path),
		models.NewEntry("KAT", "cat", path),
		models.NewEntry("PHOPB/TKPWAOS", "mongoose", path),
	}

	require.NoError(t, s.Save(ctx, path, entries))

	loaded, err := s.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)

	// Повторное сохранение заменяет содержимое целиком
	require.NoError(t, s.Save(ctx, path, entries[:1]))
	loaded, err = s.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, entries[:1], loaded)
}

func TestSave_LargeDictionaryUsesBatches(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "large.db")

	var entries []models.Entry
	for i := 0; i < insertBatchSize*2+17; i++ {
		entries = append(entries, models.NewEntry(fmt.Sprintf("KAT/%d", i), fmt.Sprintf("cat %d", i), path))
	}

	require.NoError(t, New().Save(ctx, path, entries))

	loaded, err := New().Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := New().Load(context.Background(), filepath.Join(t.TempDir(), "missing.db"))
	assert.ErrorIs(t, err, storage.ErrDictionaryNotFound)
}

func TestOpen_InMemoryMigrates(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	var count int
	err = db.SQL().QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSave_LeavesSingleFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.db")

	require.NoError(t, New().Save(ctx, path, []models.Entry{models.NewEntry("KAT", "cat", path)}))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "main.db", files[0].Name())

	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.SQL().QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "delete", mode)
}
