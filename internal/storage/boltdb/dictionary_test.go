package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/stenodict/internal/models"
	"github.com/iudanet/stenodict/internal/storage"
)

func TestDictionaryStorage_SaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "user.bolt")
	s := NewDictionaryStorage()

	entries := []models.Entry{
		models.NewEntry("TKOG", "dog", path),
		models.NewEntry("KAT", "cat", path),
		models.NewEntry("KAT/TKOG", "catdog", path),
	}
	require.NoError(t, s.Save(ctx, path, entries))

	got, err := s.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	// Сохранение заменяет содержимое
	require.NoError(t, s.Save(ctx, path, entries[:1]))
	got, err = s.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, entries[:1], got)
}

func TestDictionaryStorage_LoadNotFound(t *testing.T) {
	s := NewDictionaryStorage()

	_, err := s.Load(context.Background(), filepath.Join(t.TempDir(), "missing.bolt"))
	assert.ErrorIs(t, err, storage.ErrDictionaryNotFound)
}

func TestDictionaryStorage_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bolt")

	db, err := bbolt.Open(path, 0600, nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	got, err := NewDictionaryStorage().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDictionaryStorage_LoadInvalidRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bolt")

	db, err := bbolt.Open(path, 0600, nil)
	require.NoError(t, err)
	err = db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucket(bucketEntries)
		if err != nil {
			return err
		}
		return b.Put(itob(0), []byte("not json"))
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = NewDictionaryStorage().Load(context.Background(), path)
	assert.ErrorIs(t, err, storage.ErrInvalidDictionary)
}

var _ storage.DictionaryStorage = (*DictionaryStorage)(nil)
