package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.etcd.io/bbolt"

	"github.com/iudanet/stenodict/internal/models"
	"github.com/iudanet/stenodict/internal/storage"
)

// record формат значения в bucket entries
type record struct {
	Strokes     string `json:"strokes"`
	Translation string `json:"translation"`
}

// DictionaryStorage stores each dictionary in its own BoltDB file
type DictionaryStorage struct{}

// NewDictionaryStorage creates a new BoltDB dictionary storage
func NewDictionaryStorage() *DictionaryStorage {
	return &DictionaryStorage{}
}

// Load reads dictionary entries in stored order
func (s *DictionaryStorage) Load(ctx context.Context, path string) ([]models.Entry, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", storage.ErrDictionaryNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat dictionary: %w", err)
	}

	db, err := open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	entries := []models.Entry{}
	err = db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEntries)
		if bucket == nil {
			// Новый файл без записей
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var r record
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("%w: %s: %v", storage.ErrInvalidDictionary, path, err)
			}
			entries = append(entries, models.NewEntry(r.Strokes, r.Translation, path))
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Save replaces dictionary content in a single transaction
func (s *DictionaryStorage) Save(ctx context.Context, path string, entries []models.Entry) error {
	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Update(func(tx *bbolt.Tx) error {
		bucket, err := recreateBucket(tx, bucketEntries)
		if err != nil {
			return err
		}

		for i, e := range entries {
			data, err := json.Marshal(record{Strokes: e.Key(), Translation: e.Translation})
			if err != nil {
				return fmt.Errorf("failed to marshal entry: %w", err)
			}
			if err := bucket.Put(itob(uint64(i)), data); err != nil {
				return fmt.Errorf("failed to save entry: %w", err)
			}
		}

		return nil
	})
}
