package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketJournal      = []byte("journal")
	bucketFingerprints = []byte("fingerprints")
	bucketEntries      = []byte("entries")
)

// openTimeout ограничивает ожидание блокировки файла другим процессом
const openTimeout = 2 * time.Second

// Storage represents BoltDB state storage: undo journal and dictionary fingerprints
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := open(dbPath)
	if err != nil {
		return nil, err
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

func open(dbPath string) (*bbolt.DB, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}
	return db, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketJournal); err != nil {
			return fmt.Errorf("failed to create journal bucket: %w", err)
		}

		if _, err := tx.CreateBucketIfNotExists(bucketFingerprints); err != nil {
			return fmt.Errorf("failed to create fingerprints bucket: %w", err)
		}

		return nil
	})
}
