package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/stenodict/internal/models"
)

// SaveJournal replaces stored undo log with groups (oldest first)
func (s *Storage) SaveJournal(ctx context.Context, groups []models.OperationGroup) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := recreateBucket(tx, bucketJournal)
		if err != nil {
			return err
		}

		for i, group := range groups {
			data, err := json.Marshal(group)
			if err != nil {
				return fmt.Errorf("failed to marshal operation group: %w", err)
			}
			if err := bucket.Put(itob(uint64(i)), data); err != nil {
				return fmt.Errorf("failed to save operation group: %w", err)
			}
		}

		return nil
	})
}

// LoadJournal returns stored undo log (oldest first)
func (s *Storage) LoadJournal(ctx context.Context) ([]models.OperationGroup, error) {
	groups := []models.OperationGroup{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketJournal)
		if bucket == nil {
			return fmt.Errorf("journal bucket not found")
		}

		// Ключи big-endian, поэтому ForEach идет в порядке записи
		return bucket.ForEach(func(k, v []byte) error {
			var group models.OperationGroup
			if err := json.Unmarshal(v, &group); err != nil {
				return fmt.Errorf("failed to unmarshal operation group: %w", err)
			}
			groups = append(groups, group)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return groups, nil
}

// ClearJournal removes stored undo log and fingerprints
func (s *Storage) ClearJournal(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := recreateBucket(tx, bucketJournal); err != nil {
			return err
		}
		_, err := recreateBucket(tx, bucketFingerprints)
		return err
	})
}

// SaveFingerprints stores content fingerprints by dictionary path
func (s *Storage) SaveFingerprints(ctx context.Context, fingerprints map[string]string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := recreateBucket(tx, bucketFingerprints)
		if err != nil {
			return err
		}

		for path, fp := range fingerprints {
			if err := bucket.Put([]byte(path), []byte(fp)); err != nil {
				return fmt.Errorf("failed to save fingerprint: %w", err)
			}
		}

		return nil
	})
}

// LoadFingerprints returns stored fingerprints by dictionary path
func (s *Storage) LoadFingerprints(ctx context.Context) (map[string]string, error) {
	fingerprints := make(map[string]string)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFingerprints)
		if bucket == nil {
			return fmt.Errorf("fingerprints bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			fingerprints[string(k)] = string(v)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return fingerprints, nil
}

// recreateBucket удаляет bucket вместе с содержимым и создает заново
func recreateBucket(tx *bbolt.Tx, name []byte) (*bbolt.Bucket, error) {
	if tx.Bucket(name) != nil {
		if err := tx.DeleteBucket(name); err != nil {
			return nil, fmt.Errorf("failed to delete bucket %s: %w", name, err)
		}
	}

	bucket, err := tx.CreateBucket(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create bucket %s: %w", name, err)
	}

	return bucket, nil
}

// itob кодирует позицию в big-endian, чтобы сохранить порядок ключей
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
