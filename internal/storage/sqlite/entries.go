package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	sq "github.com/Masterminds/squirrel"

	"github.com/iudanet/stenodict/internal/models"
	"github.com/iudanet/stenodict/internal/storage"
)

const (
	tableEntries = "entries"
	// insertBatchSize ограничивает число параметров в одном INSERT
	insertBatchSize = 300
)

// Storage stores dictionaries in SQLite databases, one database per dictionary
type Storage struct{}

// New creates a new SQLite dictionary storage
func New() *Storage {
	return &Storage{}
}

// Load reads dictionary entries ordered by position
func (s *Storage) Load(ctx context.Context, path string) ([]models.Entry, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", storage.ErrDictionaryNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat dictionary: %w", err)
	}

	db, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return db.Entries(ctx, path)
}

// Save replaces dictionary content in a single transaction
func (s *Storage) Save(ctx context.Context, path string, entries []models.Entry) error {
	db, err := Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.ReplaceEntries(ctx, entries)
}

// Entries returns all entries ordered by position
func (d *DB) Entries(ctx context.Context, path string) ([]models.Entry, error) {
	query, args, err := sq.Select("strokes", "translation").
		From(tableEntries).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		var key, translation string
		if err := rows.Scan(&key, &translation); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, models.NewEntry(key, translation, path))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

// ReplaceEntries deletes all entries and inserts the given ones in order
func (d *DB) ReplaceEntries(ctx context.Context, entries []models.Entry) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := sq.Delete(tableEntries).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	for start := 0; start < len(entries); start += insertBatchSize {
		end := min(start+insertBatchSize, len(entries))
		if err = insertBatch(ctx, tx, entries[start:end], start); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

func insertBatch(ctx context.Context, tx *sql.Tx, batch []models.Entry, offset int) error {
	// Дубликаты ключей внутри словаря невозможны, но при импорте
	// побеждает последнее значение, как при записи по ключу.
	insert := sq.Insert(tableEntries).
		Columns("position", "strokes", "translation").
		Suffix("ON CONFLICT (strokes) DO UPDATE SET translation = excluded.translation")

	for i, e := range batch {
		insert = insert.Values(offset+i, e.Key(), e.Translation)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert entries: %w", err)
	}

	return nil
}
