package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// dictionaryPragmas настройки файла словаря.
// Словарь - переносимый файл, который пользователь копирует и сравнивает,
// поэтому журнал отката (DELETE) вместо WAL: рядом не остаются -wal и -shm.
var dictionaryPragmas = []string{
	"PRAGMA journal_mode = DELETE;",
	"PRAGMA synchronous = FULL;",
	"PRAGMA busy_timeout = 5000;",
}

// DB открытый файл словаря SQLite.
// Файл открывается на время одной загрузки или сохранения.
type DB struct {
	db *sql.DB
}

// Open открывает (или создает) файл словаря и приводит схему к последней версии.
// ":memory:" открывает словарь в памяти.
func Open(ctx context.Context, path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary database: %w", err)
	}
	// одно соединение: в памяти каждое новое соединение - новая пустая БД
	db.SetMaxOpenConns(1)

	d := &DB{db: db}
	if err := d.prepare(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) prepare(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping dictionary database: %w", err)
	}

	for _, pragma := range dictionaryPragmas {
		if _, err := d.db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if err := d.migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate dictionary schema: %w", err)
	}
	return nil
}

// Close закрывает файл словаря
func (d *DB) Close() error {
	return d.db.Close()
}

// migrate создает таблицу записей через goose Provider.
// Provider не трогает глобальное состояние goose, поэтому словари
// загружаются параллельно.
func (d *DB) migrate(ctx context.Context) error {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, d.db, migrations)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	return nil
}

// SQL returns the underlying connection for tests
func (d *DB) SQL() *sql.DB {
	return d.db
}
