package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iudanet/stenodict/internal/storage"
	"github.com/iudanet/stenodict/internal/storage/boltdb"
	"github.com/iudanet/stenodict/internal/storage/jsonfile"
	"github.com/iudanet/stenodict/internal/storage/sqlite"
)

// BackendResolver выбирает хранилище для пути словаря
type BackendResolver func(path string) (storage.DictionaryStorage, error)

// BackendFor выбирает хранилище по расширению файла
func BackendFor(path string) (storage.DictionaryStorage, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return jsonfile.New(), nil
	case ".db", ".sqlite":
		return sqlite.New(), nil
	case ".bolt":
		return boltdb.NewDictionaryStorage(), nil
	default:
		return nil, fmt.Errorf("%w: %s", storage.ErrUnsupportedFormat, path)
	}
}

// ExpandPath раскрывает "~" и приводит путь к абсолютному виду
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	return abs, nil
}

// ShortenPath заменяет домашний каталог на "~" для вывода
func ShortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rel, ok := strings.CutPrefix(path, home+string(filepath.Separator)); ok {
		return filepath.Join("~", rel)
	}
	return path
}
