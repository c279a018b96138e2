// Package jsonfile stores dictionaries in the JSON format used by Plover:
// a single object mapping "STROKE/STROKE" keys to translations.
package jsonfile

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iudanet/stenodict/internal/models"
	"github.com/iudanet/stenodict/internal/storage"
)

// Storage represents JSON file dictionary storage
type Storage struct{}

// New creates a new JSON dictionary storage
func New() *Storage {
	return &Storage{}
}

// Load reads dictionary entries preserving the key order of the file
func (s *Storage) Load(ctx context.Context, path string) ([]models.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", storage.ErrDictionaryNotFound, path)
		}
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	entries, err := decode(bufio.NewReader(f), path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", storage.ErrInvalidDictionary, path, err)
	}

	return entries, nil
}

// decode разбирает JSON объект потоково, чтобы сохранить порядок ключей
func decode(r io.Reader, path string) ([]models.Entry, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// Пустой файл считаем пустым словарем
			return []models.Entry{}, nil
		}
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	entries := []models.Entry{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key %v", keyTok)
		}

		var translation string
		if err := dec.Decode(&translation); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		entries = append(entries, models.NewEntry(key, translation, path))
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Save writes dictionary atomically: temp file in the same directory, then rename
func (s *Storage) Save(ctx context.Context, path string, entries []models.Entry) error {
	data, err := encode(entries)
	if err != nil {
		return fmt.Errorf("failed to encode dictionary: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write dictionary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace dictionary: %w", err)
	}

	return nil
}

// encode пишет по одной записи на строку, как это делает Plover
func encode(entries []models.Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")

	for i, e := range entries {
		key, err := marshalString(e.Key())
		if err != nil {
			return nil, err
		}
		value, err := marshalString(e.Translation)
		if err != nil {
			return nil, err
		}

		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
	}

	buf.WriteString("\n}\n")
	return buf.Bytes(), nil
}

// marshalString кодирует строку без экранирования HTML символов
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
