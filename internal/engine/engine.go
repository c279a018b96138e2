// Package engine предоставляет доступ к коллекции словарей под общей
// блокировкой: добавление переводов, поиск и сохранение.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/iudanet/stenodict/internal/dictionary"
	"github.com/iudanet/stenodict/internal/models"
	"github.com/iudanet/stenodict/internal/storage"
)

// Engine владеет коллекцией словарей и блокировкой доступа к ней.
// Engine реализует sync.Locker.
type Engine struct {
	mu     sync.Mutex
	dicts  *dictionary.Collection
	logger *slog.Logger
}

// New создает движок поверх загруженной коллекции
func New(dicts *dictionary.Collection, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		dicts:  dicts,
		logger: logger,
	}
}

// Lock захватывает блокировку движка
func (e *Engine) Lock() {
	e.mu.Lock()
}

// Unlock освобождает блокировку движка
func (e *Engine) Unlock() {
	e.mu.Unlock()
}

// WithLock выполняет fn под блокировкой; блокировка освобождается при
// любом выходе из fn, включая панику.
func (e *Engine) WithLock(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn()
}

// Dictionaries возвращает коллекцию словарей.
// Вызывающий отвечает за блокировку при обходе содержимого.
func (e *Engine) Dictionaries() *dictionary.Collection {
	return e.dicts
}

// AddTranslation записывает перевод в словарь; nil translation удаляет ключ.
// Пустой dictPath выбирает словарь с наивысшим приоритетом.
func (e *Engine) AddTranslation(strokes models.Strokes, translation *string, dictPath string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	d, err := e.resolve(dictPath)
	if err != nil {
		return err
	}

	if translation == nil {
		if d.Delete(strokes) {
			e.logger.Debug("translation removed", "strokes", strokes.String(), "dictionary", d.Path())
		}
		return nil
	}

	d.Set(strokes, *translation)
	e.logger.Debug("translation added", "strokes", strokes.String(), "translation", *translation, "dictionary", d.Path())
	return nil
}

// Get возвращает путь выбранного словаря и перевод ключа в нем (nil, если ключа нет).
// Пустой dictPath выбирает словарь с наивысшим приоритетом.
func (e *Engine) Get(strokes models.Strokes, dictPath string) (string, *string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d, err := e.resolve(dictPath)
	if err != nil {
		return "", nil, err
	}

	translation, ok := d.Get(strokes)
	if !ok {
		return d.Path(), nil, nil
	}
	return d.Path(), &translation, nil
}

// Lookup возвращает перевод из словаря с наивысшим приоритетом
func (e *Engine) Lookup(strokes models.Strokes) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, d := range e.dicts.Dicts() {
		if translation, ok := d.Get(strokes); ok {
			return translation, true
		}
	}
	return "", false
}

// LookupEntry возвращает действующую запись вместе со словарем-источником
func (e *Engine) LookupEntry(strokes models.Strokes) (models.Entry, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, d := range e.dicts.Dicts() {
		if translation, ok := d.Get(strokes); ok {
			return models.Entry{Strokes: strokes.Clone(), Translation: translation, Dictionary: d.Path()}, true
		}
	}
	return models.Entry{}, false
}

// CaseReverseLookup ищет ключи, переводящиеся в word без учета регистра.
// Ключ, перекрытый словарем с большим приоритетом, не возвращается.
func (e *Engine) CaseReverseLookup(word string) []models.Strokes {
	e.mu.Lock()
	defer e.mu.Unlock()

	target := strings.ToLower(word)
	seen := make(map[string]struct{})
	var result []models.Strokes

	for _, d := range e.dicts.Dicts() {
		for _, entry := range d.Entries() {
			key := entry.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			if strings.ToLower(entry.Translation) == target {
				result = append(result, entry.Strokes)
			}
		}
	}
	return result
}

// Save сохраняет словари с указанными путями под блокировкой
func (e *Engine) Save(ctx context.Context, paths []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.dicts.Save(ctx, paths); err != nil {
		return fmt.Errorf("failed to save dictionaries: %w", err)
	}
	return nil
}

func (e *Engine) resolve(dictPath string) (*dictionary.Dictionary, error) {
	if dictPath == "" {
		d := e.dicts.First()
		if d == nil {
			return nil, fmt.Errorf("%w: no dictionaries loaded", storage.ErrDictionaryNotFound)
		}
		return d, nil
	}

	d, ok := e.dicts.ByPath(dictPath)
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrDictionaryNotFound, dictPath)
	}
	return d, nil
}
