package dictionary

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/stenodict/internal/storage"
)

// Collection упорядоченный список словарей; первый имеет наивысший приоритет
type Collection struct {
	dicts   []*Dictionary
	byPath  map[string]*Dictionary
	backend BackendResolver
	logger  *slog.Logger
}

// Option настраивает коллекцию
type Option func(*Collection)

// WithBackend подменяет выбор хранилища (используется в тестах)
func WithBackend(resolver BackendResolver) Option {
	return func(c *Collection) {
		c.backend = resolver
	}
}

// WithLogger задает логгер коллекции
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collection) {
		c.logger = logger
	}
}

// NewCollection создает коллекцию из уже загруженных словарей
func NewCollection(dicts []*Dictionary, opts ...Option) *Collection {
	c := &Collection{
		byPath:  make(map[string]*Dictionary, len(dicts)),
		backend: BackendFor,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, d := range dicts {
		if _, ok := c.byPath[d.Path()]; ok {
			continue
		}
		c.dicts = append(c.dicts, d)
		c.byPath[d.Path()] = d
	}
	return c
}

// LoadCollection загружает словари параллельно, сохраняя порядок путей
func LoadCollection(ctx context.Context, paths []string, opts ...Option) (*Collection, error) {
	c := NewCollection(nil, opts...)

	// Каждая горутина пишет только в свой слот
	slots := make([]*Dictionary, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			backend, err := c.backend(path)
			if err != nil {
				return err
			}

			entries, err := backend.Load(gctx, path)
			if err != nil {
				return fmt.Errorf("failed to load dictionary %s: %w", path, err)
			}

			slots[i] = FromEntries(path, entries)
			c.logger.Debug("dictionary loaded", "path", path, "entries", slots[i].Len())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, d := range slots {
		if _, ok := c.byPath[d.Path()]; ok {
			c.logger.Warn("duplicate dictionary path ignored", "path", d.Path())
			continue
		}
		c.dicts = append(c.dicts, d)
		c.byPath[d.Path()] = d
	}

	return c, nil
}

// Dicts возвращает словари в порядке приоритета
func (c *Collection) Dicts() []*Dictionary {
	return c.dicts
}

// ByPath возвращает словарь по пути
func (c *Collection) ByPath(path string) (*Dictionary, bool) {
	d, ok := c.byPath[path]
	return d, ok
}

// First возвращает словарь с наивысшим приоритетом или nil
func (c *Collection) First() *Dictionary {
	if len(c.dicts) == 0 {
		return nil
	}
	return c.dicts[0]
}

// Total возвращает общее количество записей во всех словарях
func (c *Collection) Total() int {
	total := 0
	for _, d := range c.dicts {
		total += d.Len()
	}
	return total
}

// Save сохраняет словари с указанными путями
func (c *Collection) Save(ctx context.Context, paths []string) error {
	dicts := make([]*Dictionary, 0, len(paths))
	for _, path := range paths {
		d, ok := c.byPath[path]
		if !ok {
			return fmt.Errorf("%w: %s", storage.ErrDictionaryNotFound, path)
		}
		dicts = append(dicts, d)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, d := range dicts {
		// Снимок делается до запуска горутины, пока вызывающий держит блокировку
		entries := d.Entries()
		g.Go(func() error {
			backend, err := c.backend(d.Path())
			if err != nil {
				return err
			}
			if err := backend.Save(gctx, d.Path(), entries); err != nil {
				return fmt.Errorf("failed to save dictionary %s: %w", d.Path(), err)
			}
			c.logger.Info("dictionary saved", "path", d.Path(), "entries", len(entries))
			return nil
		})
	}

	return g.Wait()
}
