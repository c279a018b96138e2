// Package cli реализует команды stenodict поверх редактора, движка
// и хранилища состояния.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/iudanet/stenodict/internal/config"
	"github.com/iudanet/stenodict/internal/crypto"
	"github.com/iudanet/stenodict/internal/dictionary"
	"github.com/iudanet/stenodict/internal/editor"
	"github.com/iudanet/stenodict/internal/engine"
	"github.com/iudanet/stenodict/internal/iocli"
	"github.com/iudanet/stenodict/internal/models"
	"github.com/iudanet/stenodict/internal/storage"
	"github.com/iudanet/stenodict/internal/storage/boltdb"
)

type Cli struct {
	io     iocli.IO
	cfg    *config.Config
	logger *slog.Logger
}

func New(io iocli.IO, cfg *config.Config, logger *slog.Logger) *Cli {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		io:     io,
		cfg:    cfg,
		logger: logger,
	}
}

// session открытые словари, модель редактора и хранилище состояния
// на время выполнения одной команды
type session struct {
	dicts  *dictionary.Collection
	engine *engine.Engine
	model  *editor.Model
	state  *boltdb.Storage
	// словари, измененные мимо модели (сессия построения)
	extra []string
}

// run открывает сессию, выполняет fn и при успехе сохраняет измененные
// словари, журнал отмены и отпечатки словарей.
// При ошибке fn ничего не сохраняется.
func (c *Cli) run(ctx context.Context, fn func(s *session) error) error {
	s, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.state.Close(); err != nil {
			c.logger.Error("failed to close state storage", "error", err)
		}
	}()

	if err := fn(s); err != nil {
		return err
	}

	return c.persist(ctx, s)
}

func (c *Cli) open(ctx context.Context) (*session, error) {
	paths, err := c.dictionaryPaths()
	if err != nil {
		return nil, err
	}

	dicts, err := dictionary.LoadCollection(ctx, paths, dictionary.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}
	eng := engine.New(dicts, c.logger)

	column, err := editor.ParseColumn(c.cfg.Sort.Column)
	if err != nil {
		return nil, fmt.Errorf("invalid sort column: %w", err)
	}

	model, err := editor.New(eng, dicts.Dicts(),
		editor.WithSort(column, c.cfg.Sort.Descending),
		editor.WithLogger(c.logger),
	)
	if err != nil {
		return nil, err
	}

	state, err := c.openState(ctx)
	if err != nil {
		return nil, err
	}

	s := &session{
		dicts:  dicts,
		engine: eng,
		model:  model,
		state:  state,
	}

	if err := c.restoreJournal(ctx, s); err != nil {
		state.Close()
		return nil, err
	}

	return s, nil
}

func (c *Cli) dictionaryPaths() ([]string, error) {
	if len(c.cfg.Dictionaries) == 0 {
		return nil, fmt.Errorf("no dictionaries configured")
	}

	paths := make([]string, 0, len(c.cfg.Dictionaries))
	for _, p := range c.cfg.Dictionaries {
		expanded, err := dictionary.ExpandPath(p)
		if err != nil {
			return nil, err
		}
		paths = append(paths, expanded)
	}
	return paths, nil
}

func (c *Cli) openState(ctx context.Context) (*boltdb.Storage, error) {
	statePath, err := dictionary.ExpandPath(c.cfg.StatePath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(statePath), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	state, err := boltdb.New(ctx, statePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open state storage: %w", err)
	}
	return state, nil
}

// restoreJournal загружает журнал отмены предыдущих запусков.
// Если словари изменились вне stenodict, журнал больше не описывает
// их содержимое и сбрасывается.
func (c *Cli) restoreJournal(ctx context.Context, s *session) error {
	groups, err := s.state.LoadJournal(ctx)
	if err != nil {
		return fmt.Errorf("failed to load undo history: %w", err)
	}
	if len(groups) == 0 {
		return nil
	}

	stored, err := s.state.LoadFingerprints(ctx)
	if err != nil {
		return fmt.Errorf("failed to load fingerprints: %w", err)
	}

	var verifyErr error
	s.engine.WithLock(func() {
		verifyErr = verifyJournal(groups, stored, s.dicts)
	})
	if verifyErr == nil {
		verifyErr = s.model.RestoreOperations(groups)
	}
	if verifyErr == nil {
		return nil
	}

	c.logger.Warn("undo history discarded", "reason", verifyErr)
	c.io.Println("Warning: dictionaries changed outside stenodict, undo history discarded.")
	if err := s.state.ClearJournal(ctx); err != nil {
		return fmt.Errorf("failed to clear undo history: %w", err)
	}
	return nil
}

func verifyJournal(groups []models.OperationGroup, stored map[string]string, dicts *dictionary.Collection) error {
	checked := make(map[string]struct{})
	for _, g := range groups {
		for _, path := range g.Dictionaries() {
			if _, ok := checked[path]; ok {
				continue
			}
			checked[path] = struct{}{}

			d, ok := dicts.ByPath(path)
			if !ok {
				return fmt.Errorf("%w: %s", storage.ErrDictionaryNotFound, path)
			}
			if err := crypto.VerifyFingerprint(d.Entries(), stored[path]); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	return nil
}

func (c *Cli) persist(ctx context.Context, s *session) error {
	modified := s.model.Modified()
	for _, p := range s.extra {
		if !slices.Contains(modified, p) {
			modified = append(modified, p)
		}
	}

	if len(modified) > 0 {
		if err := s.engine.Save(ctx, modified); err != nil {
			return err
		}
	}

	if err := s.state.SaveJournal(ctx, s.model.Operations()); err != nil {
		return fmt.Errorf("failed to save undo history: %w", err)
	}

	fingerprints := make(map[string]string)
	s.engine.WithLock(func() {
		for _, d := range s.dicts.Dicts() {
			fingerprints[d.Path()] = crypto.Fingerprint(d.Entries())
		}
	})
	if err := s.state.SaveFingerprints(ctx, fingerprints); err != nil {
		return fmt.Errorf("failed to save fingerprints: %w", err)
	}

	return nil
}

// resolveDictionary ищет словарь по пути из командной строки;
// пустой путь - словарь с наивысшим приоритетом
func resolveDictionary(dicts *dictionary.Collection, path string) (string, error) {
	if path == "" {
		return dicts.First().Path(), nil
	}
	if d, ok := dicts.ByPath(path); ok {
		return d.Path(), nil
	}
	expanded, err := dictionary.ExpandPath(path)
	if err != nil {
		return "", err
	}
	if d, ok := dicts.ByPath(expanded); ok {
		return d.Path(), nil
	}
	return "", fmt.Errorf("%w: %s", editor.ErrUnknownDictionary, path)
}

// IsNotFound сообщает, что ошибка вызвана отсутствующим словарем
func IsNotFound(err error) bool {
	return errors.Is(err, storage.ErrDictionaryNotFound)
}
