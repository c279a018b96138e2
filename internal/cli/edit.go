package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/stenodict/internal/dictionary"
	"github.com/iudanet/stenodict/internal/editor"
	"github.com/iudanet/stenodict/internal/models"
	"github.com/iudanet/stenodict/internal/steno"
)

// RunAdd добавляет запись в словарь (пустой путь - первый словарь)
func (c *Cli) RunAdd(ctx context.Context, strokes, translation, dictPath string) error {
	key, err := steno.Normalize(strokes)
	if err != nil {
		return fmt.Errorf("failed to parse strokes: %w", err)
	}
	if key.Len() == 0 {
		return fmt.Errorf("%w: empty strokes", steno.ErrInvalidStroke)
	}

	return c.run(ctx, func(s *session) error {
		path, err := resolveDictionary(s.dicts, dictPath)
		if err != nil {
			return err
		}

		_, old, err := s.engine.Get(key, path)
		if err != nil {
			return err
		}

		entry := models.Entry{Strokes: key, Translation: translation, Dictionary: path}
		if err := s.model.Insert(0, &entry); err != nil {
			return fmt.Errorf("failed to add entry: %w", err)
		}

		c.io.Printf("Added %s -> %s (%s)\n", key, steno.EscapeTranslation(translation), dictionary.ShortenPath(path))
		if old != nil {
			c.io.Printf("Replaced previous translation: %s\n", steno.EscapeTranslation(*old))
		}
		return nil
	})
}

// RunUpdate правит ячейку строки представления
func (c *Cli) RunUpdate(ctx context.Context, opts ViewOptions, row int, column, value string) error {
	col, err := editor.ParseColumn(column)
	if err != nil {
		return err
	}
	if !col.Editable() {
		return fmt.Errorf("%w: %s", editor.ErrColumnNotEditable, col)
	}

	return c.run(ctx, func(s *session) error {
		if err := applyView(s.model, opts); err != nil {
			return err
		}

		before, err := s.model.Row(row)
		if err != nil {
			return err
		}

		changed, err := s.model.Update(row, col, value)
		if err != nil {
			return err
		}
		if !changed {
			c.io.Println("No changes.")
			return nil
		}

		// после правки строка могла сменить позицию, показываем исходную запись
		c.io.Printf("Updated %s of %s (%s).\n", col, before.Key(), dictionary.ShortenPath(before.Dictionary))
		return nil
	})
}

// RunDelete удаляет строки представления одной отменяемой операцией
func (c *Cli) RunDelete(ctx context.Context, opts ViewOptions, rows []int) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows selected")
	}

	return c.run(ctx, func(s *session) error {
		if err := applyView(s.model, opts); err != nil {
			return err
		}

		removed := make([]models.Entry, 0, len(rows))
		for _, i := range rows {
			e, err := s.model.Row(i)
			if err != nil {
				return err
			}
			removed = append(removed, e)
		}

		if err := s.model.Delete(rows); err != nil {
			return fmt.Errorf("failed to delete rows: %w", err)
		}

		c.io.Printf("Deleted %d row(s):\n", len(removed))
		for _, e := range removed {
			c.io.Printf("  %s -> %s (%s)\n", e.Key(), steno.EscapeTranslation(e.Translation), dictionary.ShortenPath(e.Dictionary))
		}
		return nil
	})
}

// RunUndo отменяет count последних операций журнала
func (c *Cli) RunUndo(ctx context.Context, count int) error {
	if count < 1 {
		return fmt.Errorf("invalid undo count: %d", count)
	}

	return c.run(ctx, func(s *session) error {
		undone := 0
		for undone < count && s.model.HasUndo() {
			s.model.Undo()
			undone++
		}

		if undone == 0 {
			c.io.Println("Nothing to undo.")
			return nil
		}

		c.io.Printf("Undone %d operation(s).\n", undone)
		if !s.model.HasUndo() {
			c.io.Println("Undo history is empty.")
		}
		return nil
	})
}
