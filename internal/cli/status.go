package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/stenodict/internal/dictionary"
	"github.com/iudanet/stenodict/internal/steno"
)

// RunStatus печатает словари и состояние журнала отмены
func (c *Cli) RunStatus(ctx context.Context) error {
	return c.run(ctx, func(s *session) error {
		c.io.Println("=== Status ===")
		c.io.Println()

		c.io.Println("Dictionaries (highest priority first):")
		for i, d := range s.dicts.Dicts() {
			c.io.Printf("  %d. %s (%d entries)\n", i+1, dictionary.ShortenPath(d.Path()), d.Len())
		}
		c.io.Printf("Total entries: %d\n", s.model.Total())
		c.io.Println()

		groups := s.model.Operations()
		if len(groups) == 0 {
			c.io.Println("Undo history: empty")
			return nil
		}

		c.io.Printf("Undo history: %d operation(s)\n", len(groups))
		last := groups[len(groups)-1]
		paths := last.Dictionaries()
		for i, p := range paths {
			paths[i] = dictionary.ShortenPath(p)
		}
		c.io.Printf("Last operation: %d change(s) in %s\n", len(last.Ops), strings.Join(paths, ", "))
		return nil
	})
}

// RunLookup печатает ключи, дающие слово (без учета регистра)
func (c *Cli) RunLookup(ctx context.Context, word string) error {
	if strings.TrimSpace(word) == "" {
		return fmt.Errorf("empty word")
	}

	return c.run(ctx, func(s *session) error {
		found := s.engine.CaseReverseLookup(word)
		if len(found) == 0 {
			c.io.Printf("No strokes found for %q.\n", word)
			return nil
		}

		c.io.Printf("Found %d stroke(s) for %q:\n", len(found), word)
		for _, strokes := range found {
			translation, _ := s.engine.Lookup(strokes)
			c.io.Printf("  %s -> %s\n", strokes, steno.EscapeTranslation(translation))
		}
		return nil
	})
}

// RunReset очищает сохраненный журнал отмены
func (c *Cli) RunReset(ctx context.Context) error {
	state, err := c.openState(ctx)
	if err != nil {
		return err
	}
	defer state.Close()

	if err := state.ClearJournal(ctx); err != nil {
		return fmt.Errorf("failed to clear undo history: %w", err)
	}

	c.io.Println("Undo history cleared.")
	return nil
}
