package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/iudanet/stenodict/internal/editor"
)

// ViewOptions задают фильтр и сортировку представления.
// Номера строк в update и delete относятся к представлению
// с теми же параметрами, что и у list.
type ViewOptions struct {
	Strokes       string
	Translation   string
	CaseSensitive bool
	Regex         bool
	// Sort пустой - порядок из конфигурации
	Sort       string
	Descending bool
}

// applyView применяет фильтр и сортировку к модели
func applyView(model *editor.Model, opts ViewOptions) error {
	if err := model.ApplyFilter(opts.Strokes, opts.Translation, opts.CaseSensitive, opts.Regex); err != nil {
		return err
	}

	if opts.Sort == "" {
		return nil
	}

	column, err := editor.ParseColumn(opts.Sort)
	if err != nil {
		return err
	}
	return model.Sort(column, opts.Descending)
}

// RunList печатает записи представления
func (c *Cli) RunList(ctx context.Context, opts ViewOptions, limit int) error {
	return c.run(ctx, func(s *session) error {
		if err := applyView(s.model, opts); err != nil {
			return err
		}

		c.io.Println("=== Dictionary Entries ===")
		c.io.Println()

		shown := s.model.Len()
		if limit > 0 && limit < shown {
			shown = limit
		}

		if shown == 0 {
			c.io.Println("No entries found.")
		} else if err := c.printRows(s.model, 0, shown); err != nil {
			return err
		}

		c.io.Println()
		c.io.Printf("Showing %d/%d\n", s.model.Len(), s.model.Total())
		return nil
	})
}

// printRows в терминале выравнивает колонки, иначе печатает TSV для скриптов
func (c *Cli) printRows(model *editor.Model, from, to int) error {
	var (
		w  io.Writer = c.io
		tw *tabwriter.Writer
	)
	if c.io.IsTerminal() {
		tw = tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
		w = tw
	}

	headers := []string{"#"}
	for _, col := range editor.Columns() {
		headers = append(headers, col.Header())
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	for i := from; i < to; i++ {
		cells := []string{fmt.Sprint(i)}
		for _, col := range editor.Columns() {
			value, err := model.Value(i, col)
			if err != nil {
				return err
			}
			cells = append(cells, value)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}

	if tw == nil {
		return nil
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
