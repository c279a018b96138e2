package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/iudanet/stenodict/internal/models"
	"github.com/iudanet/stenodict/internal/steno"
)

// InlineDiff возвращает посимвольную разницу переводов в стиле word-diff:
// удаленный текст в [-...-], добавленный в {+...+}.
func InlineDiff(oldText, newText string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		text := steno.EscapeTranslation(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + text + "+}")
		case diffmatchpatch.DiffEqual:
			b.WriteString(text)
		}
	}
	return b.String()
}

// Render печатает человекочитаемый отчет о различиях
func Render(w io.Writer, r Result) error {
	if r.Empty() {
		_, err := fmt.Fprintln(w, "No differences.")
		return err
	}

	var b strings.Builder

	if len(r.Removed) > 0 {
		fmt.Fprintf(&b, "Removed (%d):\n", len(r.Removed))
		for _, e := range r.Removed {
			fmt.Fprintf(&b, "  - %s\n", formatEntry(e))
		}
	}

	if len(r.Modified) > 0 {
		fmt.Fprintf(&b, "Modified (%d):\n", len(r.Modified))
		for _, p := range r.Modified {
			fmt.Fprintf(&b, "  ~ %s: %s  (%s -> %s)\n",
				p.Old.Key(),
				InlineDiff(p.Old.Translation, p.New.Translation),
				p.Old.Dictionary,
				p.New.Dictionary,
			)
		}
	}

	if len(r.Added) > 0 {
		fmt.Fprintf(&b, "Added (%d):\n", len(r.Added))
		for _, e := range r.Added {
			fmt.Fprintf(&b, "  + %s\n", formatEntry(e))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatEntry(e models.Entry) string {
	return fmt.Sprintf("%s: %s  (%s)", e.Key(), steno.EscapeTranslation(e.Translation), e.Dictionary)
}
