package editor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iudanet/stenodict/internal/steno"
)

// ParseFilter собирает фильтр из пользовательского ввода.
// При regex перевод разбирается как регулярное выражение (без учета регистра,
// если не caseSensitive), а литеральные фильтры не используются.
// Ключ нормализуется; некорректный ключ ищется как есть в верхнем регистре.
func ParseFilter(strokes, translation string, caseSensitive, regex bool) (steno.Filter, error) {
	if regex {
		if translation == "" {
			return steno.Filter{}, nil
		}
		pattern := translation
		if !caseSensitive {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return steno.Filter{}, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
		return steno.Filter{Regex: re, CaseSensitive: caseSensitive}, nil
	}

	filter := steno.Filter{
		Translation:   steno.UnescapeTranslation(translation),
		CaseSensitive: caseSensitive,
	}

	strokes = strings.TrimSpace(strokes)
	if strokes != "" {
		if normalized, err := steno.Normalize(strokes); err == nil && normalized.Len() > 0 {
			filter.Strokes = normalized.String()
		} else {
			filter.Strokes = strings.ToUpper(strokes)
		}
	}

	return filter, nil
}

// ApplyFilter разбирает и применяет фильтр; при ошибке прежний фильтр
// остается в силе.
func (m *Model) ApplyFilter(strokes, translation string, caseSensitive, regex bool) error {
	filter, err := ParseFilter(strokes, translation, caseSensitive, regex)
	if err != nil {
		return err
	}
	m.SetFilter(filter)
	return nil
}
