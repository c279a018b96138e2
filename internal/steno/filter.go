package steno

import (
	"regexp"
	"strings"

	"github.com/iudanet/stenodict/internal/models"
)

// Filter описывает условия отбора записей.
// Regex и литеральные фильтры взаимоисключающие: при заданном Regex
// фильтры Strokes, Translation и CaseSensitive игнорируются.
type Filter struct {
	Regex         *regexp.Regexp
	Strokes       string // подстрока ключа в виде "A/B"
	Translation   string // подстрока перевода
	CaseSensitive bool
}

// IsEmpty возвращает true, если фильтр пропускает все записи
func (f Filter) IsEmpty() bool {
	return f.Regex == nil && f.Strokes == "" && f.Translation == ""
}

// Match проверяет запись на соответствие фильтру
func (f Filter) Match(strokes models.Strokes, translation string) bool {
	if f.Regex != nil {
		return f.Regex.MatchString(translation)
	}

	if f.Strokes != "" && !strings.Contains(strokes.String(), f.Strokes) {
		return false
	}

	if f.Translation != "" {
		needle, haystack := f.Translation, translation
		if !f.CaseSensitive {
			needle = strings.ToLower(needle)
			haystack = strings.ToLower(haystack)
		}
		if !strings.Contains(haystack, needle) {
			return false
		}
	}

	return true
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// EscapeTranslation экранирует управляющие символы перевода для отображения
func EscapeTranslation(translation string) string {
	return escaper.Replace(translation)
}

// UnescapeTranslation обратна EscapeTranslation.
// Неизвестные последовательности остаются как есть.
func UnescapeTranslation(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i == len(s)-1 {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i+1])
		}
		i++
	}
	return b.String()
}
