// Package steno implements stroke parsing and normalisation for the
// English steno layout, plus the entry filter used by the editor view.
package steno

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/iudanet/stenodict/internal/models"
)

// ErrInvalidStroke возвращается, если шаг не соответствует раскладке
var ErrInvalidStroke = errors.New("invalid stroke")

// KeyOrder порядок клавиш английской раскладки.
// Индексы 1-7 - левый банк, 8-12 - гласные и звездочка, 13-22 - правый банк.
const KeyOrder = "#STKPWHRAO*EUFRPBLGTSDZ"

const (
	numberKey      = 0
	firstVowelKey  = 8
	lastVowelKey   = 12
	firstRightKey  = 13
	hyphenMinIndex = 11
)

// numberKeys соответствие цифр клавишам при нажатом "#"
var numberKeys = map[rune]int{
	'1': 1,
	'2': 2,
	'3': 4,
	'4': 6,
	'5': 8,
	'0': 9,
	'6': 13,
	'7': 15,
	'8': 17,
	'9': 19,
}

// stroke разобранный шаг: индексы нажатых клавиш по возрастанию
type stroke struct {
	keys    []int
	digits  bool // шаг был записан цифрами
	hasHash bool // явный "#"
}

// parseStroke разбирает один шаг в индексы клавиш KeyOrder
func parseStroke(s string) (stroke, error) {
	var st stroke
	if s == "" {
		return st, fmt.Errorf("%w: empty stroke", ErrInvalidStroke)
	}

	pos := 0
	for _, r := range s {
		switch {
		case r == '-':
			if pos > hyphenMinIndex {
				return st, fmt.Errorf("%w: misplaced hyphen in %q", ErrInvalidStroke, s)
			}
			pos = hyphenMinIndex
		case unicode.IsDigit(r):
			idx, ok := numberKeys[r]
			if !ok || idx < pos {
				return st, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidStroke, r, s)
			}
			st.keys = append(st.keys, idx)
			st.digits = true
			pos = idx + 1
		case r == '#':
			if pos > numberKey || st.hasHash {
				return st, fmt.Errorf("%w: misplaced # in %q", ErrInvalidStroke, s)
			}
			st.hasHash = true
			pos = numberKey + 1
		default:
			idx := strings.IndexRune(KeyOrder[max(pos, 1):], r)
			if idx < 0 {
				return st, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidStroke, r, s)
			}
			idx += max(pos, 1)
			st.keys = append(st.keys, idx)
			pos = idx + 1
		}
	}

	if len(st.keys) == 0 && !st.hasHash {
		return st, fmt.Errorf("%w: no keys in %q", ErrInvalidStroke, s)
	}

	return st, nil
}

// digitFor возвращает цифру для клавиши, если она есть
func digitFor(key int) (rune, bool) {
	for r, idx := range numberKeys {
		if idx == key {
			return r, true
		}
	}
	return 0, false
}

// String возвращает каноническую запись шага
func (st stroke) String() string {
	var b strings.Builder
	if st.hasHash && !st.digits {
		b.WriteByte('#')
	}

	needHyphen := true
	for _, k := range st.keys {
		if k >= firstVowelKey && k <= lastVowelKey {
			needHyphen = false
			break
		}
	}

	hyphenWritten := false
	for _, k := range st.keys {
		if k >= firstRightKey && needHyphen && !hyphenWritten {
			b.WriteByte('-')
			hyphenWritten = true
		}
		if st.digits {
			if r, ok := digitFor(k); ok {
				b.WriteRune(r)
				continue
			}
		}
		b.WriteByte(KeyOrder[k])
	}

	return b.String()
}

// indexes возвращает индексы клавиш с учетом номерной клавиши
func (st stroke) indexes() []int {
	if st.hasHash || st.digits {
		return append([]int{numberKey}, st.keys...)
	}
	return slices.Clone(st.keys)
}

// Normalize разбирает строку шагов ("KAT", "PHOPB/TKPWAOS", "kat tkog")
// и возвращает нормализованный ключ.
// Пустая строка дает пустой ключ без ошибки.
func Normalize(s string) (models.Strokes, error) {
	parts := strings.FieldsFunc(strings.ToUpper(strings.TrimSpace(s)), func(r rune) bool {
		return r == '/' || unicode.IsSpace(r)
	})

	strokes := make(models.Strokes, 0, len(parts))
	for _, part := range parts {
		st, err := parseStroke(part)
		if err != nil {
			return nil, err
		}
		strokes = append(strokes, st.String())
	}

	return strokes, nil
}

// Validate проверяет, что каждый шаг ключа соответствует раскладке
func Validate(strokes models.Strokes) error {
	if len(strokes) == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidStroke)
	}
	for _, s := range strokes {
		if _, err := parseStroke(s); err != nil {
			return err
		}
	}
	return nil
}

// Indexes возвращает индексы клавиш для каждого шага ключа.
// Шаги, не соответствующие раскладке, кодируются кодами символов
// за пределами KeyOrder, чтобы сортировка оставалась детерминированной.
func Indexes(strokes models.Strokes) [][]int {
	result := make([][]int, 0, len(strokes))
	for _, s := range strokes {
		st, err := parseStroke(s)
		if err != nil {
			fallback := make([]int, 0, len(s))
			for _, r := range s {
				fallback = append(fallback, len(KeyOrder)+int(r))
			}
			result = append(result, fallback)
			continue
		}
		result = append(result, st.indexes())
	}
	return result
}

// Compare сравнивает ключи в порядке раскладки
func Compare(a, b models.Strokes) int {
	return CompareIndexes(Indexes(a), Indexes(b))
}

// CompareIndexes сравнивает заранее вычисленные индексы ключей
func CompareIndexes(a, b [][]int) int {
	return slices.CompareFunc(a, b, func(x, y []int) int {
		return slices.Compare(x, y)
	})
}
