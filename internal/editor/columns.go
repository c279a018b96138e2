package editor

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/iudanet/stenodict/internal/dictionary"
	"github.com/iudanet/stenodict/internal/models"
	"github.com/iudanet/stenodict/internal/steno"
)

// Column колонка табличного представления словарей
type Column int

const (
	ColumnStrokes Column = iota
	ColumnTranslation
	ColumnDictionary
	ColumnStrokeCount
	ColumnWordCount
)

// columnSpec описывает поведение колонки при отображении, сортировке и правке
type columnSpec struct {
	name     string
	header   string
	editable bool
	value    func(r *row) string
	compare  func(a, b *row) int
}

var columns = [...]columnSpec{
	ColumnStrokes: {
		name:     "strokes",
		header:   "Strokes",
		editable: true,
		value:    func(r *row) string { return r.entry.Key() },
		compare: func(a, b *row) int {
			return steno.CompareIndexes(a.indexes(), b.indexes())
		},
	},
	ColumnTranslation: {
		name:     "translation",
		header:   "Translation",
		editable: true,
		value:    func(r *row) string { return steno.EscapeTranslation(r.entry.Translation) },
		compare: func(a, b *row) int {
			return strings.Compare(a.entry.Translation, b.entry.Translation)
		},
	},
	ColumnDictionary: {
		name:     "dictionary",
		header:   "Dictionary",
		editable: true,
		value:    func(r *row) string { return dictionary.ShortenPath(r.entry.Dictionary) },
		compare: func(a, b *row) int {
			return strings.Compare(a.entry.Dictionary, b.entry.Dictionary)
		},
	},
	ColumnStrokeCount: {
		name:   "strokes_count",
		header: "# Strokes",
		value:  func(r *row) string { return strconv.Itoa(r.entry.Strokes.Len()) },
		compare: func(a, b *row) int {
			return cmp.Compare(a.entry.Strokes.Len(), b.entry.Strokes.Len())
		},
	},
	ColumnWordCount: {
		name:   "words_count",
		header: "# Words",
		value:  func(r *row) string { return strconv.Itoa(wordCount(r.entry.Translation)) },
		compare: func(a, b *row) int {
			return cmp.Compare(wordCount(a.entry.Translation), wordCount(b.entry.Translation))
		},
	},
}

// wordCount считает слова по пробелам; пустой перевод - одно слово
func wordCount(translation string) int {
	return strings.Count(translation, " ") + 1
}

// Columns возвращает все колонки в порядке отображения
func Columns() []Column {
	cols := make([]Column, len(columns))
	for i := range columns {
		cols[i] = Column(i)
	}
	return cols
}

// Valid проверяет, что колонка существует
func (c Column) Valid() bool {
	return c >= 0 && int(c) < len(columns)
}

// String возвращает машинное имя колонки
func (c Column) String() string {
	if !c.Valid() {
		return fmt.Sprintf("column(%d)", int(c))
	}
	return columns[c].name
}

// Header возвращает заголовок колонки
func (c Column) Header() string {
	if !c.Valid() {
		return ""
	}
	return columns[c].header
}

// Editable возвращает true для колонок, допускающих правку
func (c Column) Editable() bool {
	return c.Valid() && columns[c].editable
}

// ParseColumn разбирает имя колонки (без учета регистра)
func ParseColumn(name string) (Column, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, spec := range columns {
		if spec.name == name {
			return Column(i), nil
		}
	}
	return 0, fmt.Errorf("unknown column %q", name)
}

// row строка рабочего набора
type row struct {
	entry models.Entry
	// pending - строка еще не записана в словарь (нет ключа)
	pending bool
	// created - ID группы журнала, создавшей строку; uuid.Nil если неизвестна
	created uuid.UUID
	// кеш индексов ключа для сортировки
	idx [][]int
}

func newRow(entry models.Entry) *row {
	return &row{entry: entry, pending: !entry.HasKey()}
}

func (r *row) indexes() [][]int {
	if r.idx == nil {
		r.idx = steno.Indexes(r.entry.Strokes)
	}
	return r.idx
}
