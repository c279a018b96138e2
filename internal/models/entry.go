package models

import (
	"slices"
	"strings"
)

// StrokeSeparator разделитель шагов в строковом представлении ключа
const StrokeSeparator = "/"

// Strokes представляет упорядоченную последовательность шагов (stroke),
// образующую ключ записи словаря. Например: PHOPB/TKPWAOS.
type Strokes []string

// ParseStrokes разбирает ключ вида "PHOPB/TKPWAOS" без нормализации.
// Пустая строка дает пустой ключ.
func ParseStrokes(key string) Strokes {
	if key == "" {
		return Strokes{}
	}
	return Strokes(strings.Split(key, StrokeSeparator))
}

// String возвращает ключ в виде шагов, разделенных "/"
func (s Strokes) String() string {
	return strings.Join(s, StrokeSeparator)
}

// Equal сравнивает два ключа пошагово
func (s Strokes) Equal(other Strokes) bool {
	return slices.Equal(s, other)
}

// Len возвращает количество шагов в ключе
func (s Strokes) Len() int {
	return len(s)
}

// Clone создает независимую копию ключа
func (s Strokes) Clone() Strokes {
	if s == nil {
		return Strokes{}
	}
	return slices.Clone(s)
}

// Entry представляет запись словаря: ключ, перевод и словарь-источник.
// Entry является value-объектом: две записи равны, если равны все три поля.
// Для сравнения словарей идентичность определяется только ключом (Strokes).
type Entry struct {
	Strokes     Strokes `json:"strokes"`     // Strokes ключ записи
	Translation string  `json:"translation"` // Translation перевод (значение)
	Dictionary  string  `json:"dictionary"`  // Dictionary путь словаря, которому принадлежит запись
}

// NewEntry создает запись из строкового ключа
func NewEntry(key, translation, dictionary string) Entry {
	return Entry{
		Strokes:     ParseStrokes(key),
		Translation: translation,
		Dictionary:  dictionary,
	}
}

// Key возвращает строковый ключ записи
func (e Entry) Key() string {
	return e.Strokes.String()
}

// Equal сравнивает записи по всем трем полям
func (e Entry) Equal(other Entry) bool {
	return e.Translation == other.Translation &&
		e.Dictionary == other.Dictionary &&
		e.Strokes.Equal(other.Strokes)
}

// IsBlank возвращает true для новой, еще не заполненной строки
func (e Entry) IsBlank() bool {
	return len(e.Strokes) == 0 && e.Translation == ""
}

// HasKey возвращает true, если запись может быть записана в словарь
func (e Entry) HasKey() bool {
	return len(e.Strokes) > 0
}

// Clone создает глубокую копию записи
func (e Entry) Clone() Entry {
	return Entry{
		Strokes:     e.Strokes.Clone(),
		Translation: e.Translation,
		Dictionary:  e.Dictionary,
	}
}

// Ptr возвращает указатель на копию записи
func (e Entry) Ptr() *Entry {
	c := e.Clone()
	return &c
}
