// Package dictionary содержит упорядоченный словарь стенографии и коллекцию
// словарей в порядке приоритета.
package dictionary

import (
	"slices"

	"github.com/iudanet/stenodict/internal/models"
)

type item struct {
	strokes     models.Strokes
	translation string
	seq         uint64
}

// Dictionary упорядоченное отображение ключ -> перевод.
// Перезапись существующего ключа сохраняет его позицию, новый ключ
// добавляется в конец.
type Dictionary struct {
	path    string
	items   map[string]*item
	nextSeq uint64
}

// New создает пустой словарь
func New(path string) *Dictionary {
	return &Dictionary{
		path:  path,
		items: make(map[string]*item),
	}
}

// FromEntries создает словарь из записей; поле Dictionary записей игнорируется.
// Повторный ключ перезаписывает перевод, оставаясь на первой позиции.
func FromEntries(path string, entries []models.Entry) *Dictionary {
	d := New(path)
	for _, e := range entries {
		d.Set(e.Strokes, e.Translation)
	}
	return d
}

// Path возвращает путь словаря, он же его идентификатор
func (d *Dictionary) Path() string {
	return d.path
}

// Get возвращает перевод по ключу
func (d *Dictionary) Get(strokes models.Strokes) (string, bool) {
	it, ok := d.items[strokes.String()]
	if !ok {
		return "", false
	}
	return it.translation, true
}

// Contains проверяет наличие ключа
func (d *Dictionary) Contains(strokes models.Strokes) bool {
	_, ok := d.items[strokes.String()]
	return ok
}

// Set записывает перевод по ключу
func (d *Dictionary) Set(strokes models.Strokes, translation string) {
	key := strokes.String()
	if it, ok := d.items[key]; ok {
		it.translation = translation
		return
	}
	d.items[key] = &item{
		strokes:     strokes.Clone(),
		translation: translation,
		seq:         d.nextSeq,
	}
	d.nextSeq++
}

// Delete удаляет ключ; false если ключа не было
func (d *Dictionary) Delete(strokes models.Strokes) bool {
	key := strokes.String()
	if _, ok := d.items[key]; !ok {
		return false
	}
	delete(d.items, key)
	return true
}

// Len возвращает количество записей
func (d *Dictionary) Len() int {
	return len(d.items)
}

// Entries возвращает записи в порядке вставки
func (d *Dictionary) Entries() []models.Entry {
	items := make([]*item, 0, len(d.items))
	for _, it := range d.items {
		items = append(items, it)
	}
	slices.SortFunc(items, func(a, b *item) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})

	entries := make([]models.Entry, len(items))
	for i, it := range items {
		entries[i] = models.Entry{
			Strokes:     it.strokes.Clone(),
			Translation: it.translation,
			Dictionary:  d.path,
		}
	}
	return entries
}
