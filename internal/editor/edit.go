package editor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/iudanet/stenodict/internal/models"
	"github.com/iudanet/stenodict/internal/steno"
)

// Insert вставляет строку в позицию i.
// При entry == nil вставляется пустая строка в словаре записи,
// стоящей в позиции i (или в первом словаре, если набор пуст).
// Пустая строка не пишется в словарь до первой правки, задающей ключ.
func (m *Model) Insert(i int, entry *models.Entry) error {
	if i < 0 || i > len(m.rows) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}

	var e models.Entry
	if entry == nil {
		dictPath := m.dicts[0].Path()
		if len(m.rows) > 0 {
			dictPath = m.rows[min(i, len(m.rows)-1)].entry.Dictionary
		}
		e = models.Entry{Strokes: models.Strokes{}, Dictionary: dictPath}
	} else {
		e = entry.Clone()
		if _, ok := m.byPath[e.Dictionary]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownDictionary, e.Dictionary)
		}
	}

	hadUndo := m.HasUndo()

	var displaced *models.Entry
	if e.HasKey() {
		m.withLock(func() {
			displaced = m.put(e)
		})
	}

	group := models.NewOperationGroup(models.Operation{New: e.Ptr(), Displaced: displaced})
	r := newRow(e)
	if r.pending {
		r.created = group.ID
	}

	m.rows = slices.Insert(m.rows, i, r)
	m.notify(func(o Observer) { o.RowsInserted(i, i) })

	if displaced != nil {
		m.dropDisplaced(*displaced, r)
	}

	m.log = append(m.log, group)
	m.undoChanged(hadUndo)

	m.logger.Debug("row inserted", "row", i, "strokes", e.Key(), "dictionary", e.Dictionary)
	return nil
}

// Update правит ячейку строки i.
// Возвращает false без изменений, если значение не меняется или
// словарь не найден; ошибку - для некорректного ключа.
func (m *Model) Update(i int, col Column, value string) (bool, error) {
	if i < 0 || i >= len(m.rows) {
		return false, fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}
	if !col.Editable() {
		return false, fmt.Errorf("%w: %s", ErrColumnNotEditable, col)
	}

	current := m.rows[i]
	old := current.entry
	next := old.Clone()

	switch col {
	case ColumnStrokes:
		strokes, err := steno.Normalize(strings.TrimSpace(value))
		if err != nil {
			return false, fmt.Errorf("failed to parse strokes: %w", err)
		}
		if strokes.Len() == 0 || strokes.Equal(old.Strokes) {
			return false, nil
		}
		next.Strokes = strokes
	case ColumnTranslation:
		translation := steno.UnescapeTranslation(strings.TrimSpace(value))
		if translation == old.Translation {
			return false, nil
		}
		next.Translation = translation
	case ColumnDictionary:
		d, ok := m.resolveDictionary(strings.TrimSpace(value))
		if !ok {
			m.logger.Debug("target dictionary not resolved", "value", value)
			return false, nil
		}
		if d.Path() == old.Dictionary {
			return false, nil
		}
		next.Dictionary = d.Path()
	}

	hadUndo := m.HasUndo()

	var displaced *models.Entry
	m.withLock(func() {
		m.remove(old)
		displaced = m.put(next)
	})

	prev := old.Ptr()
	// Первая правка новой строки сливается с ее созданием
	if current.pending && len(m.log) > 0 && m.log[len(m.log)-1].ID == current.created {
		m.log = m.log[:len(m.log)-1]
		prev = nil
	}

	group := models.NewOperationGroup(models.Operation{Old: prev, New: next.Ptr(), Displaced: displaced})
	r := newRow(next)
	if r.pending && prev == nil {
		r.created = group.ID
	}

	m.rows[i] = r
	m.notify(func(o Observer) { o.DataChanged(i, i) })

	if displaced != nil {
		m.dropDisplaced(*displaced, r)
	}

	m.log = append(m.log, group)
	m.undoChanged(hadUndo)

	m.logger.Debug("row updated",
		"column", col.String(),
		"old", old.Key(),
		"new", next.Key(),
		"dictionary", next.Dictionary,
		"merged", prev == nil,
	)
	return true, nil
}

// Delete удаляет строки и их ключи из словарей одной составной операцией.
// Пустой выбор - ошибка программиста.
func (m *Model) Delete(rows []int) error {
	if len(rows) == 0 {
		panic("editor: Delete called with empty selection")
	}

	sorted := slices.Clone(rows)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	if sorted[0] < 0 || sorted[len(sorted)-1] >= len(m.rows) {
		return fmt.Errorf("%w: %v", ErrRowOutOfRange, rows)
	}
	// Удаляем с конца, чтобы индексы оставались корректными
	slices.Reverse(sorted)

	hadUndo := m.HasUndo()

	var ops []models.Operation
	m.withLock(func() {
		for _, i := range sorted {
			r := m.rows[i]
			m.rows = slices.Delete(m.rows, i, i+1)
			// Ключ мог быть уже удален через дубликат строки
			if m.remove(r.entry) {
				ops = append(ops, models.Operation{Old: r.entry.Ptr()})
			}
		}
	})
	m.notify(func(o Observer) { o.RowsRemoved(sorted) })

	if len(ops) > 0 {
		m.log = append(m.log, models.NewCompoundGroup(ops))
	}
	m.undoChanged(hadUndo)

	m.logger.Debug("rows deleted", "rows", len(sorted), "keys", len(ops))
	return nil
}

// put пишет запись в ее словарь и возвращает перезаписанную запись.
// Вызывается под блокировкой.
func (m *Model) put(e models.Entry) *models.Entry {
	if !e.HasKey() {
		return nil
	}
	d, ok := m.byPath[e.Dictionary]
	if !ok {
		m.logger.Debug("stale dictionary reference", "dictionary", e.Dictionary)
		return nil
	}

	var displaced *models.Entry
	if translation, ok := d.Get(e.Strokes); ok {
		displaced = &models.Entry{Strokes: e.Strokes.Clone(), Translation: translation, Dictionary: d.Path()}
	}
	d.Set(e.Strokes, e.Translation)
	m.markModified(d.Path())
	return displaced
}

// remove удаляет ключ записи из ее словаря; false если ключа не было.
// Вызывается под блокировкой.
func (m *Model) remove(e models.Entry) bool {
	if !e.HasKey() {
		return false
	}
	d, ok := m.byPath[e.Dictionary]
	if !ok {
		m.logger.Debug("stale dictionary reference", "dictionary", e.Dictionary)
		return false
	}
	if !d.Delete(e.Strokes) {
		m.logger.Debug("key already absent", "strokes", e.Key(), "dictionary", e.Dictionary)
		return false
	}
	m.markModified(d.Path())
	return true
}

// dropDisplaced убирает из набора строку перезаписанной записи
func (m *Model) dropDisplaced(displaced models.Entry, keep *row) {
	j := slices.IndexFunc(m.rows, func(r *row) bool {
		return r != keep && r.entry.Equal(displaced)
	})
	if j < 0 {
		return
	}
	m.removeRow(j)
}

// find ищет строку по значению; при заданном id предпочитает строку,
// созданную этой группой журнала
func (m *Model) find(e models.Entry, id uuid.UUID) int {
	if id != uuid.Nil {
		j := slices.IndexFunc(m.rows, func(r *row) bool {
			return r.created == id && r.entry.Equal(e)
		})
		if j >= 0 {
			return j
		}
	}
	return slices.IndexFunc(m.rows, func(r *row) bool {
		return r.entry.Equal(e)
	})
}

func (m *Model) insertRow(i int, e models.Entry) {
	m.rows = slices.Insert(m.rows, i, newRow(e))
	m.notify(func(o Observer) { o.RowsInserted(i, i) })
}

func (m *Model) removeRow(i int) {
	m.rows = slices.Delete(m.rows, i, i+1)
	m.notify(func(o Observer) { o.RowsRemoved([]int{i}) })
}

func (m *Model) undoChanged(before bool) {
	if after := m.HasUndo(); after != before {
		m.notify(func(o Observer) { o.UndoChanged(after) })
	}
}
