package editor

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/iudanet/stenodict/internal/models"
)

// Undo отменяет последнюю группу операций журнала.
// Вызов при пустом журнале - ошибка программиста, проверяйте HasUndo.
func (m *Model) Undo() {
	if len(m.log) == 0 {
		panic("editor: " + ErrNoUndo.Error())
	}

	group := m.log[len(m.log)-1]
	m.log = m.log[:len(m.log)-1]

	// Операции составной группы отменяются в обратном порядке
	for k := len(group.Ops) - 1; k >= 0; k-- {
		m.undo(group.ID, group.Ops[k])
	}

	m.sort()
	m.notify(func(o Observer) { o.LayoutChanged() })
	m.undoChanged(true)

	m.logger.Debug("operation undone", "group", group.ID, "ops", len(group.Ops))
}

func (m *Model) undo(id uuid.UUID, op models.Operation) {
	switch {
	case op.IsAdd():
		m.withLock(func() {
			m.remove(*op.New)
			m.restore(op.Displaced)
		})
		if j := m.find(*op.New, id); j >= 0 {
			m.removeRow(j)
		} else {
			m.logger.Debug("undo target not in working set", "strokes", op.New.Key())
		}

	case op.IsDelete():
		m.withLock(func() {
			m.put(*op.Old)
		})
		m.insertRow(0, *op.Old)
		return

	case op.IsUpdate():
		m.withLock(func() {
			m.remove(*op.New)
			m.put(*op.Old)
			m.restore(op.Displaced)
		})
		if j := m.find(*op.New, uuid.Nil); j >= 0 {
			m.rows[j] = newRow(*op.Old)
			m.notify(func(o Observer) { o.DataChanged(j, j) })
		} else {
			// Строка отфильтрована: показываем результат отмены новой строкой
			m.insertRow(0, *op.Old)
		}

	default:
		return
	}

	if op.Displaced != nil {
		m.insertRow(0, *op.Displaced)
	}
}

// restore возвращает перезаписанную запись в словарь; под блокировкой
func (m *Model) restore(displaced *models.Entry) {
	if displaced != nil {
		m.put(*displaced)
	}
}

// Operations возвращает копию журнала отмены (от старых к новым)
func (m *Model) Operations() []models.OperationGroup {
	return slices.Clone(m.log)
}

// RestoreOperations заменяет журнал отмены сохраненным.
// Словари не изменяются: журнал описывает уже примененные правки.
func (m *Model) RestoreOperations(groups []models.OperationGroup) error {
	for _, g := range groups {
		for _, op := range g.Ops {
			for _, e := range op.Entries() {
				if _, ok := m.byPath[e.Dictionary]; !ok {
					return fmt.Errorf("%w: %s", ErrUnknownDictionary, e.Dictionary)
				}
			}
		}
	}

	hadUndo := m.HasUndo()
	m.log = slices.Clone(groups)
	m.undoChanged(hadUndo)
	return nil
}
