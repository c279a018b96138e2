package models

import (
	"github.com/google/uuid"
)

// Operation представляет обратимую операцию редактирования.
// Old == nil - добавление, New == nil - удаление, оба заданы - изменение.
// Displaced - запись, которая находилась по ключу New в целевом словаре
// до операции и была перезаписана ею.
type Operation struct {
	Old       *Entry `json:"old,omitempty"`
	New       *Entry `json:"new,omitempty"`
	Displaced *Entry `json:"displaced,omitempty"`
}

// IsAdd возвращает true для операции добавления
func (op Operation) IsAdd() bool {
	return op.Old == nil && op.New != nil
}

// IsDelete возвращает true для операции удаления
func (op Operation) IsDelete() bool {
	return op.Old != nil && op.New == nil
}

// IsUpdate возвращает true для операции изменения
func (op Operation) IsUpdate() bool {
	return op.Old != nil && op.New != nil
}

// Entries возвращает все записи, затронутые операцией
func (op Operation) Entries() []*Entry {
	entries := make([]*Entry, 0, 3)
	for _, e := range []*Entry{op.Old, op.New, op.Displaced} {
		if e != nil {
			entries = append(entries, e)
		}
	}
	return entries
}

// OperationGroup - один элемент журнала отмены.
// Составная группа (Compound) отменяется атомарно, например массовое удаление.
type OperationGroup struct {
	ID       uuid.UUID   `json:"id"`
	Ops      []Operation `json:"ops"`
	Compound bool        `json:"compound"`
}

// NewOperationGroup создает группу из одной операции
func NewOperationGroup(op Operation) OperationGroup {
	return OperationGroup{
		ID:  uuid.New(),
		Ops: []Operation{op},
	}
}

// NewCompoundGroup создает составную группу операций
func NewCompoundGroup(ops []Operation) OperationGroup {
	return OperationGroup{
		ID:       uuid.New(),
		Ops:      ops,
		Compound: true,
	}
}

// Dictionaries возвращает пути словарей, затронутых группой, без повторов
func (g OperationGroup) Dictionaries() []string {
	var paths []string
	seen := make(map[string]struct{})
	for _, op := range g.Ops {
		for _, e := range op.Entries() {
			if _, ok := seen[e.Dictionary]; ok {
				continue
			}
			seen[e.Dictionary] = struct{}{}
			paths = append(paths, e.Dictionary)
		}
	}
	return paths
}
