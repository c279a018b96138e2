// Package editor реализует табличную модель редактирования словарей:
// рабочий набор записей из нескольких словарей, журнал отмены,
// фильтрацию и сортировку.
package editor

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/iudanet/stenodict/internal/dictionary"
	"github.com/iudanet/stenodict/internal/models"
	"github.com/iudanet/stenodict/internal/steno"
)

// Model рабочий набор записей редактируемых словарей.
// Все изменения словарей выполняются под блокировкой locker
// (как правило, это движок, владеющий словарями).
// Model не потокобезопасна: методы вызываются из одного потока управления.
type Model struct {
	locker sync.Locker
	dicts  []*dictionary.Dictionary
	byPath map[string]*dictionary.Dictionary

	rows []*row
	log  []models.OperationGroup

	filter     steno.Filter
	sortColumn Column
	descending bool

	// пути словарей, измененных за сессию, в порядке первого изменения
	modified    []string
	modifiedSet map[string]struct{}

	observers []Observer
	logger    *slog.Logger
}

// Option настраивает модель
type Option func(*Model)

// WithSort задает начальную сортировку
func WithSort(column Column, descending bool) Option {
	return func(m *Model) {
		m.sortColumn = column
		m.descending = descending
	}
}

// WithFilter задает начальный фильтр
func WithFilter(filter steno.Filter) Option {
	return func(m *Model) {
		m.filter = filter
	}
}

// WithLogger задает логгер модели
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithObserver подписывает наблюдателя на изменения
func WithObserver(observer Observer) Option {
	return func(m *Model) {
		m.observers = append(m.observers, observer)
	}
}

// New создает модель и заполняет рабочий набор из словарей.
// Порядок dicts задает словарь по умолчанию для новых строк.
func New(locker sync.Locker, dicts []*dictionary.Dictionary, opts ...Option) (*Model, error) {
	if len(dicts) == 0 {
		return nil, ErrNoDictionaries
	}

	m := &Model{
		locker:      locker,
		byPath:      make(map[string]*dictionary.Dictionary, len(dicts)),
		modifiedSet: make(map[string]struct{}),
		sortColumn:  ColumnStrokes,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if !m.sortColumn.Valid() {
		return nil, fmt.Errorf("invalid sort column %d", int(m.sortColumn))
	}

	for _, d := range dicts {
		if _, ok := m.byPath[d.Path()]; ok {
			continue
		}
		m.dicts = append(m.dicts, d)
		m.byPath[d.Path()] = d
	}

	m.rebuild()
	return m, nil
}

// Subscribe добавляет наблюдателя
func (m *Model) Subscribe(observer Observer) {
	m.observers = append(m.observers, observer)
}

// Dictionaries возвращает редактируемые словари
func (m *Model) Dictionaries() []*dictionary.Dictionary {
	return m.dicts
}

// Len возвращает количество строк рабочего набора
func (m *Model) Len() int {
	return len(m.rows)
}

// Total возвращает общее количество записей в редактируемых словарях
func (m *Model) Total() int {
	total := 0
	m.withLock(func() {
		for _, d := range m.dicts {
			total += d.Len()
		}
	})
	return total
}

// Row возвращает запись строки
func (m *Model) Row(i int) (models.Entry, error) {
	if i < 0 || i >= len(m.rows) {
		return models.Entry{}, fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}
	return m.rows[i].entry.Clone(), nil
}

// Rows возвращает копию рабочего набора в текущем порядке
func (m *Model) Rows() []models.Entry {
	entries := make([]models.Entry, len(m.rows))
	for i, r := range m.rows {
		entries[i] = r.entry.Clone()
	}
	return entries
}

// Value возвращает отображаемое значение ячейки
func (m *Model) Value(i int, col Column) (string, error) {
	if i < 0 || i >= len(m.rows) {
		return "", fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}
	if !col.Valid() {
		return "", fmt.Errorf("invalid column %d", int(col))
	}
	return columns[col].value(m.rows[i]), nil
}

// Editable сообщает, можно ли править колонку
func (m *Model) Editable(col Column) bool {
	return col.Editable()
}

// Filter возвращает текущий фильтр
func (m *Model) Filter() steno.Filter {
	return m.filter
}

// SetFilter перестраивает рабочий набор с новым фильтром
func (m *Model) SetFilter(filter steno.Filter) {
	m.filter = filter
	m.rebuild()
	m.notify(func(o Observer) { o.Reset() })
}

// SortOrder возвращает текущую колонку и направление сортировки
func (m *Model) SortOrder() (Column, bool) {
	return m.sortColumn, m.descending
}

// Sort выполняет устойчивую сортировку рабочего набора
func (m *Model) Sort(column Column, descending bool) error {
	if !column.Valid() {
		return fmt.Errorf("invalid sort column %d", int(column))
	}
	m.sortColumn = column
	m.descending = descending
	m.sort()
	m.notify(func(o Observer) { o.LayoutChanged() })
	return nil
}

// HasUndo сообщает, есть ли операции для отмены
func (m *Model) HasUndo() bool {
	return len(m.log) > 0
}

// Modified возвращает пути словарей, измененных за сессию,
// в порядке первого изменения (включая изменения, внесенные отменой).
func (m *Model) Modified() []string {
	return slices.Clone(m.modified)
}

// rebuild заполняет рабочий набор из словарей с учетом фильтра
func (m *Model) rebuild() {
	var rows []*row
	m.withLock(func() {
		for _, d := range m.dicts {
			for _, e := range d.Entries() {
				if m.filter.IsEmpty() || m.filter.Match(e.Strokes, e.Translation) {
					rows = append(rows, newRow(e))
				}
			}
		}
	})
	m.rows = rows
	m.sort()
	m.logger.Debug("working set rebuilt", "rows", len(m.rows))
}

func (m *Model) sort() {
	compare := columns[m.sortColumn].compare
	if m.descending {
		asc := compare
		compare = func(a, b *row) int { return asc(b, a) }
	}
	slices.SortStableFunc(m.rows, compare)
}

// withLock выполняет fn под блокировкой движка с гарантированным освобождением
func (m *Model) withLock(fn func()) {
	if m.locker == nil {
		fn()
		return
	}
	m.locker.Lock()
	defer m.locker.Unlock()
	fn()
}

func (m *Model) notify(fn func(o Observer)) {
	for _, o := range m.observers {
		fn(o)
	}
}

func (m *Model) markModified(paths ...string) {
	for _, path := range paths {
		if _, ok := m.modifiedSet[path]; ok {
			continue
		}
		m.modifiedSet[path] = struct{}{}
		m.modified = append(m.modified, path)
	}
}

// resolveDictionary ищет словарь по точному пути, затем по раскрытому
func (m *Model) resolveDictionary(path string) (*dictionary.Dictionary, bool) {
	if d, ok := m.byPath[path]; ok {
		return d, true
	}
	expanded, err := dictionary.ExpandPath(path)
	if err != nil {
		return nil, false
	}
	d, ok := m.byPath[expanded]
	return d, ok
}
