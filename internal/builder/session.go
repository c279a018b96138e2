// Package builder реализует сессию построения словаря по тексту:
// списки слов в трех порядках и добавление переводов с отменой.
package builder

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/iudanet/stenodict/internal/engine"
	"github.com/iudanet/stenodict/internal/models"
	"github.com/iudanet/stenodict/internal/steno"
)

var (
	// ErrNoWords в тексте нет слов для определения
	ErrNoWords = errors.New("no words found")
	// ErrNoUndo нет добавлений для отмены
	ErrNoUndo = errors.New("nothing to undo")
)

// Order порядок списка слов
type Order int

const (
	OrderFrequency Order = iota
	OrderAppearance
	OrderAlphabetical
)

var orderNames = [...]string{
	OrderFrequency:    "frequency",
	OrderAppearance:   "appearance",
	OrderAlphabetical: "alphabetical",
}

// String возвращает имя порядка
func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("order(%d)", int(o))
	}
	return orderNames[o]
}

// ParseOrder разбирает имя порядка
func ParseOrder(name string) (Order, error) {
	for i, n := range orderNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("unknown word order %q", name)
}

// Addition одно добавление перевода, достаточное для его отмены
type Addition struct {
	Dictionary string
	Strokes    models.Strokes
	Old        *string // перевод до добавления; nil - ключа не было
	New        string
	Word       string // слово сессии, для которого добавлен перевод
}

// Session сессия построения словаря
type Session struct {
	engine  *engine.Engine
	lists   [len(orderNames)][]string
	order   Order
	current int
	ops     []Addition
	touched []string
	logger  *slog.Logger
}

// NewSession строит списки слов. Без includeDefined слова, уже имеющие
// перевод (без учета регистра), пропускаются.
func NewSession(eng *engine.Engine, words []string, includeDefined bool, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// Подсчет с сохранением порядка первого появления
	var appearance []string
	counts := make(map[string]int)
	for _, w := range words {
		if _, ok := counts[w]; !ok {
			appearance = append(appearance, w)
		}
		counts[w]++
	}

	if !includeDefined {
		appearance = slices.DeleteFunc(appearance, func(w string) bool {
			return len(eng.CaseReverseLookup(strings.ToLower(w))) > 0
		})
	}

	if len(appearance) == 0 {
		return nil, ErrNoWords
	}

	frequency := slices.Clone(appearance)
	// Устойчивая сортировка: равные частоты в порядке появления
	slices.SortStableFunc(frequency, func(a, b string) int {
		return counts[b] - counts[a]
	})

	alphabetical := slices.Clone(appearance)
	slices.SortFunc(alphabetical, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	s := &Session{
		engine: eng,
		logger: logger,
	}
	s.lists[OrderFrequency] = frequency
	s.lists[OrderAppearance] = appearance
	s.lists[OrderAlphabetical] = alphabetical

	logger.Debug("builder session started", "words", len(appearance), "total", len(words))
	return s, nil
}

// SetOrder переключает порядок списка и возвращается к первому слову
func (s *Session) SetOrder(order Order) error {
	if order < 0 || int(order) >= len(s.lists) {
		return fmt.Errorf("unknown word order %d", int(order))
	}
	s.order = order
	s.current = 0
	return nil
}

// Order возвращает текущий порядок
func (s *Session) Order() Order {
	return s.order
}

// Words возвращает слова в текущем порядке
func (s *Session) Words() []string {
	return slices.Clone(s.lists[s.order])
}

// Len возвращает количество слов
func (s *Session) Len() int {
	return len(s.lists[s.order])
}

// Index возвращает позицию текущего слова
func (s *Session) Index() int {
	return s.current
}

// Current возвращает текущее слово
func (s *Session) Current() string {
	return s.lists[s.order][s.current]
}

// SetIndex переходит к слову; вне диапазона ничего не меняет
func (s *Session) SetIndex(i int) bool {
	if i < 0 || i >= s.Len() {
		return false
	}
	s.current = i
	return true
}

// Next переходит к следующему слову
func (s *Session) Next() bool {
	return s.SetIndex(s.current + 1)
}

// Previous переходит к предыдущему слову
func (s *Session) Previous() bool {
	return s.SetIndex(s.current - 1)
}

// Progress возвращает строку состояния сессии
func (s *Session) Progress() string {
	return fmt.Sprintf("Defining word %d of %d: %s", s.current+1, s.Len(), s.Current())
}

// Add записывает перевод для ключа в словарь (пустой путь - первый словарь)
// и запоминает изменение для отмены.
func (s *Session) Add(strokes, translation, dictPath string) (Addition, error) {
	key, err := steno.Normalize(strokes)
	if err != nil {
		return Addition{}, fmt.Errorf("failed to parse strokes: %w", err)
	}
	if key.Len() == 0 {
		return Addition{}, fmt.Errorf("%w: empty strokes", steno.ErrInvalidStroke)
	}

	path, old, err := s.engine.Get(key, dictPath)
	if err != nil {
		return Addition{}, err
	}

	if err := s.engine.AddTranslation(key, &translation, path); err != nil {
		return Addition{}, fmt.Errorf("failed to add translation: %w", err)
	}

	add := Addition{
		Dictionary: path,
		Strokes:    key,
		Old:        old,
		New:        translation,
		Word:       s.Current(),
	}
	s.ops = append(s.ops, add)
	s.touch(path)

	s.logger.Info("translation added", "strokes", key.String(), "translation", translation, "dictionary", path)
	return add, nil
}

// AddAndNext добавляет перевод и переходит к следующему слову
func (s *Session) AddAndNext(strokes, translation, dictPath string) (Addition, error) {
	add, err := s.Add(strokes, translation, dictPath)
	if err != nil {
		return Addition{}, err
	}
	s.Next()
	return add, nil
}

// HasUndo сообщает, есть ли добавления для отмены
func (s *Session) HasUndo() bool {
	return len(s.ops) > 0
}

// Undo отменяет последнее добавление и возвращается к его слову
func (s *Session) Undo() (Addition, error) {
	if len(s.ops) == 0 {
		return Addition{}, ErrNoUndo
	}

	add := s.ops[len(s.ops)-1]
	s.ops = s.ops[:len(s.ops)-1]

	if err := s.engine.AddTranslation(add.Strokes, add.Old, add.Dictionary); err != nil {
		return Addition{}, fmt.Errorf("failed to restore translation: %w", err)
	}

	s.touch(add.Dictionary)

	if i := slices.Index(s.lists[s.order], add.Word); i >= 0 {
		s.current = i
	}

	s.logger.Info("translation addition undone", "strokes", add.Strokes.String(), "dictionary", add.Dictionary)
	return add, nil
}

// Modified возвращает пути словарей, измененных за сессию (включая отмены)
func (s *Session) Modified() []string {
	return slices.Clone(s.touched)
}

func (s *Session) touch(path string) {
	if !slices.Contains(s.touched, path) {
		s.touched = append(s.touched, path)
	}
}
