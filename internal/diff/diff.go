// Package diff compares two snapshots of dictionary entries.
package diff

import (
	"strings"

	"github.com/iudanet/stenodict/internal/models"
)

// Pair связывает старую и новую запись с одинаковым ключом
type Pair struct {
	Old models.Entry `json:"old"`
	New models.Entry `json:"new"`
}

// Result результат сравнения двух снимков словаря
type Result struct {
	Removed  []models.Entry `json:"removed"`
	Modified []Pair         `json:"modified"`
	Added    []models.Entry `json:"added"`
}

// Empty возвращает true, если снимки не различаются
func (r Result) Empty() bool {
	return len(r.Removed) == 0 && len(r.Modified) == 0 && len(r.Added) == 0
}

// Compare вычисляет удаленные, измененные и добавленные записи.
//
// Идентичность записи определяется только ключом (Strokes); словарь
// записи не учитывается. Если в new несколько записей с ключом старой
// записи и другим переводом, в Modified попадает пара для каждой из них.
// Порядок результатов соответствует порядку исходных последовательностей.
func Compare(old, new []models.Entry) Result {
	result := Result{
		Removed:  []models.Entry{},
		Modified: []Pair{},
		Added:    []models.Entry{},
	}

	// Индекс новых записей по ключу, в порядке следования
	newByKey := make(map[string][]int, len(new))
	for i, e := range new {
		key := identity(e.Strokes)
		newByKey[key] = append(newByKey[key], i)
	}

	oldKeys := make(map[string]struct{}, len(old))
	for _, o := range old {
		key := identity(o.Strokes)
		oldKeys[key] = struct{}{}

		matches, found := newByKey[key]
		if !found {
			result.Removed = append(result.Removed, o)
			continue
		}
		for _, i := range matches {
			if new[i].Translation != o.Translation {
				result.Modified = append(result.Modified, Pair{Old: o, New: new[i]})
			}
		}
	}

	for _, n := range new {
		if _, found := oldKeys[identity(n.Strokes)]; !found {
			result.Added = append(result.Added, n)
		}
	}

	return result
}

// identity ключ сравнения по шагам; "\x00" не встречается в шаге,
// поэтому Strokes{"A/B"} и Strokes{"A", "B"} различаются
func identity(s models.Strokes) string {
	return strings.Join(s, "\x00")
}
