package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStrokes(t *testing.T) {
	assert.Equal(t, Strokes{}, ParseStrokes(""))
	assert.Equal(t, Strokes{"PHOPB", "TKPWAOS"}, ParseStrokes("PHOPB/TKPWAOS"))
	assert.Equal(t, "PHOPB/TKPWAOS", ParseStrokes("PHOPB/TKPWAOS").String())
}

func TestStrokes_Clone(t *testing.T) {
	var empty Strokes
	assert.Equal(t, Strokes{}, empty.Clone())

	s := Strokes{"KAT"}
	c := s.Clone()
	c[0] = "TKOG"
	assert.Equal(t, "KAT", s[0])
}

func TestEntry(t *testing.T) {
	e := NewEntry("KAT/TKOG", "catdog", "main.json")

	assert.Equal(t, "KAT/TKOG", e.Key())
	assert.True(t, e.HasKey())
	assert.False(t, e.IsBlank())
	assert.True(t, e.Equal(e.Clone()))
	assert.False(t, e.Equal(NewEntry("KAT/TKOG", "catdog", "user.json")))

	p := e.Ptr()
	p.Strokes[0] = "SAT"
	assert.Equal(t, "KAT", e.Strokes[0])

	blank := NewEntry("", "", "main.json")
	assert.True(t, blank.IsBlank())
	assert.False(t, blank.HasKey())
}

func TestOperation_Kinds(t *testing.T) {
	a := NewEntry("KAT", "cat", "main.json")
	b := NewEntry("KAT", "Cat", "user.json")

	tests := []struct {
		name   string
		op     Operation
		add    bool
		delete bool
		update bool
	}{
		{name: "add", op: Operation{New: &a}, add: true},
		{name: "delete", op: Operation{Old: &a}, delete: true},
		{name: "update", op: Operation{Old: &a, New: &b}, update: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.add, tt.op.IsAdd())
			assert.Equal(t, tt.delete, tt.op.IsDelete())
			assert.Equal(t, tt.update, tt.op.IsUpdate())
		})
	}
}

func TestOperationGroup_Dictionaries(t *testing.T) {
	a := NewEntry("KAT", "cat", "main.json")
	b := NewEntry("KAT", "Cat", "user.json")
	c := NewEntry("TKOG", "dog", "main.json")

	g := NewCompoundGroup([]Operation{
		{Old: &a, New: &b, Displaced: &b},
		{Old: &c},
	})
	assert.True(t, g.Compound)
	assert.Equal(t, []string{"main.json", "user.json"}, g.Dictionaries())

	single := NewOperationGroup(Operation{New: &a})
	assert.False(t, single.Compound)
	assert.NotEqual(t, g.ID, single.ID)
	assert.Len(t, single.Ops, 1)
}
