package builder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stenodict/internal/dictionary"
	"github.com/iudanet/stenodict/internal/engine"
	"github.com/iudanet/stenodict/internal/models"
	"github.com/iudanet/stenodict/internal/steno"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	user := dictionary.New("user.json")
	main := dictionary.FromEntries("main.json", []models.Entry{
		models.NewEntry("THE", "the", ""),
		models.NewEntry("KAT", "Cat", ""),
	})
	return engine.New(dictionary.NewCollection([]*dictionary.Dictionary{user, main}), nil)
}

func TestExtractWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain words and punctuation",
			text: "Hello, world. It's a well-known fact!",
			want: []string{"Hello", "world", "It's", "a", "well-known", "fact"},
		},
		{
			name: "numbers skipped, mixed kept",
			text: "free2play 4life 1234 [2] 2",
			want: []string{"free2play", "4life"},
		},
		{
			name: "commands",
			text: "{#Return}{^} then {PLOVER:TOGGLE}",
			want: []string{"{#Return}{^}", "then", "{PLOVER:TOGGLE}"},
		},
		{
			name: "unicode letters",
			text: "café naïve",
			want: []string{"café", "naïve"},
		},
		{
			name: "empty",
			text: "  123 ... ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractWords(tt.text))
		})
	}
}

func TestExtractText(t *testing.T) {
	html := `<html><head><title>Steno</title></head><body>
<article><h1>Steno</h1>
<p>Stenography lets a writer produce whole words with a single chord of keys pressed together on the keyboard.</p>
<p>Dictionaries map those chords to translations, and a good dictionary grows with every new word the writer meets.</p>
<p>Building a dictionary from real text is the quickest way to find the words that still need a chord.</p>
</article></body></html>`

	text, err := ExtractText(strings.NewReader(html), "http://localhost/article")
	require.NoError(t, err)
	assert.Contains(t, text, "Stenography lets a writer")

	_, err = ExtractText(strings.NewReader(html), "://bad url")
	assert.Error(t, err)
}

func TestNewSession_Orders(t *testing.T) {
	eng := newTestEngine(t)
	words := ExtractWords("the dog bit the cat and the Dog ran, dog! Bird and apple")

	s, err := NewSession(eng, words, false, nil)
	require.NoError(t, err)

	// "the" и "cat" уже определены (без учета регистра)
	require.NoError(t, s.SetOrder(OrderAppearance))
	assert.Equal(t, []string{"dog", "bit", "and", "Dog", "ran", "Bird", "apple"}, s.Words())

	require.NoError(t, s.SetOrder(OrderFrequency))
	assert.Equal(t, []string{"dog", "and", "bit", "Dog", "ran", "Bird", "apple"}, s.Words())

	require.NoError(t, s.SetOrder(OrderAlphabetical))
	assert.Equal(t, []string{"and", "apple", "Bird", "bit", "Dog", "dog", "ran"}, s.Words())

	assert.Error(t, s.SetOrder(Order(7)))
}

func TestNewSession_IncludeDefined(t *testing.T) {
	eng := newTestEngine(t)

	s, err := NewSession(eng, []string{"the", "cat"}, true, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	_, err = NewSession(eng, []string{"the", "CAT"}, false, nil)
	assert.ErrorIs(t, err, ErrNoWords)

	_, err = NewSession(eng, nil, true, nil)
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestSession_Navigation(t *testing.T) {
	s, err := NewSession(newTestEngine(t), []string{"one", "two", "three"}, true, nil)
	require.NoError(t, err)
	require.NoError(t, s.SetOrder(OrderAppearance))

	assert.Equal(t, "one", s.Current())
	assert.Equal(t, "Defining word 1 of 3: one", s.Progress())

	assert.False(t, s.Previous())
	assert.Equal(t, 0, s.Index())

	assert.True(t, s.Next())
	assert.True(t, s.Next())
	assert.False(t, s.Next())
	assert.Equal(t, "Defining word 3 of 3: three", s.Progress())

	assert.False(t, s.SetIndex(3))
	assert.True(t, s.SetIndex(1))
	assert.Equal(t, "two", s.Current())

	require.NoError(t, s.SetOrder(OrderAlphabetical))
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, "one", s.Current())
}

func TestSession_AddUndo(t *testing.T) {
	eng := newTestEngine(t)
	s, err := NewSession(eng, []string{"dog", "bird", "bird"}, false, nil)
	require.NoError(t, err)
	require.NoError(t, s.SetOrder(OrderAppearance))

	add, err := s.AddAndNext("tkog", "dog", "")
	require.NoError(t, err)
	assert.Equal(t, "user.json", add.Dictionary)
	assert.Nil(t, add.Old)
	assert.Equal(t, "dog", add.Word)
	assert.Equal(t, "bird", s.Current())

	got, ok := eng.Lookup(models.ParseStrokes("TKOG"))
	require.True(t, ok)
	assert.Equal(t, "dog", got)

	// Перезапись существующего перевода в main.json
	add, err = s.Add("KAT", "bird", "main.json")
	require.NoError(t, err)
	require.NotNil(t, add.Old)
	assert.Equal(t, "Cat", *add.Old)
	assert.True(t, s.HasUndo())
	assert.Equal(t, []string{"user.json", "main.json"}, s.Modified())

	_, err = s.Add("QQ", "x", "")
	assert.ErrorIs(t, err, steno.ErrInvalidStroke)
	_, err = s.Add("", "x", "")
	assert.ErrorIs(t, err, steno.ErrInvalidStroke)
	_, err = s.Add("KAT", "x", "missing.json")
	assert.Error(t, err)

	undone, err := s.Undo()
	require.NoError(t, err)
	assert.Equal(t, "bird", undone.Word)
	got, _ = eng.Lookup(models.ParseStrokes("KAT"))
	assert.Equal(t, "Cat", got)

	// Отмена возвращает к слову добавления
	undone, err = s.Undo()
	require.NoError(t, err)
	assert.Equal(t, "dog", s.Current())
	_, ok = eng.Lookup(models.ParseStrokes("TKOG"))
	assert.False(t, ok)
	assert.Equal(t, "dog", undone.Word)

	assert.False(t, s.HasUndo())
	_, err = s.Undo()
	assert.ErrorIs(t, err, ErrNoUndo)
}

func TestParseOrder(t *testing.T) {
	for _, o := range []Order{OrderFrequency, OrderAppearance, OrderAlphabetical} {
		got, err := ParseOrder(strings.ToUpper(o.String()))
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	_, err := ParseOrder("random")
	assert.Error(t, err)
}
