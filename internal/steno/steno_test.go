package steno

import (
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stenodict/internal/models"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.Strokes
	}{
		{name: "single stroke", input: "KAT", want: models.Strokes{"KAT"}},
		{name: "multi stroke", input: "PHOPB/TKPWAOS", want: models.Strokes{"PHOPB", "TKPWAOS"}},
		{name: "lower case and spaces", input: "  phopb tkpwaos ", want: models.Strokes{"PHOPB", "TKPWAOS"}},
		{name: "right bank only keeps hyphen", input: "-T", want: models.Strokes{"-T"}},
		{name: "redundant hyphen dropped", input: "KA-T", want: models.Strokes{"KAT"}},
		{name: "star", input: "*", want: models.Strokes{"*"}},
		{name: "numbers", input: "1-9", want: models.Strokes{"1-9"}},
		{name: "number key", input: "#S", want: models.Strokes{"#S"}},
		{name: "empty separators", input: "KAT//TKOG", want: models.Strokes{"KAT", "TKOG"}},
		{name: "empty input", input: "   ", want: models.Strokes{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	for _, input := range []string{"KAX", "TAK", "KAT-", "-", "S#", "E-T"} {
		t.Run(input, func(t *testing.T) {
			_, err := Normalize(input)
			assert.ErrorIs(t, err, ErrInvalidStroke)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(models.Strokes{"KAT", "TKOG"}))
	assert.ErrorIs(t, Validate(models.Strokes{}), ErrInvalidStroke)
	assert.ErrorIs(t, Validate(models.Strokes{"KAT", "QQ"}), ErrInvalidStroke)
}

func TestCompare_StenoOrder(t *testing.T) {
	keys := []models.Strokes{
		{"TKOG"},
		{"KAT"},
		{"SAT"},
		{"KAT", "TKOG"},
		{"-T"},
	}

	slices.SortStableFunc(keys, Compare)

	var got []string
	for _, k := range keys {
		got = append(got, k.String())
	}
	// S < T < K в порядке раскладки, правый банк после левого
	assert.Equal(t, []string{"SAT", "TKOG", "KAT", "KAT/TKOG", "-T"}, got)
}

func TestIndexes_InvalidStrokeIsDeterministic(t *testing.T) {
	first := Indexes(models.Strokes{"QQ"})
	second := Indexes(models.Strokes{"QQ"})
	assert.Equal(t, first, second)
	assert.Equal(t, 1, Compare(models.Strokes{"QQ"}, models.Strokes{"Z"}))
}

func TestFilter_Match(t *testing.T) {
	strokes := models.Strokes{"PHOPB", "TKPWAOS"}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "empty", filter: Filter{}, want: true},
		{name: "strokes substring", filter: Filter{Strokes: "B/TK"}, want: true},
		{name: "strokes mismatch", filter: Filter{Strokes: "KAT"}, want: false},
		{name: "translation insensitive", filter: Filter{Translation: "GOOSE"}, want: true},
		{name: "translation sensitive", filter: Filter{Translation: "GOOSE", CaseSensitive: true}, want: false},
		{name: "regex", filter: Filter{Regex: regexp.MustCompile(`^mon`)}, want: true},
		{
			name:   "regex overrides literal filters",
			filter: Filter{Regex: regexp.MustCompile(`goose$`), Strokes: "KAT", Translation: "zzz"},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(strokes, "mongoose"))
		})
	}
}

func TestEscapeTranslation(t *testing.T) {
	raw := "line1\nline2\t\\end"
	escaped := EscapeTranslation(raw)
	assert.Equal(t, `line1\nline2\t\\end`, escaped)
	assert.Equal(t, raw, UnescapeTranslation(escaped))
	assert.Equal(t, `keep \x`, UnescapeTranslation(`keep \x`))
	assert.Equal(t, `trailing\`, UnescapeTranslation(`trailing\`))
}
