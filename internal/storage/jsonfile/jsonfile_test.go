package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stenodict/internal/models"
	"github.com/iudanet/stenodict/internal/storage"
)

func TestLoad_PreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.json")
	content := `{
"TKOG": "dog",
"KAT": "cat",
"PHOPB/TKPWAOS": "mongoose"
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	entries, err := New().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []models.Entry{
		models.NewEntry("TKOG", "dog", path),
		models.NewEntry("KAT", "cat", path),
		models.NewEntry("PHOPB/TKPWAOS", "mongoose", path),
	}, entries)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "user.json")
	s := New()

	entries := []models.Entry{
		models.NewEntry("KAT", "cat", path),
		models.NewEntry("A*PL", "&", path),
		models.NewEntry("TPHRAOEUPB", "line\nbreak <b>", path),
	}

	require.NoError(t, s.Save(ctx, path, entries))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n\"KAT\": \"cat\",\n\"A*PL\": \"&\",\n\"TPHRAOEUPB\": \"line\\nbreak <b>\"\n}\n", string(raw))

	loaded, err := s.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)

	// Временные файлы не остаются в каталоге
	files, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestSave_Empty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "empty.json")

	require.NoError(t, New().Save(ctx, path, nil))

	loaded, err := New().Load(ctx, path)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := New().Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, storage.ErrDictionaryNotFound)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "array", content: `["KAT"]`},
		{name: "number value", content: `{"KAT": 1}`},
		{name: "truncated", content: `{"KAT": "cat"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := New().Load(context.Background(), path)
			assert.ErrorIs(t, err, storage.ErrInvalidDictionary)
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.json")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	entries, err := New().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
