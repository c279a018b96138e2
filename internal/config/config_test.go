package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
dictionaries:
  - ~/dicts/user.json
  - ~/dicts/main.json
state_path: /tmp/stenodict-state.db
sort:
  column: translation
  descending: true
builder:
  order: alphabetical
  include_defined: true
log:
  level: debug
  format: json
`

func TestLoad_FromYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"~/dicts/user.json", "~/dicts/main.json"}, cfg.Dictionaries)
	assert.Equal(t, "/tmp/stenodict-state.db", cfg.StatePath)
	assert.Equal(t, "translation", cfg.Sort.Column)
	assert.True(t, cfg.Sort.Descending)
	assert.Equal(t, "alphabetical", cfg.Builder.Order)
	assert.True(t, cfg.Builder.IncludeDefined)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	path := writeYAML(t, t.TempDir(), "dictionaries: [main.json]\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "~/.config/stenodict/state.db", cfg.StatePath)
	assert.Equal(t, "strokes", cfg.Sort.Column)
	assert.False(t, cfg.Sort.Descending)
	assert.Equal(t, "frequency", cfg.Builder.Order)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("STENODICT_SORT_COLUMN", "dictionary")
	t.Setenv("STENODICT_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dictionary", cfg.Sort.Column)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_EnvConfigPath(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/stenodict-state.db", cfg.StatePath)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_NoFileUsesEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfigPath, "")
	t.Setenv("STENODICT_DICTIONARIES", "a.json,b.json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json"}, cfg.Dictionaries)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), "dictionaries: [unclosed\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Dictionaries: []string{"main.json"},
			StatePath:    "state.db",
			Sort:         SortConfig{Column: "strokes"},
			Builder:      BuilderConfig{Order: "frequency"},
			Log:          LogConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "no dictionaries", mutate: func(c *Config) { c.Dictionaries = nil }, wantErr: "dictionaries"},
		{name: "empty dictionary path", mutate: func(c *Config) { c.Dictionaries = []string{" "} }, wantErr: "dictionaries[0]"},
		{name: "empty state path", mutate: func(c *Config) { c.StatePath = "" }, wantErr: "state_path"},
		{name: "unknown sort column", mutate: func(c *Config) { c.Sort.Column = "color" }, wantErr: "sort.column"},
		{name: "sort column case-insensitive", mutate: func(c *Config) { c.Sort.Column = "Words_Count" }},
		{name: "unknown builder order", mutate: func(c *Config) { c.Builder.Order = "random" }, wantErr: "builder.order"},
		{name: "unknown log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
