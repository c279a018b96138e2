package config

// Config is the root application configuration.
type Config struct {
	Dictionaries []string      `yaml:"dictionaries" env:"STENODICT_DICTIONARIES" env-separator:","`
	StatePath    string        `yaml:"state_path"   env:"STENODICT_STATE_PATH"   env-default:"~/.config/stenodict/state.db"`
	Sort         SortConfig    `yaml:"sort"`
	Builder      BuilderConfig `yaml:"builder"`
	Log          LogConfig     `yaml:"log"`
}

// SortConfig holds the default order of the editor view.
type SortConfig struct {
	Column     string `yaml:"column"     env:"STENODICT_SORT_COLUMN"     env-default:"strokes"`
	Descending bool   `yaml:"descending" env:"STENODICT_SORT_DESCENDING" env-default:"false"`
}

// BuilderConfig holds dictionary builder settings.
type BuilderConfig struct {
	Order          string `yaml:"order"           env:"STENODICT_BUILDER_ORDER"           env-default:"frequency"`
	IncludeDefined bool   `yaml:"include_defined" env:"STENODICT_BUILDER_INCLUDE_DEFINED" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"STENODICT_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"STENODICT_LOG_FORMAT" env-default:"text"`
}
