package config

import (
	"fmt"
	"slices"
	"strings"
)

// Known sort columns and builder orders. Kept here to avoid importing
// editor and builder packages from configuration.
var (
	sortColumns   = []string{"strokes", "translation", "dictionary", "strokes_count", "words_count"}
	builderOrders = []string{"frequency", "appearance", "alphabetical"}
	logFormats    = []string{"text", "json"}
)

// Validate performs business-rule validation on the loaded configuration.
// Call it after command line overrides are applied.
func (c *Config) Validate() error {
	if len(c.Dictionaries) == 0 {
		return fmt.Errorf("dictionaries: at least one dictionary must be configured")
	}
	for i, d := range c.Dictionaries {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("dictionaries[%d]: empty path", i)
		}
	}

	if strings.TrimSpace(c.StatePath) == "" {
		return fmt.Errorf("state_path: must not be empty")
	}

	if !slices.Contains(sortColumns, strings.ToLower(c.Sort.Column)) {
		return fmt.Errorf("sort.column: unknown column %q (valid: %s)", c.Sort.Column, strings.Join(sortColumns, ", "))
	}

	if !slices.Contains(builderOrders, strings.ToLower(c.Builder.Order)) {
		return fmt.Errorf("builder.order: unknown order %q (valid: %s)", c.Builder.Order, strings.Join(builderOrders, ", "))
	}

	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format: unknown format %q (valid: %s)", c.Log.Format, strings.Join(logFormats, ", "))
	}

	return nil
}
