// Package config provides configuration loading for slashline using TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Prompt settings.
type Prompt struct {
	Text       string `toml:"text"`       // prompt marker shown before input
	MaxVisible int    `toml:"maxVisible"` // picker viewport height
}

// Appearance settings.
type Appearance struct {
	Theme string `toml:"theme"` // built-in theme name
	Color *bool  `toml:"color"` // nil means enabled; false forces plain output
}

// ColorEnabled reports whether colored output is on. A pointer distinguishes
// an explicit color = false from the setting being absent, which the usual
// non-zero merge rule cannot do for a bool.
func (a Appearance) ColorEnabled() bool {
	return a.Color == nil || *a.Color
}

// History settings.
type History struct {
	Path  string `toml:"path"`  // database path, empty = default location
	Limit int    `toml:"limit"` // entries loaded at startup
}

// Config is the full application configuration.
type Config struct {
	Prompt     Prompt     `toml:"prompt"`
	Appearance Appearance `toml:"appearance"`
	History    History    `toml:"history"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Prompt:     Prompt{Text: "> ", MaxVisible: 8},
		Appearance: Appearance{Theme: "default-dark"},
		History:    History{Limit: 500},
	}
}

// Path returns the path to the user's config file.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "slashline", "config.toml"), nil
}

// Load reads the user config, layering it on top of defaults. A missing file
// is not an error: defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var user Config
	if _, err := toml.DecodeFile(path, &user); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	return merge(cfg, &user), nil
}

// merge layers user config on top of defaults. Only non-zero values from the
// user config override.
func merge(defaults, user *Config) *Config {
	result := *defaults

	if user.Prompt.Text != "" {
		result.Prompt.Text = user.Prompt.Text
	}
	if user.Prompt.MaxVisible != 0 {
		result.Prompt.MaxVisible = user.Prompt.MaxVisible
	}
	if user.Appearance.Theme != "" {
		result.Appearance.Theme = user.Appearance.Theme
	}
	if user.Appearance.Color != nil {
		result.Appearance.Color = user.Appearance.Color
	}
	if user.History.Path != "" {
		result.History.Path = user.History.Path
	}
	if user.History.Limit != 0 {
		result.History.Limit = user.History.Limit
	}
	return &result
}

// DefaultTOML returns a commented sample config for first-run setup.
func DefaultTOML() string {
	return `# slashline configuration

[prompt]
text = "> "
maxVisible = 8

[appearance]
theme = "default-dark"
color = true

[history]
# path = "/custom/history.db"
limit = 500
`
}
