package config

import (
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Prompt.Text != "> " {
		t.Errorf("unexpected prompt text %q", cfg.Prompt.Text)
	}
	if cfg.Prompt.MaxVisible != 8 {
		t.Errorf("unexpected maxVisible %d", cfg.Prompt.MaxVisible)
	}
	if cfg.History.Limit != 500 {
		t.Errorf("unexpected history limit %d", cfg.History.Limit)
	}
}

func TestMergeOverridesNonZero(t *testing.T) {
	user := &Config{}
	user.Prompt.Text = ">> "
	user.History.Limit = 50

	merged := merge(Default(), user)
	if merged.Prompt.Text != ">> " {
		t.Errorf("expected override, got %q", merged.Prompt.Text)
	}
	if merged.History.Limit != 50 {
		t.Errorf("expected override, got %d", merged.History.Limit)
	}
	if merged.Prompt.MaxVisible != 8 {
		t.Errorf("default should survive, got %d", merged.Prompt.MaxVisible)
	}
}

// An explicit color = false must survive the merge even though false is the
// bool zero value.
func TestMergeColorFalse(t *testing.T) {
	var user Config
	if _, err := toml.Decode("[appearance]\ncolor = false\n", &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	merged := merge(Default(), &user)
	if merged.Appearance.ColorEnabled() {
		t.Error("color = false in user config should disable color")
	}
}

func TestColorEnabledByDefault(t *testing.T) {
	if !Default().Appearance.ColorEnabled() {
		t.Error("color should default to enabled")
	}
	merged := merge(Default(), &Config{})
	if !merged.Appearance.ColorEnabled() {
		t.Error("unset color should keep the default")
	}
}

// The shipped sample config must stay parseable.
func TestDefaultTOMLParses(t *testing.T) {
	var cfg Config
	if _, err := toml.Decode(DefaultTOML(), &cfg); err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
	if cfg.Prompt.MaxVisible != 8 {
		t.Errorf("sample config lost maxVisible, got %d", cfg.Prompt.MaxVisible)
	}
}
