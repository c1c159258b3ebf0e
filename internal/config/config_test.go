package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CRYPTOSAVE_THEME", "")
	t.Setenv("CRYPTOSAVE_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if cfg.Simulation.AutoAdvanceSec != defaultAutoAdvanceSec {
		t.Errorf("auto_advance_sec = %d, want %d", cfg.Simulation.AutoAdvanceSec, defaultAutoAdvanceSec)
	}
	if Exists() {
		t.Error("Exists() = true with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CRYPTOSAVE_THEME", "")
	t.Setenv("CRYPTOSAVE_LOG_LEVEL", "")

	cfg := DefaultConfig()
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Simulation.AutoAdvance = true
	cfg.Simulation.AutoAdvanceSec = 2

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Appearance.Theme != "tokyo-night" || !got.Simulation.AutoAdvance || got.Simulation.AutoAdvanceSec != 2 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CRYPTOSAVE_THEME", "terminal")
	t.Setenv("CRYPTOSAVE_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Errorf("theme = %q, want terminal", cfg.Appearance.Theme)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, "cryptosave"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[appearance\ntheme = "), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Fatal("Load() succeeded on malformed TOML")
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("defaults not returned alongside error: theme = %q", cfg.Appearance.Theme)
	}
}

func TestEffectiveAutoAdvanceSec(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, defaultAutoAdvanceSec},
		{-3, defaultAutoAdvanceSec},
		{1, 1},
		{30, 30},
	}
	for _, tt := range tests {
		if got := EffectiveAutoAdvanceSec(tt.in); got != tt.want {
			t.Errorf("EffectiveAutoAdvanceSec(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
