// Package config holds cryptosave configuration and the static tier table.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all cryptosave configuration.
type Config struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Simulation SimulationConfig `toml:"simulation"`
	Log        LogConfig        `toml:"log"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// SimulationConfig holds TUI simulation preferences.
type SimulationConfig struct {
	AutoAdvance    bool `toml:"auto_advance"`
	AutoAdvanceSec int  `toml:"auto_advance_sec"`
}

// LogConfig controls the log file and verbosity.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

const (
	// MinAutoAdvanceSec is the shortest allowed auto-advance interval.
	MinAutoAdvanceSec     = 1
	defaultAutoAdvanceSec = 5
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Simulation: SimulationConfig{
			AutoAdvanceSec: defaultAutoAdvanceSec,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cryptosave")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cryptosave")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// StateDir returns the XDG state directory used for the log file.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "cryptosave")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "cryptosave")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied last.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	applyEnv(&cfg)
	cfg.Simulation.AutoAdvanceSec = EffectiveAutoAdvanceSec(cfg.Simulation.AutoAdvanceSec)
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// EffectiveAutoAdvanceSec clamps an interval to the allowed range,
// substituting the default for unset values.
func EffectiveAutoAdvanceSec(sec int) int {
	if sec <= 0 {
		return defaultAutoAdvanceSec
	}
	if sec < MinAutoAdvanceSec {
		return MinAutoAdvanceSec
	}
	return sec
}

// LogFile returns the configured log file, or the default under StateDir.
func LogFile(cfg Config) string {
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	return filepath.Join(StateDir(), "cryptosave.log")
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CRYPTOSAVE_THEME"); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv("CRYPTOSAVE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
