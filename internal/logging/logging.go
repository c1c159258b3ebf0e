// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/cryptosave/internal/config"
)

// Setup points the standard logrus logger at w with the configured level.
// An unknown level falls back to info.
func Setup(cfg config.Config, w io.Writer) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
		DisableColors: w != os.Stderr,
	})

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// SetupFile sends logs to the configured log file. The TUI owns the
// terminal, so interactive runs must never write to stdout or stderr.
// The returned func closes the file.
func SetupFile(cfg config.Config) (func() error, error) {
	path := config.LogFile(cfg)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	Setup(cfg, f)
	return f.Close, nil
}
