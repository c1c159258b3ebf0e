package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/cryptosave/internal/config"
)

func TestSetup_Level(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"nonsense", log.InfoLevel},
		{"", log.InfoLevel},
	}
	for _, tt := range tests {
		cfg := config.DefaultConfig()
		cfg.Log.Level = tt.level
		Setup(cfg, &bytes.Buffer{})
		if got := log.GetLevel(); got != tt.want {
			t.Errorf("level %q: got %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSetup_WritesFields(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	var buf bytes.Buffer
	Setup(config.DefaultConfig(), &buf)
	log.WithField("week", 3).Info("week advanced")

	out := buf.String()
	if !strings.Contains(out, "week advanced") || !strings.Contains(out, "week=3") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestSetupFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	cfg := config.DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "nested", "cryptosave.log")

	closeFn, err := SetupFile(cfg)
	if err != nil {
		t.Fatalf("SetupFile: %v", err)
	}
	log.Info("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing entry: %q", data)
	}
}
