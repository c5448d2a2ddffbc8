package observability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/reoring/skemawire/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARNING": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v want %v", in, got, want)
		}
	}
}

func TestSetupLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.log")
	logger, closer, err := SetupLogger(config.LogConfig{
		Level:   "warn",
		Format:  "json",
		Outputs: []string{path},
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("format is not registered")
	_ = logger.Sync()
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	s := string(b)
	if strings.Contains(s, "dropped") {
		t.Fatalf("info should be filtered at warn level: %s", s)
	}
	if !strings.Contains(s, `"msg":"format is not registered"`) {
		t.Fatalf("missing warn entry: %s", s)
	}
}

func TestSetupLogger_Rotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rot.log")
	logger, closer, err := SetupLogger(config.LogConfig{
		Level:    "info",
		Outputs:  []string{"ignored.log"},
		Rotation: config.RotationConfig{Enable: true, Filename: path},
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	logger.Info("rotated entry")
	_ = logger.Sync()
	_ = closer.Close()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "rotated entry") {
		t.Fatalf("missing entry: %s", b)
	}
}
