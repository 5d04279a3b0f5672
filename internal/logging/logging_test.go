package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"json to stdout", Config{Level: "debug", Format: "json", Output: "stdout"}, false},
		{"development", Config{Level: "info", Format: "console", Output: "stderr", Development: true}, false},
		{"invalid level", Config{Level: "loud", Format: "console", Output: "stderr"}, true},
		{"unwritable file", Config{Level: "info", Format: "json", Output: filepath.Join(t.TempDir(), "missing", "x.log")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Initialize(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Initialize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
	InitializeDefault()
}

func TestInitialize_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tutormatch.log")

	if err := Initialize(Config{Level: "info", Format: "json", Output: path}); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	defer InitializeDefault()

	Info("tutors imported", zap.Int("count", 3))
	Debug("filtered out by level")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, `"msg":"tutors imported"`) || !strings.Contains(out, `"count":3`) {
		t.Errorf("log file missing entry: %s", out)
	}
	if strings.Contains(out, "filtered out by level") {
		t.Errorf("debug entry written at info level: %s", out)
	}
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer InitializeDefault()

	With(zap.String("tool", "search_tutors")).Warn("slow call")
	Sugar.Infow("store opened", "path", "/tmp/x.db")

	if logs.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", logs.Len())
	}
	if got := logs.FilterField(zap.String("tool", "search_tutors")).Len(); got != 1 {
		t.Errorf("expected tool field on 1 entry, got %d", got)
	}
}
