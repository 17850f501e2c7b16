package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nerrad567/gray-logic-assist/internal/infrastructure/config"
)

func TestNew_NoFile(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "info", Format: "text"}, "1.0.0")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNew_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assist.log")

	logger, err := New(config.LoggingConfig{Level: "info", Format: "json", File: path}, "1.0.0")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("bridge started", "key", "value")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "bridge started") {
		t.Errorf("log file missing entry, got: %s", data)
	}
}

func TestNew_FileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assist.log")

	for i := 0; i < 2; i++ {
		logger, err := New(config.LoggingConfig{Level: "info", Format: "json", File: path}, "1.0.0")
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		logger.Info("run", "n", i)
		_ = logger.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if got := strings.Count(string(data), `"msg":"run"`); got != 2 {
		t.Errorf("log file has %d entries, want 2 (must append, not truncate)", got)
	}
}

func TestNewWithWriter_DefaultFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, config.LoggingConfig{Level: "info", Format: "json"}, "2.1.0")

	logger.Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["service"] != "graylogic-assist" {
		t.Errorf("service field = %v, want graylogic-assist", entry["service"])
	}
	if entry["version"] != "2.1.0" {
		t.Errorf("version field = %v, want 2.1.0", entry["version"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug},
		{"info level", "info", slog.LevelInfo},
		{"warn level", "warn", slog.LevelWarn},
		{"warning level", "warning", slog.LevelWarn},
		{"error level", "error", slog.LevelError},
		{"unknown defaults to info", "unknown", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
		{"case insensitive", "DEBUG", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, config.LoggingConfig{Level: "info", Format: "json"}, "1.0.0")

	child := logger.With("component", "mcp")
	if child == logger {
		t.Error("expected child logger to be different from parent")
	}

	child.Info("request received")
	if !strings.Contains(buf.String(), `"component":"mcp"`) {
		t.Errorf("child logger output missing component field: %s", buf.String())
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on default logger = %v, want nil", err)
	}
}
