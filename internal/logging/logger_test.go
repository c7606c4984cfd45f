package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected slog.Level
	}{
		{"debug level", "DEBUG", slog.LevelDebug},
		{"info level", "INFO", slog.LevelInfo},
		{"warn level", "WARN", slog.LevelWarn},
		{"warning level", "WARNING", slog.LevelWarn},
		{"error level", "ERROR", slog.LevelError},
		{"lowercase debug", "debug", slog.LevelDebug},
		{"invalid level", "INVALID", slog.LevelWarn},
		{"empty value", "", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvLevel, tt.envValue)
			if level := LevelFromEnv(); level != tt.expected {
				t.Errorf("LevelFromEnv() = %v, want %v", level, tt.expected)
			}
		})
	}
}

func TestVerboseOverridesEnv(t *testing.T) {
	t.Setenv(EnvLevel, "ERROR")

	var buf bytes.Buffer
	logger := NewWithWriter(&buf, true)
	logger.Debug("assembling system", "rows", 10)

	out := buf.String()
	if !strings.Contains(out, "assembling system") || !strings.Contains(out, "rows=10") {
		t.Errorf("debug message missing from output: %q", out)
	}
	if strings.Contains(out, "time=") {
		t.Errorf("timestamp should be dropped: %q", out)
	}
}

func TestLevelFiltersMessages(t *testing.T) {
	t.Setenv(EnvLevel, "")

	var buf bytes.Buffer
	logger := NewWithWriter(&buf, false)
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at default level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}
