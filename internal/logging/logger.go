// Package logging provides the structured logger used by the gotruss commands.
// Output goes to stderr so it never interleaves with reports printed on stdout.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable holding the log level
const EnvLevel = "GOTRUSS_LOG_LEVEL"

// New creates a text logger on stderr. The level comes from GOTRUSS_LOG_LEVEL
// (DEBUG, INFO, WARN, ERROR; default WARN); verbose forces DEBUG.
func New(verbose bool) *slog.Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter is New with a caller-supplied destination
func NewWithWriter(w io.Writer, verbose bool) *slog.Logger {
	level := LevelFromEnv()
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: dropTime,
	})
	return slog.New(handler)
}

// LevelFromEnv parses GOTRUSS_LOG_LEVEL
func LevelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv(EnvLevel)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// dropTime removes the timestamp; CLI runs are short and logs are read inline
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
