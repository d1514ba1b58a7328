// Package logging configures structured diagnostics for the converters.
//
// Progress messages go through log/slog to stderr so that stdout carries
// only the human report. Every pipeline run gets its own logger tagged with
// a run id.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ForRun returns the default logger tagged with the command name and a
// fresh run id.
func ForRun(command string) *slog.Logger {
	return WithFields("command", command, "run_id", uuid.NewString())
}

// WithFields returns the default logger with additional structured fields.
func WithFields(args ...any) *slog.Logger {
	return slog.Default().With(args...)
}
