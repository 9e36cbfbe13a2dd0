// Package logging provides a shared, structured logger for the cli-workspace shell.
//
// It wraps the standard library's [log/slog] package and provides a single
// initialization point so all components share the same output handler and
// log level. The log level can be controlled at startup via the
// CLI_WORKSPACE_LOG_LEVEL environment variable (debug, info, warn, error).
// If unset, the default level is INFO.
//
// Usage:
//
//	log := logging.New("preview")      // creates a logger tagged with component="preview"
//	log.Info("fetched source", "source", src)
//	log.Error("fetch failed", "error", err)
//
// Output goes to stderr unless CLI_WORKSPACE_LOG_FILE names a file. The alt
// screen hides stderr while the UI runs, so the file is the useful sink for
// debugging drags and renders.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	// initLogger ensures the base logger is created exactly once across all
	// goroutines, even if multiple components call New concurrently.
	initLogger sync.Once

	// baseLogger is the singleton logger instance shared by all components.
	// Component-specific loggers are derived from this via With().
	baseLogger *slog.Logger

	// logFile is the open sink when CLI_WORKSPACE_LOG_FILE is set.
	logFile *os.File
)

// New returns a structured logger scoped to the given component name.
//
// If component is empty, the base logger is returned without any additional
// attributes. The base logger is lazily initialized on the first call.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = slog.New(newHandler(openSink(os.Getenv("CLI_WORKSPACE_LOG_FILE")), os.Getenv("CLI_WORKSPACE_LOG_LEVEL")))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// Close flushes and closes the log file sink, if one was opened.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func newHandler(w io.Writer, level string) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
}

// openSink falls back to stderr when path is empty or cannot be opened.
func openSink(path string) io.Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file %q: %v\n", path, err)
		return os.Stderr
	}
	logFile = f
	return f
}

// parseLevel converts a human-readable log level string to a [slog.Level].
//
// Recognized values (case-insensitive, whitespace-trimmed):
//   - "debug"           → slog.LevelDebug
//   - "warn", "warning" → slog.LevelWarn
//   - "error"           → slog.LevelError
//   - anything else     → slog.LevelInfo (the default)
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
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
