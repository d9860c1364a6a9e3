package logging

import (
	"io"
	"log/slog"
	"os"
)

// New builds the process logger. JSON to the given writer; debug toggles the
// level. The TUI passes a log file here so frames stay clean, the CLI passes
// stderr.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything. Used by tests and as the
// default when no sink is configured.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// FileSink opens (or creates) the log file used by the TUI.
func FileSink(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
