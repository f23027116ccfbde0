// Package logger provides structured logging for the console. A fullscreen
// terminal app cannot log to stdout/stderr, so logs go to a file, or are
// discarded when no log file is configured.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New opens a file-backed slog logger. The returned closer flushes and
// closes the log file.
func New(path string) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewJSONHandler(f, nil)), f, nil
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
