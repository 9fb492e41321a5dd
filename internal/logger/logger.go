// SPDX-License-Identifier: MIT

// Package logger provides verbose logging for the snumpy CLI.
// When verbose mode is enabled via the --verbose flag, leveled key/value
// records are written to stderr to trace validation and elimination steps.
// Nothing is written otherwise.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	log               = newLogger(os.Stderr)
)

// newLogger builds a text logger without timestamps so output is reproducible.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = newLogger(w)
}

// Output returns the current writer.
func Output() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return output
}

// Debug logs msg with key/value pairs if verbose mode is enabled.
func Debug(msg string, args ...any) { emit(slog.LevelDebug, msg, args) }

// Info logs msg with key/value pairs if verbose mode is enabled.
func Info(msg string, args ...any) { emit(slog.LevelInfo, msg, args) }

// Warn logs msg with key/value pairs if verbose mode is enabled.
func Warn(msg string, args ...any) { emit(slog.LevelWarn, msg, args) }

func emit(level slog.Level, msg string, args []any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Log(context.Background(), level, msg, args...)
	}
}
