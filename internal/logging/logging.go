// Package logging builds the application's slog logger and adapts it to the
// Wails logger plugin slot.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// LevelTrace sits below slog.LevelDebug for the Wails runtime's trace output.
const LevelTrace = slog.LevelDebug - 4

// Options configures New.
type Options struct {
	Level  slog.Level
	Color  bool
	Writer io.Writer
}

// New creates a logger writing to opts.Writer (stderr when nil). Colored
// output goes through tint; otherwise records are JSON.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	var handler slog.Handler
	if opts.Color {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      opts.Level,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level})
	}

	return slog.New(handler)
}

// ParseLevel converts a config level name into a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}
