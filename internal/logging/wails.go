package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

// WailsLogger forwards Wails runtime log output to an slog logger.
type WailsLogger struct {
	log  *slog.Logger
	exit func(code int)
}

var _ logger.Logger = (*WailsLogger)(nil)

// NewWailsLogger wraps l for use as options.App.Logger.
func NewWailsLogger(l *slog.Logger) *WailsLogger {
	return &WailsLogger{
		log:  l.With("component", "wails"),
		exit: os.Exit,
	}
}

// Nop returns a Wails logger that drops everything.
func Nop() *WailsLogger {
	return NewWailsLogger(slog.New(slog.DiscardHandler))
}

// Enabled reports whether records at level would be emitted.
func (w *WailsLogger) Enabled(level slog.Level) bool {
	return w.log.Enabled(context.Background(), level)
}

func (w *WailsLogger) Print(message string) {
	w.log.Info(message)
}

func (w *WailsLogger) Trace(message string) {
	w.log.Log(context.Background(), LevelTrace, message)
}

func (w *WailsLogger) Debug(message string) {
	w.log.Debug(message)
}

func (w *WailsLogger) Info(message string) {
	w.log.Info(message)
}

func (w *WailsLogger) Warning(message string) {
	w.log.Warn(message)
}

func (w *WailsLogger) Error(message string) {
	w.log.Error(message)
}

// Fatal logs and terminates the process, matching the Wails default logger.
func (w *WailsLogger) Fatal(message string) {
	w.log.Error(message, "fatal", true)
	w.exit(1)
}

// WailsLevel maps a slog level onto the nearest Wails log level.
func WailsLevel(level slog.Level) logger.LogLevel {
	switch {
	case level <= LevelTrace:
		return logger.TRACE
	case level < slog.LevelInfo:
		return logger.DEBUG
	case level < slog.LevelWarn:
		return logger.INFO
	case level < slog.LevelError:
		return logger.WARNING
	default:
		return logger.ERROR
	}
}
