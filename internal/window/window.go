// Package window mutates the chrome of the application's native window.
package window

import (
	"context"
	"errors"
	"fmt"
)

// frontendKey is where the Wails runtime stores its frontend in the
// lifecycle context. Runtime calls on a context without it abort the process.
const frontendKey = "frontend"

var (
	// ErrInvalidHandle is returned when a Handle does not identify a live window.
	ErrInvalidHandle = errors.New("invalid window handle")

	// ErrUnsupported is returned for window operations the current platform cannot perform.
	ErrUnsupported = errors.New("not supported on this platform")
)

// Host applies window attribute changes. Implementations never read state
// back; every call is a one-way mutation and the last write wins.
type Host interface {
	// SetIgnoreCursorEvents makes the window transparent to pointer input when ignore is true.
	SetIgnoreCursorEvents(ignore bool) error
	// SetDecorations shows or hides the title bar and border.
	SetDecorations(decorated bool) error
	// SetAlwaysOnTop pins the window above all others when onTop is true.
	SetAlwaysOnTop(onTop bool) error
}

// Handle identifies the application window: the context Wails passes to
// OnStartup plus the native window title used to look up the OS window.
type Handle struct {
	ctx   context.Context
	title string
}

// NewHandle creates a handle for the window started with ctx and title.
func NewHandle(ctx context.Context, title string) Handle {
	return Handle{ctx: ctx, title: title}
}

// Context returns the Wails lifecycle context.
func (h Handle) Context() context.Context {
	return h.ctx
}

// Title returns the native window title.
func (h Handle) Title() string {
	return h.title
}

// Validate reports whether the handle can be passed to the runtime.
func (h Handle) Validate() error {
	if h.ctx == nil {
		return fmt.Errorf("%w: nil context", ErrInvalidHandle)
	}
	if h.ctx.Value(frontendKey) == nil {
		return fmt.Errorf("%w: context was not issued by the window runtime", ErrInvalidHandle)
	}
	if h.title == "" {
		return fmt.Errorf("%w: missing window title", ErrInvalidHandle)
	}
	return nil
}
