//go:build !windows

package window

import (
	"fmt"
	"runtime"
)

// platformWindow has no native style access outside Windows; Wails v2 only
// sets frame and pass-through state at window creation.
type platformWindow struct{}

func (p *platformWindow) setIgnoreCursorEvents(title string, ignore bool) error {
	return fmt.Errorf("ignore cursor events on %s: %w", runtime.GOOS, ErrUnsupported)
}

func (p *platformWindow) setDecorations(title string, decorated bool) error {
	return fmt.Errorf("decorations on %s: %w", runtime.GOOS, ErrUnsupported)
}
