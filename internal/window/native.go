package window

import (
	"sync"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// Native is the Host backed by the Wails runtime and, where Wails has no
// API, by the operating system's window manager.
type Native struct {
	mu       sync.RWMutex
	handle   Handle
	platform platformWindow
}

var _ Host = (*Native)(nil)

// NewNative creates a host for the window identified by h. A zero Handle is
// allowed; calls fail with ErrInvalidHandle until Attach is called.
func NewNative(h Handle) *Native {
	return &Native{handle: h}
}

// Attach points the host at the window started with h.
func (n *Native) Attach(h Handle) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handle = h
}

func (n *Native) current() (Handle, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if err := n.handle.Validate(); err != nil {
		return Handle{}, err
	}
	return n.handle, nil
}

// SetIgnoreCursorEvents toggles pointer pass-through.
func (n *Native) SetIgnoreCursorEvents(ignore bool) error {
	h, err := n.current()
	if err != nil {
		return err
	}
	return n.platform.setIgnoreCursorEvents(h.title, ignore)
}

// SetDecorations toggles the native title bar and border.
func (n *Native) SetDecorations(decorated bool) error {
	h, err := n.current()
	if err != nil {
		return err
	}
	return n.platform.setDecorations(h.title, decorated)
}

// SetAlwaysOnTop toggles topmost z-order.
func (n *Native) SetAlwaysOnTop(onTop bool) error {
	h, err := n.current()
	if err != nil {
		return err
	}
	wailsruntime.WindowSetAlwaysOnTop(h.ctx, onTop)
	return nil
}
