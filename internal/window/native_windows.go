//go:build windows

package window

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Window style indices and bits from winuser.h
const (
	_GWL_STYLE   int32 = -16
	_GWL_EXSTYLE int32 = -20

	_WS_EX_TRANSPARENT uint32 = 0x00000020
	_WS_EX_LAYERED     uint32 = 0x00080000

	_WS_CAPTION     uint32 = 0x00C00000
	_WS_THICKFRAME  uint32 = 0x00040000
	_WS_SYSMENU     uint32 = 0x00080000
	_WS_MINIMIZEBOX uint32 = 0x00020000
	_WS_MAXIMIZEBOX uint32 = 0x00010000

	_SWP_NOSIZE       = 0x0001
	_SWP_NOMOVE       = 0x0002
	_SWP_NOZORDER     = 0x0004
	_SWP_NOACTIVATE   = 0x0010
	_SWP_FRAMECHANGED = 0x0020
)

const decorationStyles = _WS_CAPTION | _WS_THICKFRAME | _WS_SYSMENU | _WS_MINIMIZEBOX | _WS_MAXIMIZEBOX

var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	kernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procFindWindowW    = user32.NewProc("FindWindowW")
	procGetWindowLongW = user32.NewProc("GetWindowLongW")
	procSetWindowLongW = user32.NewProc("SetWindowLongW")
	procSetWindowPos   = user32.NewProc("SetWindowPos")
	procSetLastError   = kernel32.NewProc("SetLastError")
)

// platformWindow caches the HWND of the application window.
type platformWindow struct {
	mu   sync.Mutex
	hwnd uintptr
}

func (p *platformWindow) setIgnoreCursorEvents(title string, ignore bool) error {
	if ignore {
		return p.updateStyle(title, _GWL_EXSTYLE, _WS_EX_LAYERED|_WS_EX_TRANSPARENT, 0)
	}
	return p.updateStyle(title, _GWL_EXSTYLE, _WS_EX_LAYERED, _WS_EX_TRANSPARENT)
}

func (p *platformWindow) setDecorations(title string, decorated bool) error {
	if decorated {
		return p.updateStyle(title, _GWL_STYLE, decorationStyles, 0)
	}
	return p.updateStyle(title, _GWL_STYLE, 0, decorationStyles)
}

// resolve finds the HWND by window title and caches it.
func (p *platformWindow) resolve(title string) (uintptr, error) {
	if p.hwnd != 0 {
		return p.hwnd, nil
	}

	ptr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidHandle, err)
	}

	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(ptr)))
	if hwnd == 0 {
		return 0, fmt.Errorf("%w: no native window titled %q", ErrInvalidHandle, title)
	}

	p.hwnd = hwnd
	return hwnd, nil
}

// updateStyle sets and clears bits in the window long at idx, then asks the
// window manager to redraw the frame.
func (p *platformWindow) updateStyle(title string, idx int32, set, clear uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	hwnd, err := p.resolve(title)
	if err != nil {
		return err
	}

	// GetWindowLongW returns 0 both for failure and for an empty style.
	procSetLastError.Call(0)
	ret, _, callErr := procGetWindowLongW.Call(hwnd, uintptr(idx))
	if ret == 0 && isErrno(callErr) {
		return fmt.Errorf("GetWindowLongW: %w", callErr)
	}

	cur := uint32(ret)
	next := (cur | set) &^ clear
	if next == cur {
		return nil
	}

	procSetLastError.Call(0)
	ret, _, callErr = procSetWindowLongW.Call(hwnd, uintptr(idx), uintptr(next))
	if ret == 0 && isErrno(callErr) {
		return fmt.Errorf("SetWindowLongW: %w", callErr)
	}

	ok, _, callErr := procSetWindowPos.Call(hwnd, 0, 0, 0, 0, 0,
		_SWP_NOSIZE|_SWP_NOMOVE|_SWP_NOZORDER|_SWP_NOACTIVATE|_SWP_FRAMECHANGED)
	if ok == 0 {
		return fmt.Errorf("SetWindowPos: %w", callErr)
	}

	return nil
}

func isErrno(err error) bool {
	var errno windows.Errno
	return errors.As(err, &errno) && errno != 0
}
