package shell

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad-overlay/internal/window"
)

// fakeHost records window attribute writes and fails on demand.
type fakeHost struct {
	ignoreCursor bool
	decorated    bool
	onTop        bool
	calls        []string
	fail         map[string]error
}

func newFakeHost() *fakeHost {
	return &fakeHost{ignoreCursor: true, decorated: true, fail: map[string]error{}}
}

func (h *fakeHost) SetIgnoreCursorEvents(ignore bool) error {
	h.calls = append(h.calls, "cursor")
	if err := h.fail["cursor"]; err != nil {
		return err
	}
	h.ignoreCursor = ignore
	return nil
}

func (h *fakeHost) SetDecorations(decorated bool) error {
	h.calls = append(h.calls, "decorations")
	if err := h.fail["decorations"]; err != nil {
		return err
	}
	h.decorated = decorated
	return nil
}

func (h *fakeHost) SetAlwaysOnTop(onTop bool) error {
	h.calls = append(h.calls, "on_top")
	if err := h.fail["on_top"]; err != nil {
		return err
	}
	h.onTop = onTop
	return nil
}

func newShell(t *testing.T, host window.Host) *Shell {
	t.Helper()
	s, err := New(host, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return s
}

func TestNew_RegistersRequiredCommands(t *testing.T) {
	s := newShell(t, newFakeHost())
	assert.Equal(t, []string{CommandSetAlwaysOnTop, CommandSetOpacity}, s.Commands())

	_, err := New(nil, nil)
	assert.Error(t, err)
}

func TestSetOpacity_IgnoresValue(t *testing.T) {
	values := []float64{0, 0.5, 1, -1, 2, 100, math.NaN(), math.Inf(1), math.Inf(-1)}

	for _, v := range values {
		host := newFakeHost()
		s := newShell(t, host)

		require.NoError(t, s.SetOpacity(v))
		assert.Equal(t, []string{"cursor", "decorations"}, host.calls, "opacity %v", v)
		assert.False(t, host.ignoreCursor)
		assert.False(t, host.decorated)
	}
}

func TestSetOpacity_Idempotent(t *testing.T) {
	host := newFakeHost()
	s := newShell(t, host)

	require.NoError(t, s.SetOpacity(0.3))
	once := *host
	require.NoError(t, s.SetOpacity(0.3))

	assert.Equal(t, once.ignoreCursor, host.ignoreCursor)
	assert.Equal(t, once.decorated, host.decorated)
}

func TestSetOpacity_CursorFailureShortCircuits(t *testing.T) {
	host := newFakeHost()
	boom := errors.New("boom")
	host.fail["cursor"] = boom
	s := newShell(t, host)

	err := s.SetOpacity(1)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "Failed to set cursor events: boom", err.Error())
	assert.Equal(t, []string{"cursor"}, host.calls)
	assert.True(t, host.decorated)
}

func TestSetOpacity_PartialFailureNotReverted(t *testing.T) {
	host := newFakeHost()
	boom := errors.New("boom")
	host.fail["decorations"] = boom
	s := newShell(t, host)

	err := s.SetOpacity(1)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "Failed to set decorations: boom", err.Error())
	assert.False(t, host.ignoreCursor, "cursor events stay enabled")
	assert.True(t, host.decorated)
	assert.Equal(t, []string{"cursor", "decorations"}, host.calls)
}

func TestSetAlwaysOnTop_RoundTrip(t *testing.T) {
	host := newFakeHost()
	s := newShell(t, host)

	for _, b := range []bool{true, true, false, false, true} {
		require.NoError(t, s.SetAlwaysOnTop(b))
		assert.Equal(t, b, host.onTop)
	}
}

func TestSetAlwaysOnTop_Failure(t *testing.T) {
	host := newFakeHost()
	host.fail["on_top"] = errors.New("denied")
	s := newShell(t, host)

	err := s.SetAlwaysOnTop(true)
	require.Error(t, err)
	assert.Equal(t, "Failed to set always on top: denied", err.Error())
	assert.False(t, host.onTop)
}

func TestInvoke(t *testing.T) {
	host := newFakeHost()
	s := newShell(t, host)
	ctx := context.Background()

	require.NoError(t, s.Invoke(ctx, CommandSetAlwaysOnTop, json.RawMessage(`{"alwaysOnTop": true}`)))
	assert.True(t, host.onTop)

	require.NoError(t, s.Invoke(ctx, CommandSetOpacity, json.RawMessage(`{"opacity": 42}`)))
	assert.False(t, host.decorated)
}

func TestInvoke_BadArguments(t *testing.T) {
	host := newFakeHost()
	s := newShell(t, host)
	ctx := context.Background()

	err := s.Invoke(ctx, CommandSetOpacity, json.RawMessage(`{}`))
	assert.ErrorContains(t, err, "missing required key opacity")

	err = s.Invoke(ctx, CommandSetAlwaysOnTop, nil)
	assert.ErrorContains(t, err, "missing required key alwaysOnTop")

	err = s.Invoke(ctx, CommandSetAlwaysOnTop, json.RawMessage(`{"alwaysOnTop": 1}`))
	assert.ErrorContains(t, err, "invalid arguments")

	err = s.Invoke(ctx, "set_opacity_v2", nil)
	assert.ErrorContains(t, err, "unknown command")

	assert.Empty(t, host.calls)
}

func TestInvalidHandleFailsWithoutCrash(t *testing.T) {
	s := newShell(t, window.NewNative(window.NewHandle(nil, "Notepad Overlay")))

	err := s.SetOpacity(0.5)
	require.ErrorIs(t, err, window.ErrInvalidHandle)
	assert.Contains(t, err.Error(), "Failed to set cursor events: invalid window handle")

	err = s.SetAlwaysOnTop(true)
	require.ErrorIs(t, err, window.ErrInvalidHandle)
	assert.Contains(t, err.Error(), "Failed to set always on top: invalid window handle")
}
