// Package shell wires the window commands exposed to the front-end.
package shell

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"notepad-overlay/internal/commands"
	"notepad-overlay/internal/window"
)

// Command names as the front-end invokes them.
const (
	CommandSetOpacity     = "set_opacity"
	CommandSetAlwaysOnTop = "set_always_on_top"
)

// Required lists every command the front-end depends on.
var Required = []string{CommandSetOpacity, CommandSetAlwaysOnTop}

// Shell owns the command table for one window.
type Shell struct {
	host     window.Host
	log      *slog.Logger
	commands *commands.Registry
}

// New creates a shell driving host and registers its commands. The command
// table is validated against Required.
func New(host window.Host, log *slog.Logger) (*Shell, error) {
	if host == nil {
		return nil, errors.New("window host is required")
	}
	if log == nil {
		log = slog.Default()
	}

	s := &Shell{
		host:     host,
		log:      log,
		commands: commands.New(),
	}

	if err := s.register(); err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	return s, nil
}

func (s *Shell) register() error {
	table := []struct {
		name    string
		handler commands.Handler
	}{
		{CommandSetOpacity, s.handleSetOpacity},
		{CommandSetAlwaysOnTop, s.handleSetAlwaysOnTop},
	}

	for _, entry := range table {
		if err := s.commands.Register(entry.name, entry.handler); err != nil {
			return err
		}
	}

	return s.commands.Validate(Required...)
}

// SetOpacity makes the window accept pointer input again and removes its
// decorations. The opacity value is not applied; the front-end fades the
// page with CSS. A decorations failure leaves cursor events enabled.
func (s *Shell) SetOpacity(opacity float64) error {
	if err := s.host.SetIgnoreCursorEvents(false); err != nil {
		s.log.Warn("set_opacity failed", "step", "cursor_events", "error", err)
		return fmt.Errorf("Failed to set cursor events: %w", err)
	}

	if err := s.host.SetDecorations(false); err != nil {
		s.log.Warn("set_opacity failed", "step", "decorations", "error", err)
		return fmt.Errorf("Failed to set decorations: %w", err)
	}

	return nil
}

// SetAlwaysOnTop pins or unpins the window.
func (s *Shell) SetAlwaysOnTop(alwaysOnTop bool) error {
	if err := s.host.SetAlwaysOnTop(alwaysOnTop); err != nil {
		s.log.Warn("set_always_on_top failed", "always_on_top", alwaysOnTop, "error", err)
		return fmt.Errorf("Failed to set always on top: %w", err)
	}

	s.log.Info("always on top changed", "always_on_top", alwaysOnTop)
	return nil
}

// Invoke runs a command by name with the front-end's JSON arguments.
func (s *Shell) Invoke(ctx context.Context, name string, args json.RawMessage) error {
	return s.commands.Invoke(ctx, name, args)
}

// Commands returns the registered command names.
func (s *Shell) Commands() []string {
	return s.commands.Names()
}

func (s *Shell) handleSetOpacity(_ context.Context, args json.RawMessage) error {
	var in struct {
		Opacity *float64 `json:"opacity"`
	}
	if err := commands.Decode(args, &in); err != nil {
		return fmt.Errorf("%s: %w", CommandSetOpacity, err)
	}
	if in.Opacity == nil {
		return fmt.Errorf("%s: missing required key opacity", CommandSetOpacity)
	}

	return s.SetOpacity(*in.Opacity)
}

func (s *Shell) handleSetAlwaysOnTop(_ context.Context, args json.RawMessage) error {
	var in struct {
		AlwaysOnTop *bool `json:"alwaysOnTop"`
	}
	if err := commands.Decode(args, &in); err != nil {
		return fmt.Errorf("%s: %w", CommandSetAlwaysOnTop, err)
	}
	if in.AlwaysOnTop == nil {
		return fmt.Errorf("%s: missing required key alwaysOnTop", CommandSetAlwaysOnTop)
	}

	return s.SetAlwaysOnTop(*in.AlwaysOnTop)
}
