// Package commands holds the table of front-end invocable commands.
package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrDuplicateCommand = errors.New("command already registered")
)

// Handler runs one command. args is the JSON object sent by the front-end.
type Handler func(ctx context.Context, args json.RawMessage) error

// Registry maps command names to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler under name.
func (r *Registry) Register(name string, h Handler) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("command name must not be empty")
	}
	if h == nil {
		return fmt.Errorf("command %q: nil handler", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	r.handlers[name] = h
	return nil
}

// Validate checks that exactly the required commands are registered.
func (r *Registry) Validate(required ...string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := make(map[string]bool, len(required))
	var missing, extra []string
	for _, name := range required {
		want[name] = true
		if _, ok := r.handlers[name]; !ok {
			missing = append(missing, name)
		}
	}
	for name := range r.handlers {
		if !want[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("missing commands: %s", strings.Join(missing, ", ")))
	}
	if len(extra) > 0 {
		errs = append(errs, fmt.Errorf("unexpected commands: %s", strings.Join(extra, ", ")))
	}
	return errors.Join(errs...)
}

// Invoke runs the named command with args.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) error {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return h(ctx, args)
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode unmarshals command arguments into dst. Empty args decode as {}.
func Decode(args json.RawMessage, dst any) error {
	if len(bytes.TrimSpace(args)) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, dst); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
