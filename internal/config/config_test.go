package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAt_CreatesDefaultFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.json")

	service, err := NewAt(configPath)
	require.NoError(t, err)

	_, err = os.Stat(configPath)
	require.NoError(t, err, "default config file was not created")

	cfg := service.Get()
	assert.Equal(t, "Notepad Overlay", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.False(t, cfg.Window.AlwaysOnTop)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, configPath, service.Path())
}

func TestNewAt_LoadsExistingFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	raw := `{"window": {"title": "Scratch", "width": 400, "always_on_top": true}, "log": {"level": "WARN"}}`
	require.NoError(t, os.WriteFile(configPath, []byte(raw), 0644))

	service, err := NewAt(configPath)
	require.NoError(t, err)

	cfg := service.Get()
	assert.Equal(t, "Scratch", cfg.Window.Title)
	assert.Equal(t, 400, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "missing keys fall back to defaults")
	assert.True(t, cfg.Window.AlwaysOnTop)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("OVERLAY_LOG_LEVEL", "debug")
	t.Setenv("OVERLAY_WINDOW_TITLE", "From Env")

	service, err := NewAt(configPath)
	require.NoError(t, err)

	assert.Equal(t, "debug", service.Get().Log.Level)
	assert.Equal(t, "From Env", service.Get().Window.Title)
}

func TestLoad_ValidationFailure(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"width too small", `{"window": {"width": 10}}`},
		{"empty title", `{"window": {"title": ""}}`},
		{"unknown level", `{"log": {"level": "verbose"}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(configPath, []byte(tc.raw), 0644))

			_, err := NewAt(configPath)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte("{not json"), 0644))

	_, err := NewAt(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_FailureKeepsPreviousConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	service, err := NewAt(configPath)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(configPath, []byte(`{"window": {"height": 1}}`), 0644))
	require.Error(t, service.Load())

	assert.Equal(t, 600, service.Get().Window.Height)
}

func TestSave_RoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	service, err := NewAt(configPath)
	require.NoError(t, err)

	service.Get().Window.Frameless = true
	service.Get().Window.Width = 1024
	require.NoError(t, service.Save())

	reloaded, err := NewAt(configPath)
	require.NoError(t, err)
	assert.True(t, reloaded.Get().Window.Frameless)
	assert.Equal(t, 1024, reloaded.Get().Window.Width)
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := getDefaultConfig()

	require.NoError(t, validate.Struct(cfg))
	assert.True(t, cfg.Window.Translucent)
	assert.True(t, cfg.Log.Color)
}
