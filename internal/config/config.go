package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	dirName  = ".notepad-overlay"
	fileName = "config.json"

	// EnvPrefix prefixes environment overrides, e.g. OVERLAY_LOG_LEVEL.
	EnvPrefix = "OVERLAY"
)

// Config holds all application configuration
type Config struct {
	Window WindowConfig `json:"window" mapstructure:"window"`
	Log    LogConfig    `json:"log" mapstructure:"log"`
}

// WindowConfig holds the initial state of the main window
type WindowConfig struct {
	Title       string `json:"title" mapstructure:"title" validate:"required"`
	Width       int    `json:"width" mapstructure:"width" validate:"gte=200"`
	Height      int    `json:"height" mapstructure:"height" validate:"gte=200"`
	Frameless   bool   `json:"frameless" mapstructure:"frameless"`
	AlwaysOnTop bool   `json:"always_on_top" mapstructure:"always_on_top"`
	Translucent bool   `json:"translucent" mapstructure:"translucent"`
}

// LogConfig holds settings for the debug-build logger
type LogConfig struct {
	Level string `json:"level" mapstructure:"level" validate:"oneof=debug info warn error"`
	Color bool   `json:"color" mapstructure:"color"`
}

// Service manages configuration persistence
type Service struct {
	config   *Config
	filePath string
}

var validate = validator.New()

// New creates a config service backed by ~/.notepad-overlay/config.json
func New() (*Service, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return NewAt(filepath.Join(homeDir, dirName, fileName))
}

// NewAt creates a config service backed by the given file. A default
// config file is written if none exists yet.
func NewAt(configPath string) (*Service, error) {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	service := &Service{
		filePath: configPath,
		config:   getDefaultConfig(),
	}

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := service.Save(); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := service.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return service, nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:       "Notepad Overlay",
			Width:       800,
			Height:      600,
			Frameless:   false,
			AlwaysOnTop: false,
			Translucent: true,
		},
		Log: LogConfig{
			Level: "info",
			Color: true,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := getDefaultConfig()
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.frameless", d.Window.Frameless)
	v.SetDefault("window.always_on_top", d.Window.AlwaysOnTop)
	v.SetDefault("window.translucent", d.Window.Translucent)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.color", d.Log.Color)
}

// Get returns the current configuration
func (s *Service) Get() *Config {
	return s.config
}

// Path returns the full path to the configuration file
func (s *Service) Path() string {
	return s.filePath
}

// Load reads the config file, applies OVERLAY_* environment overrides and
// validates the result. The current configuration is replaced only on success.
func (s *Service) Load() error {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(s.filePath)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := validate.Struct(&cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	s.config = &cfg
	return nil
}

// Save writes the configuration to file
func (s *Service) Save() error {
	data, err := json.MarshalIndent(s.config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0644)
}
