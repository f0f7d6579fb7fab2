package shell

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	wailswindows "github.com/wailsapp/wails/v2/pkg/options/windows"

	"notepad-overlay/internal/config"
	"notepad-overlay/internal/logging"
)

// LoggerPlugin is the logger attached to the host runtime.
type LoggerPlugin struct {
	// Logger is the application logger. It discards everything when not attached.
	Logger   *slog.Logger
	Host     wailslogger.Logger
	Level    wailslogger.LogLevel
	Attached bool
}

// NewLoggerPlugin attaches a logger at cfg.Level in debug builds only.
func NewLoggerPlugin(cfg config.LogConfig, debug bool, w io.Writer) (*LoggerPlugin, error) {
	if !debug {
		return &LoggerPlugin{
			Logger: slog.New(slog.DiscardHandler),
			Host:   logging.Nop(),
			Level:  wailslogger.ERROR,
		}, nil
	}

	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to attach logger: %w", err)
	}

	log := logging.New(logging.Options{
		Level:  level,
		Color:  cfg.Color,
		Writer: w,
	})

	return &LoggerPlugin{
		Logger:   log,
		Host:     logging.NewWailsLogger(log),
		Level:    logging.WailsLevel(level),
		Attached: true,
	}, nil
}

// Lifecycle holds the hooks and bound objects handed to the host runtime.
type Lifecycle struct {
	OnStartup  func(ctx context.Context)
	OnShutdown func(ctx context.Context)
	Bind       []interface{}
}

// AppOptions builds the Wails application options for the main window.
func AppOptions(cfg *config.Config, plugin *LoggerPlugin, assets fs.FS, lc Lifecycle) *options.App {
	translucent := cfg.Window.Translucent

	background := &options.RGBA{R: 255, G: 255, B: 255, A: 255}
	if translucent {
		background = &options.RGBA{R: 0, G: 0, B: 0, A: 0}
	}

	return &options.App{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Frameless:          cfg.Window.Frameless,
		AlwaysOnTop:        cfg.Window.AlwaysOnTop,
		BackgroundColour:   background,
		Logger:             plugin.Host,
		LogLevel:           plugin.Level,
		LogLevelProduction: plugin.Level,
		OnStartup:          lc.OnStartup,
		OnShutdown:         lc.OnShutdown,
		Bind:               lc.Bind,
		Windows: &wailswindows.Options{
			WebviewIsTransparent: translucent,
			WindowIsTranslucent:  translucent,
		},
		Mac: &mac.Options{
			WebviewIsTransparent: translucent,
			WindowIsTranslucent:  translucent,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: translucent,
		},
	}
}
