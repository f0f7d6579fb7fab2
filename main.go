package main

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/wailsapp/wails/v2"
	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"notepad-overlay/internal/buildmode"
	"notepad-overlay/internal/config"
	"notepad-overlay/internal/shell"
	"notepad-overlay/internal/window"
)

//go:embed all:frontend/dist
var assets embed.FS

// App struct
type App struct {
	ctx    context.Context
	config *config.Service
	host   *window.Native
	shell  *shell.Shell
	log    *slog.Logger
}

// NewApp creates a new App application struct
func NewApp(configSvc *config.Service, host *window.Native, sh *shell.Shell, log *slog.Logger) *App {
	return &App{
		config: configSvc,
		host:   host,
		shell:  sh,
		log:    log,
	}
}

// OnStartup is called when the app starts up
func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx
	a.host.Attach(window.NewHandle(ctx, a.config.Get().Window.Title))

	env := wailsruntime.Environment(ctx)
	a.log.Info("window ready",
		"build_type", env.BuildType,
		"platform", env.Platform,
		"commands", a.shell.Commands(),
	)
}

// OnShutdown is called when the app is shutting down
func (a *App) OnShutdown(ctx context.Context) {
	a.log.Info("shutting down")
}

// Frontend API methods (these will be exposed to the frontend)

// SetOpacity runs set_opacity. The value is accepted but not applied.
func (a *App) SetOpacity(opacity float64) error {
	return a.shell.SetOpacity(opacity)
}

// SetAlwaysOnTop runs set_always_on_top
func (a *App) SetAlwaysOnTop(alwaysOnTop bool) error {
	return a.shell.SetAlwaysOnTop(alwaysOnTop)
}

// Invoke runs a command by name, e.g. Invoke("set_always_on_top", {alwaysOnTop: true})
func (a *App) Invoke(command string, args map[string]interface{}) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("%s: invalid arguments: %w", command, err)
	}
	return a.shell.Invoke(a.ctx, command, raw)
}

// Commands lists the commands Invoke accepts
func (a *App) Commands() []string {
	return a.shell.Commands()
}

func main() {
	configSvc, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	cfg := configSvc.Get()

	plugin, err := shell.NewLoggerPlugin(cfg.Log, buildmode.IsDebug(), os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(plugin.Logger)

	// The handle is attached once Wails hands us the window context.
	host := window.NewNative(window.Handle{})
	sh, err := shell.New(host, plugin.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize commands: %v\n", err)
		os.Exit(1)
	}

	app := NewApp(configSvc, host, sh, plugin.Logger)
	plugin.Logger.Info("starting", "mode", buildmode.Current(), "config", configSvc.Path())

	err = wails.Run(shell.AppOptions(cfg, plugin, assets, shell.Lifecycle{
		OnStartup:  app.OnStartup,
		OnShutdown: app.OnShutdown,
		Bind:       []interface{}{app},
	}))

	if err != nil {
		fmt.Fprintf(os.Stderr, "error while running wails application: %v\n", err)
		os.Exit(1)
	}
}
