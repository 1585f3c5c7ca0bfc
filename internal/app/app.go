package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"camlaunch/internal/config"
	"camlaunch/internal/ctxlog"
	"camlaunch/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	desc     *config.Description
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry, and the
// launch description already loaded. A failure to load the description is a
// fatal startup error and panics; the entrypoint recovers it into a clean
// exit.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = builtinCameras
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("Built-in descriptions registered.", "count", len(modules))

	desc, err := loadDescription(ctx, appConfig, loader, reg)
	if err != nil {
		panic(fmt.Errorf("failed to load launch description: %w", err))
	}
	logger.Debug("Launch description loaded.",
		"arguments", len(desc.Arguments), "nodes", len(desc.Nodes))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		desc:     desc,
	}
}

// loadDescription picks the description source: a built-in registered name,
// or a file/directory path handed to the loader.
func loadDescription(ctx context.Context, appConfig *Config, loader config.Loader, reg *registry.Registry) (*config.Description, error) {
	if appConfig.Camera != "" {
		filename, src, ok := reg.Source(appConfig.Camera)
		if !ok {
			return nil, fmt.Errorf("unknown camera %q (built-ins: %s)",
				appConfig.Camera, strings.Join(reg.Names(), ", "))
		}
		return loader.LoadSource(ctx, filename, src)
	}
	return loader.Load(ctx, appConfig.LaunchPath)
}

// Description returns the loaded launch description. This is primarily for
// testing.
func (a *App) Description() *config.Description {
	return a.desc
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
