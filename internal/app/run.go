package app

import (
	"context"
	"fmt"

	"camlaunch/internal/ctxlog"
	"camlaunch/internal/launch"
	"camlaunch/internal/resource"
	"camlaunch/internal/supervisor"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	resourceRoot, err := a.resolveResourceRoot(appConfig)
	if err != nil {
		return err
	}
	a.logger.Debug("Resource root resolved.", "share_dir", resourceRoot)

	requests, err := launch.Build(ctx, a.desc, resourceRoot, appConfig.Overrides)
	if err != nil {
		return fmt.Errorf("failed to build launch requests: %w", err)
	}

	if len(requests) == 0 {
		a.logger.Warn("Description declares no nodes, nothing to launch.")
		return nil
	}

	if appConfig.DryRun {
		a.logger.Debug("Dry run requested, printing resolved requests.")
		return supervisor.Preview(a.outW, requests)
	}

	sup := supervisor.New()
	a.logger.Info("🚀 Launching processes...", "count", len(requests))
	for _, request := range requests {
		if err := sup.Launch(ctx, request); err != nil {
			return fmt.Errorf("launch failed: %w", err)
		}
	}
	a.logger.Info("🏁 All processes exited.")

	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolveResourceRoot returns the share directory exposed to the description
// as share_dir. An explicit -share-dir wins and is taken verbatim; a
// description that never references share_dir skips resolution entirely;
// otherwise the first node's package is located on the share search path.
func (a *App) resolveResourceRoot(appConfig *Config) (string, error) {
	if appConfig.ShareDir != "" {
		return appConfig.ShareDir, nil
	}
	if !a.desc.UsesShareDir() {
		return "", nil
	}
	for _, node := range a.desc.Nodes {
		if node.Package == "" {
			continue
		}
		root, err := resource.ShareDir(node.Package)
		if err != nil {
			return "", fmt.Errorf("cannot resolve resource root: %w", err)
		}
		return root, nil
	}
	return "", nil
}
