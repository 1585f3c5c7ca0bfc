package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Camera is the name of a built-in launch description. Mutually
	// exclusive with LaunchPath.
	Camera string
	// LaunchPath is a .launch.hcl file or a directory of them.
	LaunchPath string

	// ShareDir, when set, is used as the resource root verbatim instead of
	// consulting the share search path.
	ShareDir string

	// Overrides are the -arg name=value pairs from the command line.
	Overrides map[string]string

	// DryRun prints the resolved launch requests instead of spawning.
	DryRun bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Camera == "" && cfg.LaunchPath == "" {
		return nil, errors.New("a built-in description name or a launch path is required")
	}
	if cfg.Camera != "" && cfg.LaunchPath != "" {
		return nil, errors.New("a built-in description name and a launch path are mutually exclusive")
	}

	return &cfg, nil
}
