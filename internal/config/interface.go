package config

import "context"

// Loader is the interface for a format-specific launch description loader.
type Loader interface {
	// Load reads every description file found under the given paths (a file
	// or a directory), merges them, and returns the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Description, error)

	// LoadSource parses a single in-memory description, typically one
	// embedded by a built-in camera package. The filename is only used in
	// diagnostics.
	LoadSource(ctx context.Context, filename string, src []byte) (*Description, error)
}
