package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"camlaunch/internal/config"
	"camlaunch/internal/ctxlog"
	"camlaunch/internal/fsutil"
	"camlaunch/internal/schema"
)

// launchFileExtension is the suffix a description file must carry to be
// picked up by directory loading.
const launchFileExtension = ".launch.hcl"

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL launch description loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .launch.hcl file found under the given paths and merges
// them into a single description. A path may be a single file or a directory
// searched recursively.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Description, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read launch path %s: %w", path, err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, launchFileExtension)
			if err != nil {
				return nil, fmt.Errorf("failed to find launch files in %s: %w", path, err)
			}
			files = append(files, found...)
		} else {
			files = append(files, path)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found in %v", launchFileExtension, paths)
	}
	logger.Debug("Loading launch description files.", "count", len(files))

	parser := hclparse.NewParser()
	merged := &config.Description{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}
		if err := l.appendFile(ctx, merged, hclFile, file); err != nil {
			return nil, err
		}
	}

	if err := validateDescription(merged); err != nil {
		return nil, err
	}
	logger.Debug("Launch description loaded.",
		"arguments", len(merged.Arguments), "nodes", len(merged.Nodes))
	return merged, nil
}

// LoadSource parses a single in-memory description, such as one embedded by a
// built-in camera package.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*config.Description, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}

	desc := &config.Description{}
	if err := l.appendFile(ctx, desc, hclFile, filename); err != nil {
		return nil, err
	}
	if err := validateDescription(desc); err != nil {
		return nil, err
	}
	return desc, nil
}

// appendFile decodes one parsed file and appends its contents to the
// description under construction.
func (l *Loader) appendFile(ctx context.Context, desc *config.Description, hclFile *hcl.File, filename string) error {
	var parsed schema.LaunchFile
	diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode %s: %w", filename, diags)
	}

	for _, arg := range parsed.Arguments {
		desc.Arguments = append(desc.Arguments, translateArgument(arg))
	}
	for _, node := range parsed.Nodes {
		translated, err := translateNode(node, filename)
		if err != nil {
			return err
		}
		desc.Nodes = append(desc.Nodes, translated)
	}
	return nil
}
