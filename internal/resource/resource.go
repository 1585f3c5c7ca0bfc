// Package resource locates the on-disk assets a launch needs: the share
// directory holding a package's configuration resources, and the executable
// to spawn. This is the fallible collaborator the launch builder deliberately
// leans on; the builder itself never touches the filesystem.
package resource

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// shareEnv holds a list of install prefixes searched for package share
// directories, separated by the OS path list separator.
const shareEnv = "CAMLAUNCH_SHARE_PATH"

// defaultSharePrefix is searched when shareEnv is unset.
const defaultSharePrefix = "/opt/camlaunch/share"

// sharePrefixes returns the configured search prefixes in order.
func sharePrefixes() []string {
	raw := os.Getenv(shareEnv)
	if raw == "" {
		return []string{defaultSharePrefix}
	}
	var prefixes []string
	for _, p := range strings.Split(raw, string(os.PathListSeparator)) {
		if p != "" {
			prefixes = append(prefixes, p)
		}
	}
	return prefixes
}

// ShareDir returns the share directory of the named package: the first
// <prefix>/<pkg> directory that exists on the search path.
func ShareDir(pkg string) (string, error) {
	if pkg == "" {
		return "", fmt.Errorf("package name must not be empty")
	}
	prefixes := sharePrefixes()
	for _, prefix := range prefixes {
		candidate := filepath.Join(prefix, pkg)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("share directory for package %q not found (searched %s)", pkg, strings.Join(prefixes, ", "))
}

// FindExecutable resolves the executable for a node: <prefix>/<pkg>/bin/<exe>
// on the share search path first, then the regular PATH. pkg may be empty,
// in which case only PATH is consulted.
func FindExecutable(pkg, exe string) (string, error) {
	if exe == "" {
		return "", fmt.Errorf("executable name must not be empty")
	}
	if pkg != "" {
		for _, prefix := range sharePrefixes() {
			candidate := filepath.Join(prefix, pkg, "bin", exe)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() && info.Mode()&0111 != 0 {
				return candidate, nil
			}
		}
	}
	path, err := exec.LookPath(exe)
	if err != nil {
		return "", fmt.Errorf("executable %q not found for package %q: %w", exe, pkg, err)
	}
	return path, nil
}
