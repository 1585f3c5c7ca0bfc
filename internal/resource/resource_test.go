package resource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareDir_FindsPackageOnSearchPath(t *testing.T) {
	prefixA := t.TempDir()
	prefixB := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(prefixB, "flir_spinnaker_ros2"), 0755))
	t.Setenv(shareEnv, prefixA+string(os.PathListSeparator)+prefixB)

	dir, err := ShareDir("flir_spinnaker_ros2")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(prefixB, "flir_spinnaker_ros2"), dir)
}

func TestShareDir_FirstMatchWins(t *testing.T) {
	prefixA := t.TempDir()
	prefixB := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(prefixA, "cam"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(prefixB, "cam"), 0755))
	t.Setenv(shareEnv, prefixA+string(os.PathListSeparator)+prefixB)

	dir, err := ShareDir("cam")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(prefixA, "cam"), dir)
}

func TestShareDir_MissingPackageReportsSearchedPrefixes(t *testing.T) {
	prefix := t.TempDir()
	t.Setenv(shareEnv, prefix)

	_, err := ShareDir("absent_pkg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent_pkg")
	assert.Contains(t, err.Error(), prefix)
}

func TestShareDir_EmptyPackageRejected(t *testing.T) {
	_, err := ShareDir("")
	require.Error(t, err)
}

func TestFindExecutable_PrefersPackageBinDir(t *testing.T) {
	prefix := t.TempDir()
	binDir := filepath.Join(prefix, "flir_spinnaker_ros2", "bin")
	require.NoError(t, os.MkdirAll(binDir, 0755))
	exePath := filepath.Join(binDir, "camera_driver_node")
	require.NoError(t, os.WriteFile(exePath, []byte("#!/bin/sh\n"), 0755))
	t.Setenv(shareEnv, prefix)

	path, err := FindExecutable("flir_spinnaker_ros2", "camera_driver_node")
	require.NoError(t, err)
	assert.Equal(t, exePath, path)
}

func TestFindExecutable_FallsBackToPath(t *testing.T) {
	t.Setenv(shareEnv, t.TempDir())

	// "sh" exists on PATH everywhere this suite runs.
	path, err := FindExecutable("no_such_pkg", "sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}

func TestFindExecutable_NotFound(t *testing.T) {
	t.Setenv(shareEnv, t.TempDir())

	_, err := FindExecutable("p", "definitely-not-a-real-binary-name")
	require.Error(t, err)
}
