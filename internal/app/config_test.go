package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_RequiresADescriptionSource(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestNewConfig_RejectsBothSources(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{Camera: "chameleon", LaunchPath: "some/dir"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestNewConfig_AcceptsEitherSource(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{Camera: "chameleon"})
	require.NoError(t, err)
	assert.Equal(t, "chameleon", cfg.Camera)

	cfg, err = NewConfig(Config{LaunchPath: "descriptions/"})
	require.NoError(t, err)
	assert.Equal(t, "descriptions/", cfg.LaunchPath)
}
