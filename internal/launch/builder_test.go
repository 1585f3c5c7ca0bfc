package launch_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"camlaunch/internal/config"
	"camlaunch/internal/hcl"
	"camlaunch/internal/launch"
	"camlaunch/internal/testutil"
)

const testDescription = `
	argument "camera_name" {
	  default     = "chameleon_s"
	  description = "camera name"
	}

	argument "serial" {
	  default     = "'16387017'"
	  description = "serial number"
	}

	node "camera_driver" {
	  package    = "flir_spinnaker_ros2"
	  executable = "camera_driver_node"
	  name       = arg.camera_name
	  output     = "screen"

	  parameters {
	    debug        = false
	    frame_rate   = 100.0
	    pixel_format = "RGB8"
	  }

	  parameters {
	    parameter_file = "${share_dir}/chameleon.cfg"
	    serial_number  = arg.serial
	  }

	  remap {
	    from = "control"
	    to   = "/exposure_control/control"
	  }
	}
`

func loadTestDescription(t *testing.T) *config.Description {
	t.Helper()
	desc, err := hcl.NewLoader().LoadSource(testutil.Context(t), "test.launch.hcl", []byte(testDescription))
	require.NoError(t, err)
	return desc
}

func TestBuild_DefaultsApplyWhenNoOverrides(t *testing.T) {
	t.Parallel()
	desc := loadTestDescription(t)

	requests, err := launch.Build(testutil.Context(t), desc, "/opt/flir/config", nil)
	require.NoError(t, err)
	require.Len(t, requests, 1)

	req := requests[0]
	assert.Equal(t, "chameleon_s", req.NodeName)
	assert.Equal(t, "flir_spinnaker_ros2", req.Package)
	assert.Equal(t, "camera_driver_node", req.Executable)
	assert.Equal(t, launch.OutputCapture, req.Output)

	// The default serial embeds literal single quotes; resolution must not
	// strip them.
	serial, ok := req.Parameters.Get("serial_number")
	require.True(t, ok)
	assert.Equal(t, cty.StringVal("'16387017'"), serial)
}

func TestBuild_OverridesWinAndUnknownKeysAreIgnored(t *testing.T) {
	t.Parallel()
	desc := loadTestDescription(t)

	overrides := map[string]string{
		"serial":       "12345678",
		"not_declared": "dropped",
	}
	requests, err := launch.Build(testutil.Context(t), desc, "/opt/flir/config", overrides)
	require.NoError(t, err)
	require.Len(t, requests, 1)

	req := requests[0]
	serial, ok := req.Parameters.Get("serial_number")
	require.True(t, ok)
	assert.Equal(t, cty.StringVal("12345678"), serial)

	// camera_name was not overridden, so its default still names the node.
	assert.Equal(t, "chameleon_s", req.NodeName)

	_, ok = req.Parameters.Get("not_declared")
	assert.False(t, ok)
}

func TestBuild_ParameterFilePathIsDerivedFromResourceRoot(t *testing.T) {
	t.Parallel()
	desc := loadTestDescription(t)

	requests, err := launch.Build(testutil.Context(t), desc, "/opt/flir/config",
		map[string]string{"serial": "99999999", "camera_name": "left_cam"})
	require.NoError(t, err)

	path, ok := requests[0].Parameters.Get("parameter_file")
	require.True(t, ok)
	assert.Equal(t, cty.StringVal("/opt/flir/config/chameleon.cfg"), path)
	assert.Equal(t, "left_cam", requests[0].NodeName)
}

func TestBuild_IsDeterministic(t *testing.T) {
	t.Parallel()
	desc := loadTestDescription(t)
	overrides := map[string]string{"serial": "12345678"}

	first, err := launch.Build(testutil.Context(t), desc, "/opt/flir/config", overrides)
	require.NoError(t, err)
	second, err := launch.Build(testutil.Context(t), desc, "/opt/flir/config", overrides)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two identical builds differ (-first +second):\n%s", diff)
	}
}

func TestBuild_LayerMergeIsOrderedLaterWins(t *testing.T) {
	t.Parallel()

	src := `
		node "n" {
		  package    = "p"
		  executable = "e"

		  parameters {
		    mode  = "defaults"
		    extra = 1
		  }
		  parameters {
		    mode = "derived"
		  }
		}
	`
	desc, err := hcl.NewLoader().LoadSource(testutil.Context(t), "merge.launch.hcl", []byte(src))
	require.NoError(t, err)

	requests, err := launch.Build(testutil.Context(t), desc, "/unused", nil)
	require.NoError(t, err)

	mode, ok := requests[0].Parameters.Get("mode")
	require.True(t, ok)
	assert.Equal(t, cty.StringVal("derived"), mode)
	assert.Equal(t, 2, requests[0].Parameters.Len())
}

func TestBuild_NodeWithoutNameFallsBackToID(t *testing.T) {
	t.Parallel()

	src := `
		node "bare" {
		  package    = "p"
		  executable = "e"
		  output     = "inherit"
		}
	`
	desc, err := hcl.NewLoader().LoadSource(testutil.Context(t), "bare.launch.hcl", []byte(src))
	require.NoError(t, err)

	requests, err := launch.Build(testutil.Context(t), desc, "/unused", nil)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "bare", requests[0].NodeName)
	assert.Equal(t, launch.OutputInherit, requests[0].Output)
	assert.Equal(t, 0, requests[0].Parameters.Len())
}

func TestBuild_RejectsNonScalarParameter(t *testing.T) {
	t.Parallel()

	src := `
		node "n" {
		  package    = "p"
		  executable = "e"
		  parameters {
		    bad = ["a", "b"]
		  }
		}
	`
	desc, err := hcl.NewLoader().LoadSource(testutil.Context(t), "bad.launch.hcl", []byte(src))
	require.NoError(t, err)

	_, err = launch.Build(testutil.Context(t), desc, "/unused", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parameter "bad"`)
	assert.Contains(t, err.Error(), "bool, number or string")
}

func TestBuild_RequestsDoNotAliasEachOther(t *testing.T) {
	t.Parallel()
	desc := loadTestDescription(t)

	first, err := launch.Build(testutil.Context(t), desc, "/opt/flir/config", nil)
	require.NoError(t, err)
	second, err := launch.Build(testutil.Context(t), desc, "/opt/flir/config", nil)
	require.NoError(t, err)

	// Mutating one build's table must not leak into the other.
	first[0].Parameters.Set("debug", cty.True)
	v, _ := second[0].Parameters.Get("debug")
	assert.Equal(t, cty.False, v)
}
