package launch_flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camlaunch/internal/app"
	"camlaunch/internal/testutil"
)

const overrideDescription = `
	argument "camera_name" { default = "chameleon_s" }
	argument "serial"      { default = "'16387017'" }

	node "camera_driver" {
	  package    = "flir_spinnaker_ros2"
	  executable = "camera_driver_node"
	  name       = arg.camera_name

	  parameters {
	    serial_number = arg.serial
	  }
	}
`

// TestLaunchFlow_OverridesReachTheResolvedRequest checks the resolution
// precedence end to end: overrides win, defaults fill the rest, unknown
// override keys vanish without error.
func TestLaunchFlow_OverridesReachTheResolvedRequest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{"camera.launch.hcl": overrideDescription}

	// --- Act ---
	result := testutil.RunLaunchTest(t, files, func(cfg *app.Config) {
		cfg.Overrides = map[string]string{
			"serial":  "12345678",
			"ignored": "nobody-declared-me",
		}
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, `serial_number: "12345678"`)
	assert.Contains(t, result.Output, "node: chameleon_s", "camera_name default should still apply")
	assert.NotContains(t, result.Output, "nobody-declared-me")
}

// TestLaunchFlow_QuotedDefaultSurvivesUntouched pins the pass-through of the
// historically quoted serial default.
func TestLaunchFlow_QuotedDefaultSurvivesUntouched(t *testing.T) {
	t.Parallel()

	files := map[string]string{"camera.launch.hcl": overrideDescription}

	result := testutil.RunLaunchTest(t, files, nil)

	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, `serial_number: "'16387017'"`)
}
