// Package chameleon provides the built-in launch description for the FLIR
// Chameleon camera driven by the flir_spinnaker_ros2 driver.
//
// The description carries the camera's fixed parameter defaults in its first
// parameters block and derives the driver's parameter_file path and serial
// number from share_dir and the declared arguments in its second block. The
// default serial keeps its embedded single quotes verbatim; whether a
// downstream consumer strips them is an open question inherited from the
// original deployment, so the value is passed through untouched.
package chameleon

import (
	_ "embed"

	"camlaunch/internal/registry"
)

//go:embed chameleon.launch.hcl
var source []byte

// Name is the registry name of this description.
const Name = "chameleon"

// Module implements registry.Module.
type Module struct{}

// Register registers the embedded description.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Name, "chameleon.launch.hcl", source)
}
