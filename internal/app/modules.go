package app

import (
	"camlaunch/cameras/chameleon"
	"camlaunch/internal/registry"
)

// builtinCameras lists every camera description compiled into the binary.
// New cameras register here.
var builtinCameras = []registry.Module{
	&chameleon.Module{},
}
