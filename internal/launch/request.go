// Package launch turns a loaded launch description plus caller-supplied
// argument overrides into immutable process launch requests. This is the one
// pure stage of the pipeline: no I/O, no validation of argument values, no
// process table access. Everything fallible (locating the resource directory,
// finding the executable, the driver rejecting a serial number) belongs to
// the collaborators on either side.
package launch

import (
	"camlaunch/internal/config"
	"camlaunch/internal/params"
)

// OutputMode selects how the supervisor handles a spawned process's stdio.
type OutputMode int

const (
	// OutputCapture pipes stdout/stderr through the supervisor's logger so
	// the process output stays visible on the console.
	OutputCapture OutputMode = iota
	// OutputInherit hands the parent's streams straight to the child.
	OutputInherit
)

// String implements fmt.Stringer.
func (m OutputMode) String() string {
	if m == OutputInherit {
		return "inherit"
	}
	return "capture"
}

// outputModeFromKeyword maps the description-level keyword to a mode.
// "screen" is the historical spelling of capture; the empty string is the
// default. Unknown keywords are rejected by the loader before this runs.
func outputModeFromKeyword(keyword string) OutputMode {
	if keyword == "inherit" {
		return OutputInherit
	}
	return OutputCapture
}

// Request is the fully resolved description of one process to start. It is a
// read-only snapshot: the builder never aliases its parameter table, and
// consumers must not mutate it. A request is consumed at most once by the
// supervisor.
type Request struct {
	Package    string
	Executable string

	// NodeName is the display name the process runs under; it may itself be
	// a resolved argument (the chameleon description names its node after
	// the camera_name argument).
	NodeName string

	Parameters *params.Table
	Remappings []config.Remapping
	Output     OutputMode
}

// Equal reports value equality of two requests. go-cmp picks this method up.
func (r *Request) Equal(other *Request) bool {
	if other == nil {
		return false
	}
	if r.Package != other.Package ||
		r.Executable != other.Executable ||
		r.NodeName != other.NodeName ||
		r.Output != other.Output {
		return false
	}
	if !r.Parameters.Equal(other.Parameters) {
		return false
	}
	if len(r.Remappings) != len(other.Remappings) {
		return false
	}
	for i, remap := range r.Remappings {
		if other.Remappings[i] != remap {
			return false
		}
	}
	return true
}
