// Package schema holds the HCL decode structures for .launch.hcl files. These
// structs mirror the on-disk syntax one to one; the hcl package translates
// them into the format-agnostic config model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Argument represents an `argument "name" { ... }` block: a declared,
// overridable string input with a default value.
type Argument struct {
	Name        string `hcl:"name,label"`
	Default     string `hcl:"default"`
	Description string `hcl:"description,optional"`
}

// ParametersBlock represents one `parameters { ... }` block. Its attributes
// are free-form (each camera defines its own set), so the body is kept raw
// and extracted with JustAttributes during translation.
type ParametersBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// RemapBlock represents a `remap { from = ... to = ... }` block.
type RemapBlock struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// Node represents a `node "id" { ... }` block describing one executable to
// start. The `name` attribute stays an expression so it can reference a
// declared argument (arg.camera_name).
type Node struct {
	ID          string             `hcl:"id,label"`
	Package     string             `hcl:"package"`
	Executable  string             `hcl:"executable"`
	DisplayName hcl.Expression     `hcl:"name,optional"`
	Output      string             `hcl:"output,optional"`
	Parameters  []*ParametersBlock `hcl:"parameters,block"`
	Remaps      []*RemapBlock      `hcl:"remap,block"`
}

// LaunchFile represents the top-level structure of one .launch.hcl file.
type LaunchFile struct {
	Arguments []*Argument `hcl:"argument,block"`
	Nodes     []*Node     `hcl:"node,block"`
}
