package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Description is the unified, format-agnostic representation of one launch
// description: the set of declared arguments plus the nodes to start.
type Description struct {
	Arguments []*ArgumentDefinition
	Nodes     []*Node
}

// ArgumentDefinition declares a named, overridable string input. It is
// resolved exactly once per build: the caller's override if present, the
// declared default otherwise. Resolution is purely textual; the default is
// never parsed or normalized (a default of "'16387017'" keeps its quotes).
type ArgumentDefinition struct {
	Name        string
	Default     string
	Description string
}

// Node describes one executable to start.
type Node struct {
	// ID is the node's block label, used as the display name when the
	// description does not set one explicitly.
	ID         string
	Package    string
	Executable string

	// DisplayName is the optional `name` expression; typically a reference
	// to a declared argument, e.g. `arg.camera_name`.
	DisplayName hcl.Expression

	// Output selects how the supervisor handles the process's stdio:
	// "screen"/"capture" to stream through the logger, "inherit" to pass
	// the parent's streams straight through.
	Output string

	// ParameterLayers holds one layer per `parameters` block, in
	// declaration order. Layers are merged later-wins at build time.
	ParameterLayers []ParameterLayer

	Remappings []Remapping
}

// ParameterLayer is the ordered contents of a single `parameters` block.
type ParameterLayer []ParameterEntry

// ParameterEntry is one attribute in a parameters block, with its value kept
// as a raw expression for deferred evaluation.
type ParameterEntry struct {
	Key  string
	Expr hcl.Expression
}

// Remapping aliases a node's default interface name to the actual one used
// at runtime. From-names are unique per node.
type Remapping struct {
	From string
	To   string
}

// UsesShareDir reports whether any expression in the description references
// the share_dir variable. Descriptions that never touch it can be built
// without resolving a resource root.
func (d *Description) UsesShareDir() bool {
	for _, node := range d.Nodes {
		exprs := []hcl.Expression{}
		if node.DisplayName != nil {
			exprs = append(exprs, node.DisplayName)
		}
		for _, layer := range node.ParameterLayers {
			for _, entry := range layer {
				exprs = append(exprs, entry.Expr)
			}
		}
		for _, expr := range exprs {
			for _, traversal := range expr.Variables() {
				if traversal.RootName() == "share_dir" {
					return true
				}
			}
		}
	}
	return false
}

// Argument returns the declared argument with the given name, or nil.
func (d *Description) Argument(name string) *ArgumentDefinition {
	for _, arg := range d.Arguments {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}
