package hcl

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"

	"camlaunch/internal/config"
	"camlaunch/internal/schema"
)

// outputKeywords are the accepted values of a node's `output` attribute.
// "screen" is the historical spelling of "capture" and means the same thing.
var outputKeywords = map[string]bool{
	"":        true,
	"screen":  true,
	"capture": true,
	"inherit": true,
}

// translateArgument converts an HCL argument block into the agnostic model.
func translateArgument(a *schema.Argument) *config.ArgumentDefinition {
	return &config.ArgumentDefinition{
		Name:        a.Name,
		Default:     a.Default,
		Description: a.Description,
	}
}

// translateNode converts an HCL node block into the agnostic model. Parameter
// attributes keep their raw expressions; only structure is checked here.
func translateNode(n *schema.Node, filename string) (*config.Node, error) {
	if !outputKeywords[n.Output] {
		return nil, fmt.Errorf("node %q in %s: invalid output %q (want \"screen\", \"capture\" or \"inherit\")", n.ID, filename, n.Output)
	}

	node := &config.Node{
		ID:          n.ID,
		Package:     n.Package,
		Executable:  n.Executable,
		DisplayName: n.DisplayName,
		Output:      n.Output,
	}

	for _, block := range n.Parameters {
		layer, err := translateParameters(block, n.ID, filename)
		if err != nil {
			return nil, err
		}
		node.ParameterLayers = append(node.ParameterLayers, layer)
	}

	seen := make(map[string]bool, len(n.Remaps))
	for _, remap := range n.Remaps {
		if remap.From == "" || remap.To == "" {
			return nil, fmt.Errorf("node %q in %s: remap requires non-empty from and to", n.ID, filename)
		}
		if seen[remap.From] {
			return nil, fmt.Errorf("node %q in %s: duplicate remap for %q", n.ID, filename, remap.From)
		}
		seen[remap.From] = true
		node.Remappings = append(node.Remappings, config.Remapping{From: remap.From, To: remap.To})
	}

	return node, nil
}

// translateParameters extracts one parameters block as an ordered layer. HCL
// hands attributes back as a map, so declaration order is recovered from the
// source ranges.
func translateParameters(block *schema.ParametersBlock, nodeID, filename string) (config.ParameterLayer, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("node %q in %s: invalid parameters block: %w", nodeID, filename, diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].NameRange.Start.Byte < ordered[j].NameRange.Start.Byte
	})

	layer := make(config.ParameterLayer, 0, len(ordered))
	for _, attr := range ordered {
		layer = append(layer, config.ParameterEntry{Key: attr.Name, Expr: attr.Expr})
	}
	return layer, nil
}

// validateDescription runs the whole-description checks that can only happen
// after every file is merged: unique argument and node names, and every
// expression referencing only declared arguments or share_dir.
func validateDescription(desc *config.Description) error {
	argNames := make(map[string]bool, len(desc.Arguments))
	for _, arg := range desc.Arguments {
		if arg.Name == "" {
			return fmt.Errorf("argument with empty name")
		}
		if argNames[arg.Name] {
			return fmt.Errorf("argument %q declared more than once", arg.Name)
		}
		argNames[arg.Name] = true
	}

	nodeIDs := make(map[string]bool, len(desc.Nodes))
	for _, node := range desc.Nodes {
		if nodeIDs[node.ID] {
			return fmt.Errorf("node %q declared more than once", node.ID)
		}
		nodeIDs[node.ID] = true

		if node.DisplayName != nil {
			if err := validateReferences(node.DisplayName, argNames, node.ID, "name"); err != nil {
				return err
			}
		}
		for _, layer := range node.ParameterLayers {
			for _, entry := range layer {
				if err := validateReferences(entry.Expr, argNames, node.ID, entry.Key); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// validateReferences checks that an expression only refers to arg.<declared>
// or share_dir. Catching a typo here, at load time, beats a confusing
// evaluation error at build time.
func validateReferences(expr hcl.Expression, argNames map[string]bool, nodeID, attrName string) error {
	for _, traversal := range expr.Variables() {
		switch root := traversal.RootName(); root {
		case "share_dir":
			// Always in scope.
		case "arg":
			if len(traversal) < 2 {
				return fmt.Errorf("node %q, attribute %q: bare 'arg' reference; use arg.<name>", nodeID, attrName)
			}
			attr, ok := traversal[1].(hcl.TraverseAttr)
			if !ok {
				return fmt.Errorf("node %q, attribute %q: arguments must be referenced as arg.<name>", nodeID, attrName)
			}
			if !argNames[attr.Name] {
				return fmt.Errorf("node %q, attribute %q: reference to undeclared argument %q", nodeID, attrName, attr.Name)
			}
		default:
			return fmt.Errorf("node %q, attribute %q: unknown variable %q (only arg.<name> and share_dir are in scope)", nodeID, attrName, root)
		}
	}
	return nil
}
