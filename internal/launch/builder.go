package launch

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"camlaunch/internal/config"
	"camlaunch/internal/ctxlog"
	"camlaunch/internal/params"
)

// Build resolves a launch description into one request per node.
//
// Argument resolution is purely textual: an override wins if present, the
// declared default applies otherwise, and the value is never parsed or
// normalized. Overrides for names the description does not declare are
// ignored. The resourceRoot is exposed to expressions verbatim as share_dir;
// no existence check happens here.
//
// Build is deterministic: the same description, resourceRoot and overrides
// always yield value-equal requests.
func Build(ctx context.Context, desc *config.Description, resourceRoot string, overrides map[string]string) ([]*Request, error) {
	logger := ctxlog.FromContext(ctx)

	resolved := resolveArguments(desc.Arguments, overrides)
	logger.Debug("Launch arguments resolved.", "count", len(resolved))

	argVals := make(map[string]cty.Value, len(resolved))
	for name, value := range resolved {
		argVals[name] = cty.StringVal(value)
	}
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"arg":       cty.ObjectVal(argVals),
			"share_dir": cty.StringVal(resourceRoot),
		},
	}

	requests := make([]*Request, 0, len(desc.Nodes))
	for _, node := range desc.Nodes {
		request, err := buildNode(node, evalCtx)
		if err != nil {
			return nil, err
		}
		logger.Debug("Launch request assembled.",
			"node", request.NodeName,
			"executable", request.Executable,
			"parameters", request.Parameters.Len(),
		)
		requests = append(requests, request)
	}
	return requests, nil
}

// resolveArguments applies the override-or-default rule once per declared
// argument. Unknown override keys are dropped silently.
func resolveArguments(args []*config.ArgumentDefinition, overrides map[string]string) map[string]string {
	resolved := make(map[string]string, len(args))
	for _, arg := range args {
		if value, ok := overrides[arg.Name]; ok {
			resolved[arg.Name] = value
		} else {
			resolved[arg.Name] = arg.Default
		}
	}
	return resolved
}

// buildNode evaluates one node's expressions and merges its parameter layers
// into a single table, in declaration order, later layers winning.
func buildNode(node *config.Node, evalCtx *hcl.EvalContext) (*Request, error) {
	name := node.ID
	if node.DisplayName != nil {
		val, err := evaluateString(node.DisplayName, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("node %q: name: %w", node.ID, err)
		}
		name = val
	}

	layers := make([]*params.Table, 0, len(node.ParameterLayers))
	for _, layer := range node.ParameterLayers {
		table := params.New()
		for _, entry := range layer {
			val, err := evaluateScalar(entry.Expr, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("node %q: parameter %q: %w", node.ID, entry.Key, err)
			}
			table.Set(entry.Key, val)
		}
		layers = append(layers, table)
	}

	remappings := make([]config.Remapping, len(node.Remappings))
	copy(remappings, node.Remappings)

	return &Request{
		Package:    node.Package,
		Executable: node.Executable,
		NodeName:   name,
		Parameters: params.Merge(layers...),
		Remappings: remappings,
		Output:     outputModeFromKeyword(node.Output),
	}, nil
}

// evaluateScalar evaluates an expression and requires a known, non-null
// scalar result: bool, number or string.
func evaluateScalar(expr hcl.Expression, evalCtx *hcl.EvalContext) (cty.Value, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	if val.IsNull() {
		return cty.NilVal, fmt.Errorf("value must not be null")
	}
	if !val.IsKnown() || !val.Type().IsPrimitiveType() {
		return cty.NilVal, fmt.Errorf("value must be a bool, number or string, got %s", val.Type().FriendlyName())
	}
	return val, nil
}

// evaluateString evaluates an expression and converts the result to a string.
func evaluateString(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	val, err := evaluateScalar(expr, evalCtx)
	if err != nil {
		return "", err
	}
	converted, convErr := convert.Convert(val, cty.String)
	if convErr != nil {
		return "", fmt.Errorf("cannot convert %s to string: %w", val.Type().FriendlyName(), convErr)
	}
	return converted.AsString(), nil
}
