package supervisor

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"camlaunch/internal/launch"
)

// Preview writes the fully resolved launch requests as YAML documents, one
// per node, without spawning anything. This backs the CLI's dry-run mode.
func Preview(w io.Writer, requests []*launch.Request) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()

	for _, req := range requests {
		doc, err := previewNode(req)
		if err != nil {
			return err
		}
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode preview for %q: %w", req.NodeName, err)
		}
	}
	return nil
}

// previewNode builds one request's YAML document, keeping parameter order.
func previewNode(req *launch.Request) (*yaml.Node, error) {
	parameters, err := paramsNode(req.Parameters)
	if err != nil {
		return nil, fmt.Errorf("request %q: %w", req.NodeName, err)
	}

	remappings := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, remap := range req.Remappings {
		remappings.Content = append(remappings.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: remap.From},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: remap.To},
		)
	}

	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	appendPair := func(key string, value *yaml.Node) {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, value)
	}
	str := func(v string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
	}

	appendPair("node", str(req.NodeName))
	appendPair("package", str(req.Package))
	appendPair("executable", str(req.Executable))
	appendPair("output", str(req.Output.String()))
	appendPair("parameters", parameters)
	appendPair("remappings", remappings)
	return doc, nil
}
