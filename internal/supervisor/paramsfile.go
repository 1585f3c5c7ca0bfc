package supervisor

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"camlaunch/internal/params"
)

// paramsNode builds an ordered YAML mapping from a parameter table. yaml.Node
// is used instead of a Go map so the file reads in the same order the
// description declares.
func paramsNode(table *params.Table) (*yaml.Node, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, entry := range table.Entries() {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Key}
		valNode, err := scalarNode(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", entry.Key, err)
		}
		mapping.Content = append(mapping.Content, keyNode, valNode)
	}
	return mapping, nil
}

// scalarNode converts one cty scalar into a YAML scalar node. Strings are
// always quoted so a value like "'16387017'" or "100" survives the round
// trip as text rather than being reparsed as a number.
func scalarNode(val cty.Value) (*yaml.Node, error) {
	switch val.Type() {
	case cty.Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(val.True())}, nil
	case cty.Number:
		bf := val.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(i, 10)}, nil
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: bf.Text('f', -1)}, nil
	case cty.String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: val.AsString()}, nil
	default:
		return nil, fmt.Errorf("unsupported parameter type %s", val.Type().FriendlyName())
	}
}

// RenderParams renders the merged parameter table as the YAML params file
// handed to the driver process.
func RenderParams(table *params.Table) ([]byte, error) {
	node, err := paramsNode(table)
	if err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return []byte("{}\n"), nil
	}
	return yaml.Marshal(node)
}
