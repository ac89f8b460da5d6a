package rule

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseDocument parses a rule document from bytes. Both YAML and JSON are
// accepted: JSON is valid YAML flow syntax, so a single decoder serves
// both of the formats SPEC_FULL.md §A names for rule documents.
func ParseDocument(data []byte) (*PathRules, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRuleParse, err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrRuleParse)
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: root must be a mapping", ErrRuleParse)
	}

	var raw any
	if err := mapping.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRuleParse, err)
	}
	if err := validateDocumentShape(raw); err != nil {
		return nil, err
	}

	return parseMapping(mapping)
}

func parseMapping(m *yaml.Node) (*PathRules, error) {
	node := newNode()
	for i := 0; i+1 < len(m.Content); i += 2 {
		keyNode, valNode := m.Content[i], m.Content[i+1]
		key := keyNode.Value

		switch key {
		case ".read", ".write", ".validate":
			if valNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: %s must be a string predicate", ErrRuleParse, key)
			}
			switch key {
			case ".read":
				node.Read = valNode.Value
			case ".write":
				node.Write = valNode.Value
			case ".validate":
				node.Validate = valNode.Value
			}
		default:
			if valNode.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("%w: %s must be a mapping", ErrRuleParse, key)
			}
			child, err := parseMapping(valNode)
			if err != nil {
				return nil, err
			}
			node.Children[key] = child
			node.ChildNames = append(node.ChildNames, key)
		}
	}
	return node, nil
}
