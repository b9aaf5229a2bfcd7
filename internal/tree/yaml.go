package tree

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads one YAML document from r, keeping mapping key order.
// Scalars other than strings and sequences become JSON leaves.
func DecodeYAML(r io.Reader) (*Node, error) {
	var doc yaml.Node

	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformedYAML)
		}

		return nil, fmt.Errorf("%w: %v", ErrMalformedYAML, err)
	}

	n, err := fromYAML(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedYAML, err)
	}

	return n, nil
}

func fromYAML(node *yaml.Node) (*Node, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}

		return fromYAML(node.Content[0])

	case yaml.AliasNode:
		return fromYAML(node.Alias)

	case yaml.MappingNode:
		branch := NewBranch()

		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key is not a scalar", key.Line)
			}

			child, err := fromYAML(val)
			if err != nil {
				return nil, err
			}

			branch.Set(key.Value, child)
		}

		return branch, nil

	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!str":
			return String(node.Value), nil
		case "!!null":
			return Null(), nil
		}
	}

	var v any

	err := node.Decode(&v)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", node.Line, err)
	}

	raw, err := encodeValue(v)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", node.Line, err)
	}

	return Leaf(raw), nil
}
