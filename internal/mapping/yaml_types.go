package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for FromDef.
// Accepts a scalar rename key or a mapping with key, path or compute.
func (f *FromDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var key string

		if err := node.Decode(&key); err != nil {
			return err
		}

		*f = FromDef{Key: key}

		return nil

	case yaml.MappingNode:
		// Alias type drops the method set so Decode does not recurse.
		type plain FromDef

		var p plain

		if err := node.Decode(&p); err != nil {
			return err
		}

		*f = FromDef(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected string or mapping for from, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for FromDef.
// A rename is written back in scalar form.
func (f FromDef) MarshalYAML() (any, error) {
	if f.Key != "" && f.Path == "" && f.Compute == "" {
		return f.Key, nil
	}

	type plain FromDef

	return plain(f), nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
