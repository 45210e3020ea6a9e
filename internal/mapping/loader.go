package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*SchemaFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a SchemaFile.
func Parse(data []byte) (*SchemaFile, error) {
	var sf SchemaFile

	err := yaml.Unmarshal(data, &sf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&sf)

	return &sf, nil
}

// Marshal serializes a SchemaFile to YAML.
func Marshal(sf *SchemaFile) ([]byte, error) {
	return yaml.Marshal(sf)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(sf *SchemaFile) {
	if sf.Version == "" {
		sf.Version = "1"
	}

	for i := range sf.Classes {
		c := &sf.Classes[i]
		if c.Fold == "" {
			c.Fold = FoldNone
		}

		for j := range c.Attributes {
			a := &c.Attributes[j]
			if a.Type == "" {
				a.Type = "any"
			}
		}
	}
}
