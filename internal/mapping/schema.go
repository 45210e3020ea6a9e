package mapping

import (
	"attribute-mapper/record"
)

// SchemaFile represents the root of a YAML schema file.
type SchemaFile struct {
	// Version of the schema format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Classes is the list of mapped classes.
	Classes []ClassDef `yaml:"classes"`
}

// ClassDef declares one class.
type ClassDef struct {
	// Name identifies the class (e.g., "Person").
	Name string `yaml:"name"`

	// Strict turns coercion failures into errors.
	Strict bool `yaml:"strict,omitempty"`

	// Fold selects how input keys are compared.
	Fold FoldMode `yaml:"fold,omitempty"`

	// Attributes in declaration order.
	Attributes []AttributeDef `yaml:"attributes"`
}

// AttributeDef declares one attribute.
type AttributeDef struct {
	// Name is the canonical attribute name.
	Name string `yaml:"name"`

	// Type is a type name understood by model.ParseType. Empty means any.
	Type string `yaml:"type,omitempty"`

	// From is the optional alternate source.
	From *FromDef `yaml:"from,omitempty"`

	// Default is used when the attribute is absent after remapping.
	Default any `yaml:"default,omitempty"`

	// Required fails construction when the attribute is absent.
	Required bool `yaml:"required,omitempty"`
}

// FromDef is the "from" option. Exactly one field is set in a valid file.
// YAML formats supported:
//   - Scalar: "surname"
//   - Mapping: {key: surname}, {path: address.street} or {compute: FullName}
type FromDef struct {
	Key     string `yaml:"key,omitempty"`
	Path    string `yaml:"path,omitempty"`
	Compute string `yaml:"compute,omitempty"`
}

// count returns how many of the alternatives are set.
func (f *FromDef) count() int {
	n := 0

	for _, s := range []string{f.Key, f.Path, f.Compute} {
		if s != "" {
			n++
		}
	}

	return n
}

// FoldMode names a record.KeyFolder.
type FoldMode string

const (
	FoldNone  FoldMode = "none"
	FoldCase  FoldMode = "case"
	FoldIdent FoldMode = "ident"
)

// IsValid returns true if the mode is a recognized value.
func (m FoldMode) IsValid() bool {
	return m == "" || m == FoldNone || m == FoldCase || m == FoldIdent
}

// Folder returns the key folder for the mode. Unknown modes compare exactly.
func (m FoldMode) Folder() record.KeyFolder {
	switch m {
	case FoldCase:
		return record.FoldCase
	case FoldIdent:
		return record.FoldIdent
	default:
		return record.FoldNone
	}
}

// Class returns the class declared under name.
func (sf *SchemaFile) Class(name string) (*ClassDef, bool) {
	for i := range sf.Classes {
		if sf.Classes[i].Name == name {
			return &sf.Classes[i], true
		}
	}

	return nil, false
}
