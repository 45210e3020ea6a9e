package model

import (
	"fmt"

	"attribute-mapper/internal/common"
	"attribute-mapper/record"
)

// SourceKind tags a Source.
type SourceKind int

const (
	SourceNone    SourceKind = iota // attribute is read under its own name
	SourceRename                    // attribute is read from another key, which is consumed
	SourceCompute                   // attribute is computed from the whole record
)

// String returns a human-readable representation of the kind.
func (k SourceKind) String() string {
	switch k {
	case SourceNone:
		return "none"
	case SourceRename:
		return "rename"
	case SourceCompute:
		return "compute"
	default:
		return common.UnknownStr
	}
}

// ComputeFunc derives an attribute value from the entire raw record.
// It may be called more than once per instance and must not keep state
// between calls. Errors are returned to the caller of the mapping
// operation untouched.
type ComputeFunc func(r *record.Record) (any, error)

// Source is the "from" option of an attribute. The zero value means the
// attribute has no alternate source.
type Source struct {
	kind SourceKind
	key  string
	fn   ComputeFunc
}

// RenameFrom reads the attribute from key and removes key from the record.
func RenameFrom(key string) Source {
	return Source{kind: SourceRename, key: key}
}

// ComputeFrom computes the attribute with fn.
func ComputeFrom(fn ComputeFunc) Source {
	if fn == nil {
		panic("compute source function cannot be nil")
	}

	return Source{kind: SourceCompute, fn: fn}
}

// Kind returns the tag of the source.
func (s Source) Kind() SourceKind { return s.kind }

// Key returns the rename key, empty for other kinds.
func (s Source) Key() string { return s.key }

// Func returns the compute function, nil for other kinds.
func (s Source) Func() ComputeFunc { return s.fn }

// IsZero returns true if no source is set.
func (s Source) IsZero() bool { return s.kind == SourceNone }

// String implements fmt.Stringer.
func (s Source) String() string {
	if s.kind == SourceRename {
		return fmt.Sprintf("rename(%s)", s.key)
	}

	return s.kind.String()
}
