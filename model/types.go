package model

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"attribute-mapper/internal/common"
	"attribute-mapper/record"
)

// Type is the declared type of an attribute.
type Type int

const (
	Any Type = iota
	String
	Integer
	Float
	Boolean
	Time
	Map
	Slice
)

// String returns the schema-file name of the type.
func (t Type) String() string {
	switch t {
	case Any:
		return "any"
	case String:
		return "string"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Boolean:
		return "boolean"
	case Time:
		return "time"
	case Map:
		return "map"
	case Slice:
		return "slice"
	default:
		return common.UnknownStr
	}
}

var typeNames = map[string]Type{
	"":        Any,
	"any":     Any,
	"string":  String,
	"integer": Integer,
	"int":     Integer,
	"float":   Float,
	"boolean": Boolean,
	"bool":    Boolean,
	"time":    Time,
	"map":     Map,
	"hash":    Map,
	"slice":   Slice,
	"array":   Slice,
}

// ParseType resolves a type name as written in a schema file.
// An empty name is Any.
func ParseType(name string) (Type, error) {
	t, ok := typeNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Any, fmt.Errorf("unknown type %q", name)
	}

	return t, nil
}

// TypeNames returns the accepted type names.
func TypeNames() []string {
	names := common.SortedKeys(typeNames)

	return names[1:] // drop ""
}

// Coerce converts v to the Go representation of the type:
// string, int, float64, bool, time.Time, map[string]any or []any.
// Nil is never coerced.
func (t Type) Coerce(v any) (any, error) {
	if record.IsNil(v) {
		return nil, nil
	}

	switch t {
	case Any:
		return record.Plain(v), nil
	case String:
		return cast.ToStringE(v)
	case Integer:
		return cast.ToIntE(v)
	case Float:
		return cast.ToFloat64E(v)
	case Boolean:
		return cast.ToBoolE(v)
	case Time:
		return cast.ToTimeE(v)
	case Map:
		if r, ok := v.(*record.Record); ok {
			return r.Map(), nil
		}

		return cast.ToStringMapE(v)
	case Slice:
		s, err := cast.ToSliceE(record.Plain(v))
		if err != nil {
			return nil, err
		}

		return s, nil
	default:
		return nil, fmt.Errorf("cannot coerce to %s", t)
	}
}
