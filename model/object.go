package model

import (
	"fmt"
	"maps"
	"strings"

	"attribute-mapper/record"
)

// ObjectOption configures an Object.
type ObjectOption func(*Object)

// WithStrict makes coercion failures fail assignment with ErrCoercion.
// Without it the uncoerced value is stored.
func WithStrict(strict bool) ObjectOption {
	return func(o *Object) {
		o.strict = strict
	}
}

// Object holds attribute values for one instance of a class.
type Object struct {
	set    *AttributeSet
	values map[string]any
	strict bool
}

// NewObject creates an object with every attribute of set unassigned (nil).
func NewObject(set *AttributeSet, opts ...ObjectOption) *Object {
	o := &Object{
		set:    set,
		values: make(map[string]any, set.Len()),
	}

	for _, opt := range opts {
		opt(o)
	}

	for _, name := range set.Names() {
		o.values[name] = nil
	}

	return o
}

// Schema returns the attribute set the object currently follows.
func (o *Object) Schema() *AttributeSet {
	return o.set
}

// Strict returns true if the object is in strict mode.
func (o *Object) Strict() bool {
	return o.strict
}

// Has returns true if name is a declared attribute.
func (o *Object) Has(name string) bool {
	return o.set.Has(name)
}

// Get returns the value of a declared attribute.
func (o *Object) Get(name string) (any, error) {
	if !o.set.Has(name) {
		return nil, unknownAttributeError(name, o.set.Names())
	}

	return o.values[name], nil
}

// Set coerces v to the attribute's type and stores it.
func (o *Object) Set(name string, v any) error {
	attr, ok := o.set.Get(name)
	if !ok {
		return unknownAttributeError(name, o.set.Names())
	}

	coerced, err := attr.Type.Coerce(v)
	if err != nil {
		if o.strict {
			return fmt.Errorf("%w: attribute %q to %s: %w", ErrCoercion, name, attr.Type, err)
		}

		coerced = record.Plain(v)
	}

	o.values[name] = coerced

	return nil
}

// Attributes returns a copy of all attribute values.
func (o *Object) Attributes() map[string]any {
	return maps.Clone(o.values)
}

// Assign assigns every declared attribute from rec.
func (o *Object) Assign(rec *record.Record) error {
	return o.AssignNames(rec, o.set.Names())
}

// AssignNames assigns the named attributes from rec. A present key is
// coerced and stored, nil included. An absent key takes the default, or
// leaves the attribute nil. Absent required attributes without a default
// are collected into one ErrRequiredAttributeMissing error after the
// other names have been assigned.
func (o *Object) AssignNames(rec *record.Record, names []string) error {
	var missing []string

	for _, name := range names {
		attr, ok := o.set.Get(name)
		if !ok {
			return unknownAttributeError(name, o.set.Names())
		}

		v, present := rec.Get(name)
		if !present {
			switch {
			case attr.HasDefault():
				v = attr.DefaultValue()
			case attr.Required:
				missing = append(missing, name)
				continue
			default:
				o.values[name] = nil
				continue
			}
		}

		if err := o.Set(name, v); err != nil {
			return err
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrRequiredAttributeMissing, strings.Join(missing, ", "))
	}

	return nil
}

// Redefine switches the object to set, which must contain every attribute
// of the current set. Newly declared attributes start nil.
func (o *Object) Redefine(set *AttributeSet) {
	o.set = set

	for _, name := range set.Names() {
		if _, ok := o.values[name]; !ok {
			o.values[name] = nil
		}
	}
}
