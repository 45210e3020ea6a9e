package mapper

import (
	"github.com/google/uuid"

	"attribute-mapper/model"
	"attribute-mapper/record"
)

// Instance is one object built by a Class, together with the input it was
// built from.
type Instance struct {
	id     uuid.UUID
	class  *Class
	schema *model.AttributeSet
	forked bool
	raw    *record.Record
	nils   NilSet
	mapped *record.Record
	obj    *model.Object
}

// ID returns the identifier assigned at construction.
func (i *Instance) ID() uuid.UUID {
	return i.id
}

// Class returns the class the instance was built from.
func (i *Instance) Class() *Class {
	return i.class
}

// Schema returns the effective attribute set: the class schema, or the
// instance fork after Extend.
func (i *Instance) Schema() *model.AttributeSet {
	return i.schema
}

// Forked returns true once the instance owns a schema of its own.
func (i *Instance) Forked() bool {
	return i.forked
}

// Raw returns a copy of the input record.
func (i *Instance) Raw() *record.Record {
	return i.raw.Clone()
}

// Mapped returns a copy of the most recent canonical record.
func (i *Instance) Mapped() *record.Record {
	return i.mapped.Clone()
}

// NilKeys returns the input keys that held an explicit nil.
func (i *Instance) NilKeys() []string {
	return i.nils.Keys()
}

// Has returns true if name is a declared attribute of the instance.
func (i *Instance) Has(name string) bool {
	return i.obj.Has(name)
}

// Get returns the value of an attribute. Undeclared names fail with
// model.ErrUnknownAttribute.
func (i *Instance) Get(name string) (any, error) {
	return i.obj.Get(name)
}

// Set assigns an attribute value.
func (i *Instance) Set(name string, v any) error {
	return i.obj.Set(name, v)
}

// Attributes returns a copy of all attribute values.
func (i *Instance) Attributes() map[string]any {
	return i.obj.Attributes()
}
