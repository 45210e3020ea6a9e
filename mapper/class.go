package mapper

import (
	"fmt"

	"github.com/google/uuid"

	"attribute-mapper/model"
	"attribute-mapper/record"
)

// Option configures a Class.
type Option func(*Class)

// WithStrict puts objects of the class in strict coercion mode.
func WithStrict(strict bool) Option {
	return func(c *Class) {
		c.strict = strict
	}
}

// WithKeyFolder sets how input keys are compared. Default is record.FoldNone.
func WithKeyFolder(fold record.KeyFolder) Option {
	return func(c *Class) {
		if fold != nil {
			c.fold = fold
		}
	}
}

// Class is a named, class-level attribute schema shared by its instances.
type Class struct {
	name   string
	set    *model.AttributeSet
	strict bool
	fold   record.KeyFolder
}

// NewClass creates a class. The class keeps its own copy of set.
func NewClass(name string, set *model.AttributeSet, opts ...Option) *Class {
	c := &Class{
		name: name,
		set:  set.Clone(),
		fold: record.FoldNone,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Schema returns the class-level attribute set. Callers must not modify it.
func (c *Class) Schema() *model.AttributeSet {
	return c.set
}

// Strict returns true if objects of the class coerce strictly.
func (c *Class) Strict() bool {
	return c.strict
}

// Folder returns the key folder used for input records.
func (c *Class) Folder() record.KeyFolder {
	return c.fold
}

// New constructs an instance from input.
func (c *Class) New(input map[string]any) (*Instance, error) {
	return c.NewFromRecord(record.FromMap(input, record.WithFolder(c.fold)))
}

// NewFromRecord constructs an instance from rec. The instance keeps a
// copy of rec, re-keyed with the class folder.
func (c *Class) NewFromRecord(rec *record.Record) (*Instance, error) {
	raw := record.New(record.WithFolder(c.fold))
	rec.Each(raw.Set)

	inst := &Instance{
		id:     uuid.New(),
		class:  c,
		schema: c.set,
		raw:    raw,
		nils:   Snapshot(raw),
	}

	mapped, err := Remap(raw, inst.schema, inst.nils)
	if err != nil {
		return nil, err
	}

	inst.mapped = mapped
	inst.obj = model.NewObject(c.set, model.WithStrict(c.strict))

	if err := inst.obj.Assign(mapped); err != nil {
		return nil, fmt.Errorf("constructing %s: %w", c.name, err)
	}

	return inst, nil
}
