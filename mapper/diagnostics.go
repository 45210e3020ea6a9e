package mapper

import (
	"github.com/samber/lo"

	"attribute-mapper/record"
)

// UnprocessedAttributeNames returns the keys of the canonical record that
// no declared attribute consumes. These are input keys the object has no
// accessor for, kept so a later Extend can pick them up.
func (i *Instance) UnprocessedAttributeNames() []string {
	declared := lo.SliceToMap(i.schema.Names(), func(name string) (string, struct{}) {
		return i.raw.FoldKey(name), struct{}{}
	})

	return lo.Filter(i.mapped.Keys(), func(key string, _ int) bool {
		_, ok := declared[i.raw.FoldKey(key)]
		return !ok
	})
}

// NilValuedAttributeNames returns the declared attributes whose current
// value is nil, in declaration order.
func (i *Instance) NilValuedAttributeNames() []string {
	values := i.obj.Attributes()

	return lo.Filter(i.schema.Names(), func(name string, _ int) bool {
		return record.IsNil(values[name])
	})
}
