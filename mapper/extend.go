package mapper

import (
	"fmt"

	"github.com/samber/lo"

	"attribute-mapper/model"
)

// Extend adds attrs to the instance schema and assigns them from the
// original input. Attributes already assigned are left as they are, and
// the class schema and other instances are not affected. A declaration
// in attrs replaces an existing one with the same name, and that
// attribute is reassigned.
//
// Compute functions of the whole merged schema run again. On error the
// instance may hold the merged schema with only some attributes assigned.
func (i *Instance) Extend(attrs ...model.Attribute) error {
	if len(attrs) == 0 {
		return nil
	}

	merged := i.schema.Merge(attrs...)
	i.schema = merged
	i.forked = true
	i.obj.Redefine(merged)

	mapped, err := Remap(i.raw, merged, i.nils)
	if err != nil {
		return err
	}

	i.mapped = mapped

	names := lo.Uniq(lo.Map(attrs, func(a model.Attribute, _ int) string {
		return a.Name
	}))

	if err := i.obj.AssignNames(mapped, names); err != nil {
		return fmt.Errorf("extending %s: %w", i.class.name, err)
	}

	return nil
}
