package mapping

import (
	"errors"
	"fmt"

	"attribute-mapper/internal/diagnostic"
	"attribute-mapper/mapper"
	"attribute-mapper/model"
)

// Build validates sf and turns every class into a mapper.Class, keyed by
// name. When validation reports errors the map is nil.
func Build(sf *SchemaFile, computes *ComputeRegistry) (map[string]*mapper.Class, *diagnostic.Diagnostics) {
	if computes == nil {
		computes = NewComputeRegistry()
	}

	diags := Validate(sf, computes)
	if diags.HasErrors() {
		return nil, diags
	}

	classes := make(map[string]*mapper.Class, len(sf.Classes))

	for i := range sf.Classes {
		cd := &sf.Classes[i]

		attrs, err := Attributes(cd, computes)
		if err != nil {
			diags.AddError("build_failed", err.Error(), cd.Name, "")
			return nil, diags
		}

		classes[cd.Name] = mapper.NewClass(cd.Name, model.NewAttributeSet(attrs...),
			mapper.WithStrict(cd.Strict),
			mapper.WithKeyFolder(cd.Fold.Folder()),
		)
	}

	return classes, diags
}

// Attributes converts the attribute definitions of cd into model
// attributes, in order. A nil registry is treated as empty.
func Attributes(cd *ClassDef, computes *ComputeRegistry) ([]model.Attribute, error) {
	if computes == nil {
		computes = NewComputeRegistry()
	}

	attrs := make([]model.Attribute, 0, len(cd.Attributes))

	for i := range cd.Attributes {
		ad := &cd.Attributes[i]

		typ, err := model.ParseType(ad.Type)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", ad.Name, err)
		}

		from, err := buildSource(ad.From, computes)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", ad.Name, err)
		}

		attrs = append(attrs, model.Attribute{
			Name:     ad.Name,
			Type:     typ,
			From:     from,
			Default:  ad.Default,
			Required: ad.Required,
		})
	}

	return attrs, nil
}

func buildSource(from *FromDef, computes *ComputeRegistry) (model.Source, error) {
	switch {
	case from == nil:
		return model.Source{}, nil
	case from.Key != "":
		return model.RenameFrom(from.Key), nil
	case from.Path != "":
		return model.ComputeFrom(PathCompute(from.Path)), nil
	case from.Compute != "":
		fn := computes.Get(from.Compute)
		if fn == nil {
			return model.Source{}, fmt.Errorf("compute %q is not registered", from.Compute)
		}

		return model.ComputeFrom(fn), nil
	default:
		return model.Source{}, errors.New("empty from")
	}
}
