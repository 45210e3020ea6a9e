package mapping

import (
	"fmt"

	"attribute-mapper/internal/diagnostic"
	"attribute-mapper/internal/match"
	"attribute-mapper/model"
	"attribute-mapper/record"
)

const maxSuggestions = 3

// Validate checks a schema file against the compute registry.
// A nil registry is treated as empty.
func Validate(sf *SchemaFile, computes *ComputeRegistry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if sf == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "")
		return res
	}

	if computes == nil {
		computes = NewComputeRegistry()
	}

	if sf.Version != "1" {
		res.AddWarning("unknown_version", fmt.Sprintf("schema version %q is not known, reading as version 1", sf.Version), "", "")
	}

	seenClasses := map[string]struct{}{}

	for i := range sf.Classes {
		cd := &sf.Classes[i]

		if cd.Name == "" {
			res.AddError("class_name_empty", fmt.Sprintf("class #%d has no name", i+1), "", "")
			continue
		}

		if _, ok := seenClasses[cd.Name]; ok {
			res.AddError("duplicate_class", fmt.Sprintf("duplicate class %q", cd.Name), cd.Name, "")
			continue
		}

		seenClasses[cd.Name] = struct{}{}

		validateClass(res, cd, computes)
	}

	return res
}

func validateClass(res *diagnostic.Diagnostics, cd *ClassDef, computes *ComputeRegistry) {
	if !cd.Fold.IsValid() {
		res.AddError("invalid_fold", fmt.Sprintf("invalid fold mode %q", cd.Fold), cd.Name, "",
			string(FoldNone), string(FoldCase), string(FoldIdent))
	}

	if len(cd.Attributes) == 0 {
		res.AddInfo("no_attributes", "class declares no attributes", cd.Name, "")
	}

	seen := map[string]struct{}{}

	for i := range cd.Attributes {
		ad := &cd.Attributes[i]

		if ad.Name == "" {
			res.AddError("attribute_name_empty", fmt.Sprintf("attribute #%d has no name", i+1), cd.Name, "")
			continue
		}

		if _, ok := seen[ad.Name]; ok {
			res.AddError("duplicate_attribute", fmt.Sprintf("duplicate attribute %q", ad.Name), cd.Name, ad.Name)
			continue
		}

		seen[ad.Name] = struct{}{}

		if _, err := model.ParseType(ad.Type); err != nil {
			res.AddError("unknown_type", err.Error(), cd.Name, ad.Name,
				match.Suggest(ad.Type, model.TypeNames(), maxSuggestions)...)
		}

		if ad.From != nil {
			validateFrom(res, cd, ad, computes)
		}
	}
}

func validateFrom(res *diagnostic.Diagnostics, cd *ClassDef, ad *AttributeDef, computes *ComputeRegistry) {
	from := ad.From

	switch from.count() {
	case 0:
		res.AddError("from_empty", "from must name a key, a path or a compute", cd.Name, ad.Name)
		return
	case 1:
	default:
		res.AddError("from_ambiguous", "from must set only one of key, path and compute", cd.Name, ad.Name)
		return
	}

	switch {
	case from.Key != "":
		if cd.Fold.Folder()(from.Key) == cd.Fold.Folder()(ad.Name) {
			res.AddWarning("rename_to_self", fmt.Sprintf("from key %q is the attribute itself", from.Key), cd.Name, ad.Name)
		}
	case from.Path != "":
		if _, err := record.ParsePath(from.Path); err != nil {
			res.AddError("invalid_path", err.Error(), cd.Name, ad.Name)
		}
	case from.Compute != "":
		if !computes.Has(from.Compute) {
			res.AddError("unknown_compute", fmt.Sprintf("compute %q is not registered", from.Compute), cd.Name, ad.Name,
				match.Suggest(from.Compute, computes.Names(), maxSuggestions)...)
		}
	}
}
