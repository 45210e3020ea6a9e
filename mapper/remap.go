package mapper

import (
	"attribute-mapper/model"
	"attribute-mapper/record"
)

// Remap produces the canonical record for set from raw. raw is not modified.
// Errors returned by compute functions are returned as they are.
func Remap(raw *record.Record, set *model.AttributeSet, nils NilSet) (*record.Record, error) {
	rec := raw.Clone()

	for _, attr := range AttributesByRenameFrom(set) {
		if rec.Has(attr.Name) {
			continue
		}

		v, _ := rec.Delete(attr.From.Key())
		rec.Set(attr.Name, v)
	}

	// Computes run after renames so they can read renamed attributes.
	for _, attr := range AttributesByCompute(set) {
		v, err := attr.From.Func()(rec)
		if err != nil {
			return nil, err
		}

		rec.Set(attr.Name, v)
	}

	for _, key := range rec.Keys() {
		if record.IsNil(rec.Value(key)) && !nils.Contains(key) {
			rec.Delete(key)
		}
	}

	return rec, nil
}
