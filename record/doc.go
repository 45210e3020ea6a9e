// Package record provides the indifferent key store that holds raw input
// records before and during attribute remapping.
//
// Every key goes through a KeyFolder on insert and lookup, so spellings
// that fold to the same key address the same entry. The first spelling
// seen is kept for output. Nested maps are converted to *Record with the
// same folder, which lets compute functions read nested input without
// caring how the caller spelled its keys:
//
//	r := record.FromMap(map[string]any{
//		"Address": map[string]any{"Street": "Main St"},
//	}, record.WithFolder(record.FoldCase))
//
//	street, _ := r.Lookup("address.street") // "Main St"
//
// A Record is not safe for concurrent mutation.
package record
