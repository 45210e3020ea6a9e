package common

import (
	"maps"
	"slices"
)

// UnknownStr is the String() value of enum values outside their range.
const UnknownStr = "unknown"

// SortedKeys returns the keys of m in ascending order.
// Go map iteration order is random, so anything that turns a map into
// ordered output goes through here.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	return slices.Sorted(maps.Keys(m))
}

