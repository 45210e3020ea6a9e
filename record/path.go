package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParsePath splits a dotted lookup path into its segments.
// Supports: "street", "address.street", "phones.0.number".
func ParsePath(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}

	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if strings.TrimSpace(seg) == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}
	}

	return segments, nil
}

// Lookup walks path through nested records and slices.
// Numeric segments index into slices. It returns false when any step is
// missing, out of range, or not traversable.
func (r *Record) Lookup(path string) (any, bool) {
	segments, err := ParsePath(path)
	if err != nil {
		return nil, false
	}

	var current any = r

	for _, seg := range segments {
		switch v := current.(type) {
		case *Record:
			if v == nil {
				return nil, false
			}

			next, ok := v.Get(seg)
			if !ok {
				return nil, false
			}

			current = next
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(v) {
				return nil, false
			}

			current = v[idx]
		default:
			return nil, false
		}
	}

	return current, true
}
