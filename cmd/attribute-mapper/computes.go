package main

import (
	"strings"

	"attribute-mapper/internal/mapping"
	"attribute-mapper/record"
)

// builtinComputes are the named computes schema files can use from the CLI.
func builtinComputes() *mapping.ComputeRegistry {
	return mapping.NewComputeRegistry().
		Register("FullName", fullName).
		Register("Initials", initials)
}

func nameParts(r *record.Record) []string {
	var parts []string

	for _, key := range []string{"first_name", "last_name"} {
		if s, ok := r.Value(key).(string); ok && s != "" {
			parts = append(parts, s)
		}
	}

	return parts
}

// fullName joins first_name and last_name. Nil when both are missing.
func fullName(r *record.Record) (any, error) {
	parts := nameParts(r)
	if len(parts) == 0 {
		return nil, nil
	}

	return strings.Join(parts, " "), nil
}

// initials takes the first letter of first_name and last_name.
func initials(r *record.Record) (any, error) {
	parts := nameParts(r)
	if len(parts) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(strings.ToUpper(string([]rune(p)[:1])))
	}

	return sb.String(), nil
}
