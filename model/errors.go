package model

import (
	"errors"
	"fmt"
	"strings"

	"attribute-mapper/internal/match"
)

var (
	// ErrUnknownAttribute is returned when a name is not a declared attribute.
	ErrUnknownAttribute = errors.New("unknown attribute")
	// ErrRequiredAttributeMissing is returned when a required attribute is absent
	// after remapping and has no default.
	ErrRequiredAttributeMissing = errors.New("required attribute missing")
	// ErrCoercion is returned in strict mode when a value cannot be coerced.
	ErrCoercion = errors.New("coercion failed")
)

const maxSuggestions = 3

func unknownAttributeError(name string, declared []string) error {
	suggestions := match.Suggest(name, declared, maxSuggestions)
	if len(suggestions) == 0 {
		return fmt.Errorf("%w %q", ErrUnknownAttribute, name)
	}

	return fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownAttribute, name, strings.Join(suggestions, ", "))
}
