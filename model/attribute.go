package model

import "slices"

// DefaultFunc produces a fresh default value each time it is used.
type DefaultFunc func() any

// Attribute declares one attribute of a class.
type Attribute struct {
	// Name is the canonical attribute name.
	Name string

	// Type drives coercion of assigned values.
	Type Type

	// From is the optional alternate source of the value.
	From Source

	// Default is used when the attribute is absent from the assigned record.
	// A DefaultFunc is called per use. Nil means no default.
	Default any

	// Required makes assignment fail when the attribute is absent and has
	// no default. An explicit nil satisfies it.
	Required bool
}

// HasDefault returns true if a default is declared.
func (a Attribute) HasDefault() bool {
	return a.Default != nil
}

// DefaultValue returns the default, calling a DefaultFunc.
func (a Attribute) DefaultValue() any {
	if fn, ok := a.Default.(DefaultFunc); ok {
		return fn()
	}

	return a.Default
}

// AttributeSet is an ordered set of attributes, unique by name.
// The zero value is not usable; call NewAttributeSet.
type AttributeSet struct {
	attrs []Attribute
	index map[string]int
}

// NewAttributeSet creates a set from attrs. A repeated name replaces the
// earlier declaration in place.
func NewAttributeSet(attrs ...Attribute) *AttributeSet {
	s := &AttributeSet{index: make(map[string]int, len(attrs))}
	for _, a := range attrs {
		s.Add(a)
	}

	return s
}

// Add declares a, replacing an existing declaration of the same name
// without moving it.
func (s *AttributeSet) Add(a Attribute) {
	if i, ok := s.index[a.Name]; ok {
		s.attrs[i] = a
		return
	}

	s.index[a.Name] = len(s.attrs)
	s.attrs = append(s.attrs, a)
}

// Get returns the attribute declared under name.
func (s *AttributeSet) Get(name string) (Attribute, bool) {
	i, ok := s.index[name]
	if !ok {
		return Attribute{}, false
	}

	return s.attrs[i], true
}

// Has returns true if name is declared.
func (s *AttributeSet) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of attributes.
func (s *AttributeSet) Len() int {
	return len(s.attrs)
}

// Names returns the attribute names in declaration order.
func (s *AttributeSet) Names() []string {
	names := make([]string, len(s.attrs))
	for i, a := range s.attrs {
		names[i] = a.Name
	}

	return names
}

// Attributes returns a copy of the declarations in order.
func (s *AttributeSet) Attributes() []Attribute {
	return slices.Clone(s.attrs)
}

// Clone returns an independent copy of the set.
func (s *AttributeSet) Clone() *AttributeSet {
	return NewAttributeSet(s.attrs...)
}

// Merge returns a new set holding s followed by attrs. Declarations in
// attrs replace those of s with the same name. s is not modified.
func (s *AttributeSet) Merge(attrs ...Attribute) *AttributeSet {
	merged := s.Clone()
	for _, a := range attrs {
		merged.Add(a)
	}

	return merged
}
