package record

import (
	"fmt"
	"slices"
	"strings"

	"attribute-mapper/internal/common"
	"attribute-mapper/internal/match"
)

// KeyFolder maps a key to the canonical form used for equality.
type KeyFolder func(key string) string

// FoldNone compares keys exactly.
func FoldNone(key string) string { return key }

// FoldCase compares keys case-insensitively.
func FoldCase(key string) string { return strings.ToLower(key) }

// FoldIdent compares keys as identifiers: "first_name", "FirstName" and
// "first-name" are the same key.
func FoldIdent(key string) string { return match.NormalizeIdent(key) }

// Option configures a Record.
type Option func(*Record)

// WithFolder sets the key folder. A nil folder means FoldNone.
func WithFolder(fold KeyFolder) Option {
	return func(r *Record) {
		if fold != nil {
			r.fold = fold
		}
	}
}

type entry struct {
	key   string
	value any
}

// Record is an ordered, key-indifferent map of raw values.
type Record struct {
	fold    KeyFolder
	order   []string
	entries map[string]entry
}

// New creates an empty Record.
func New(opts ...Option) *Record {
	r := &Record{
		fold:    FoldNone,
		entries: make(map[string]entry),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// FromMap builds a Record from m. Keys are inserted in sorted order so the
// result does not depend on map iteration.
func FromMap(m map[string]any, opts ...Option) *Record {
	r := New(opts...)

	for _, k := range common.SortedKeys(m) {
		r.Set(k, m[k])
	}

	return r
}

// Folder returns the key folder of the record.
func (r *Record) Folder() KeyFolder {
	return r.fold
}

// FoldKey returns the canonical form of key under this record's folder.
func (r *Record) FoldKey(key string) string {
	return r.fold(key)
}

// Set stores value under key. An existing entry keeps its position and
// spelling. Nested maps and slices are copied in as records.
func (r *Record) Set(key string, value any) {
	fk := r.fold(key)

	if e, ok := r.entries[fk]; ok {
		e.value = r.normalize(value)
		r.entries[fk] = e

		return
	}

	r.order = append(r.order, fk)
	r.entries[fk] = entry{key: key, value: r.normalize(value)}
}

// Get returns the value stored under key and whether the key exists.
// A key holding nil reports true.
func (r *Record) Get(key string) (any, bool) {
	e, ok := r.entries[r.fold(key)]

	return e.value, ok
}

// Value returns the value stored under key, or nil.
func (r *Record) Value(key string) any {
	v, _ := r.Get(key)
	return v
}

// Has returns true if key is present, even with a nil value.
func (r *Record) Has(key string) bool {
	_, ok := r.entries[r.fold(key)]
	return ok
}

// Record returns the nested record stored under key, or nil when the value
// is absent or not a map.
func (r *Record) Record(key string) *Record {
	nested, _ := r.Value(key).(*Record)
	return nested
}

// Delete removes key and returns the value it held.
func (r *Record) Delete(key string) (any, bool) {
	fk := r.fold(key)

	e, ok := r.entries[fk]
	if !ok {
		return nil, false
	}

	delete(r.entries, fk)
	r.order = slices.DeleteFunc(r.order, func(k string) bool { return k == fk })

	return e.value, true
}

// Keys returns the keys in insertion order, as first spelled.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.order))
	for i, fk := range r.order {
		keys[i] = r.entries[fk].key
	}

	return keys
}

// Len returns the number of keys.
func (r *Record) Len() int {
	return len(r.order)
}

// Each calls fn for every entry in insertion order.
func (r *Record) Each(fn func(key string, value any)) {
	for _, fk := range r.order {
		e := r.entries[fk]
		fn(e.key, e.value)
	}
}

// Clone returns a deep copy. Nested records and slices are copied,
// other values are shared.
func (r *Record) Clone() *Record {
	c := &Record{
		fold:    r.fold,
		order:   slices.Clone(r.order),
		entries: make(map[string]entry, len(r.entries)),
	}

	for fk, e := range r.entries {
		c.entries[fk] = entry{key: e.key, value: cloneValue(e.value)}
	}

	return c
}

// Map converts the record back to plain Go maps, nested records included.
func (r *Record) Map() map[string]any {
	out := make(map[string]any, len(r.order))

	r.Each(func(key string, value any) {
		out[key] = plainValue(value)
	})

	return out
}

// String implements fmt.Stringer.
func (r *Record) String() string {
	var sb strings.Builder

	sb.WriteString("{")

	i := 0
	r.Each(func(key string, value any) {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%s: %v", key, value)
		i++
	})

	sb.WriteString("}")

	return sb.String()
}

func (r *Record) normalize(value any) any {
	switch v := value.(type) {
	case *Record:
		if v == nil {
			return value
		}

		nested := New(WithFolder(r.fold))
		v.Each(nested.Set)

		return nested
	case map[string]any:
		if v == nil {
			return value
		}

		return FromMap(v, WithFolder(r.fold))
	case map[any]any:
		if v == nil {
			return value
		}

		return r.fromAnyMap(v)
	case []any:
		if v == nil {
			return value
		}

		out := make([]any, len(v))
		for i, item := range v {
			out[i] = r.normalize(item)
		}

		return out
	default:
		return value
	}
}

func (r *Record) fromAnyMap(m map[any]any) *Record {
	keyed := make(map[string]any, len(m))
	for k, v := range m {
		keyed[KeyString(k)] = v
	}

	return FromMap(keyed, WithFolder(r.fold))
}

// KeyString turns a map key of any kind into a record key.
func KeyString(k any) string {
	switch v := k.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case *Record:
		if v == nil {
			return value
		}

		return v.Clone()
	case []any:
		if v == nil {
			return value
		}

		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}

		return out
	default:
		return value
	}
}

func plainValue(value any) any {
	switch v := value.(type) {
	case *Record:
		if v == nil {
			return nil
		}

		return v.Map()
	case []any:
		if v == nil {
			return value
		}

		out := make([]any, len(v))
		for i, item := range v {
			out[i] = plainValue(item)
		}

		return out
	default:
		return value
	}
}
