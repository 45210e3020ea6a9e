package mapper

import "attribute-mapper/record"

// NilSet records which keys of a raw record held an explicit nil.
type NilSet struct {
	fold record.KeyFolder
	keys map[string]struct{}
	list []string
}

// Snapshot captures the keys of raw whose value is nil.
func Snapshot(raw *record.Record) NilSet {
	n := NilSet{
		fold: raw.Folder(),
		keys: make(map[string]struct{}),
	}

	raw.Each(func(key string, value any) {
		if record.IsNil(value) {
			n.keys[raw.FoldKey(key)] = struct{}{}
			n.list = append(n.list, key)
		}
	})

	return n
}

// Contains returns true if key held an explicit nil.
func (n NilSet) Contains(key string) bool {
	if n.fold == nil {
		return false
	}

	_, ok := n.keys[n.fold(key)]

	return ok
}

// Keys returns the nil keys in input order.
func (n NilSet) Keys() []string {
	return append([]string(nil), n.list...)
}

// Len returns the number of nil keys.
func (n NilSet) Len() int {
	return len(n.list)
}
