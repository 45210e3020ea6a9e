package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_SetGet(t *testing.T) {
	t.Parallel()

	r := New()
	r.Set("surname", "Doe")
	r.Set("nickname", nil)

	v, ok := r.Get("surname")
	require.True(t, ok)
	assert.Equal(t, "Doe", v)

	v, ok = r.Get("nickname")
	assert.True(t, ok, "nil values are present")
	assert.Nil(t, v)

	_, ok = r.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, r.Value("missing"))
}

func TestRecord_Folders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fold    KeyFolder
		set     string
		lookup  string
		matches bool
	}{
		{"none exact", FoldNone, "surname", "surname", true},
		{"none differs by case", FoldNone, "surname", "Surname", false},
		{"case", FoldCase, "surname", "SURNAME", true},
		{"case keeps separators", FoldCase, "last_name", "lastname", false},
		{"ident snake vs camel", FoldIdent, "last_name", "LastName", true},
		{"ident kebab", FoldIdent, "last-name", "lastName", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := New(WithFolder(tt.fold))
			r.Set(tt.set, 1)
			assert.Equal(t, tt.matches, r.Has(tt.lookup))
		})
	}
}

func TestRecord_KeepsFirstSpellingAndPosition(t *testing.T) {
	t.Parallel()

	r := New(WithFolder(FoldCase))
	r.Set("First", 1)
	r.Set("second", 2)
	r.Set("FIRST", 3)

	assert.Equal(t, []string{"First", "second"}, r.Keys())
	assert.Equal(t, 3, r.Value("first"))
}

func TestRecord_Delete(t *testing.T) {
	t.Parallel()

	r := FromMap(map[string]any{"a": 1, "b": 2, "c": 3})

	v, ok := r.Delete("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, []string{"a", "c"}, r.Keys())
	assert.Equal(t, 2, r.Len())

	_, ok = r.Delete("b")
	assert.False(t, ok)
}

func TestFromMap_NestedRecords(t *testing.T) {
	t.Parallel()

	r := FromMap(map[string]any{
		"address": map[string]any{"Street": "Main St"},
		"tags":    []any{map[any]any{"name": "x"}, "plain"},
	}, WithFolder(FoldCase))

	addr := r.Record("address")
	require.NotNil(t, addr)
	assert.Equal(t, "Main St", addr.Value("street"), "nested records share the folder")

	tags, ok := r.Value("tags").([]any)
	require.True(t, ok)
	require.Len(t, tags, 2)

	tag, ok := tags[0].(*Record)
	require.True(t, ok)
	assert.Equal(t, "x", tag.Value("NAME"))
	assert.Equal(t, "plain", tags[1])
}

func TestRecord_CloneIsDeep(t *testing.T) {
	t.Parallel()

	r := FromMap(map[string]any{
		"address": map[string]any{"street": "Main St"},
		"name":    "John",
	})

	c := r.Clone()
	c.Set("name", "Jane")
	c.Record("address").Set("street", "Side St")
	c.Delete("address")

	assert.Equal(t, "John", r.Value("name"))
	assert.Equal(t, "Main St", r.Record("address").Value("street"))
	assert.Equal(t, []string{"address", "name"}, r.Keys())
}

func TestRecord_Map(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"address": map[string]any{"street": "Main St"},
		"list":    []any{map[string]any{"a": 1}},
		"none":    nil,
	}

	assert.Equal(t, in, FromMap(in).Map())
}

func TestRecord_Lookup(t *testing.T) {
	t.Parallel()

	r := FromMap(map[string]any{
		"address": map[string]any{"street": "Main St"},
		"phones":  []any{map[string]any{"number": "555"}},
		"name":    "John",
	})

	tests := []struct {
		path  string
		want  any
		found bool
	}{
		{"name", "John", true},
		{"address.street", "Main St", true},
		{"phones.0.number", "555", true},
		{"phones.1.number", nil, false},
		{"phones.x", nil, false},
		{"name.first", nil, false},
		{"address.city", nil, false},
		{"", nil, false},
		{"address..street", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, found := r.Lookup(tt.path)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecord_String(t *testing.T) {
	t.Parallel()

	r := New()
	r.Set("a", 1)
	r.Set("b", FromMap(map[string]any{"c": "d"}))

	assert.Equal(t, "{a: 1, b: {c: d}}", r.String())
}

type stringerKey struct{ name string }

func (k stringerKey) String() string { return k.name }

func TestKeyString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", KeyString("a"))
	assert.Equal(t, "b", KeyString([]byte("b")))
	assert.Equal(t, "c", KeyString(stringerKey{"c"}))
	assert.Equal(t, "42", KeyString(42))
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var (
		ptr *int
		m   map[string]any
		s   []any
		rec *Record
	)

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(ptr))
	assert.True(t, IsNil(m))
	assert.True(t, IsNil(s))
	assert.True(t, IsNil(rec))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil([]any{}))
}
