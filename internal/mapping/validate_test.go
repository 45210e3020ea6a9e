package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attribute-mapper/internal/diagnostic"
	"attribute-mapper/record"
)

func testRegistry() *ComputeRegistry {
	return NewComputeRegistry().Register("FullName", func(r *record.Record) (any, error) {
		return nil, nil
	})
}

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Code
	}

	return out
}

func TestValidate_Valid(t *testing.T) {
	sf, err := Parse([]byte(personYAML))
	require.NoError(t, err)

	res := Validate(sf, testRegistry())
	assert.False(t, res.HasErrors(), res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		code        string
		suggestions []string
	}{
		{
			name: "unknown type",
			yaml: `
classes:
  - name: Person
    attributes:
      - name: age
        type: integr
`,
			code:        "unknown_type",
			suggestions: []string{"integer"},
		},
		{
			name: "unknown compute",
			yaml: `
classes:
  - name: Person
    attributes:
      - name: full_name
        from: {compute: FulName}
`,
			code:        "unknown_compute",
			suggestions: []string{"FullName"},
		},
		{
			name: "duplicate attribute",
			yaml: `
classes:
  - name: Person
    attributes:
      - name: age
      - name: age
`,
			code: "duplicate_attribute",
		},
		{
			name: "duplicate class",
			yaml: `
classes:
  - name: Person
    attributes: [{name: a}]
  - name: Person
    attributes: [{name: b}]
`,
			code: "duplicate_class",
		},
		{
			name: "empty class name",
			yaml: `
classes:
  - attributes: [{name: a}]
`,
			code: "class_name_empty",
		},
		{
			name: "empty attribute name",
			yaml: `
classes:
  - name: Person
    attributes: [{type: string}]
`,
			code: "attribute_name_empty",
		},
		{
			name: "ambiguous from",
			yaml: `
classes:
  - name: Person
    attributes:
      - name: street
        from: {key: street_name, path: address.street}
`,
			code: "from_ambiguous",
		},
		{
			name: "empty from",
			yaml: `
classes:
  - name: Person
    attributes:
      - name: street
        from: {}
`,
			code: "from_empty",
		},
		{
			name: "invalid path",
			yaml: `
classes:
  - name: Person
    attributes:
      - name: street
        from: {path: address..street}
`,
			code: "invalid_path",
		},
		{
			name: "invalid fold",
			yaml: `
classes:
  - name: Person
    fold: fuzzy
    attributes: [{name: a}]
`,
			code:        "invalid_fold",
			suggestions: []string{"none", "case", "ident"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			res := Validate(sf, testRegistry())
			require.True(t, res.HasErrors())
			require.Len(t, res.Errors, 1, res.Error())
			assert.Equal(t, tt.code, res.Errors[0].Code)

			if tt.suggestions != nil {
				assert.Equal(t, tt.suggestions, res.Errors[0].Suggestions)
			}
		})
	}
}

func TestValidate_Warnings(t *testing.T) {
	sf, err := Parse([]byte(`
version: "2"
classes:
  - name: Person
    fold: case
    attributes:
      - name: name
        from: Name
  - name: Empty
    attributes: []
`))
	require.NoError(t, err)

	res := Validate(sf, nil)
	assert.False(t, res.HasErrors())
	assert.Equal(t, []string{"unknown_version", "rename_to_self"}, codes(res.Warnings))
	assert.Equal(t, []string{"no_attributes"}, codes(res.Infos))
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil, nil)
	require.True(t, res.HasErrors())
	assert.Equal(t, "schema_is_nil", res.Errors[0].Code)
}
