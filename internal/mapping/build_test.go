package mapping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attribute-mapper/model"
	"attribute-mapper/record"
)

func fullName(r *record.Record) (any, error) {
	first, _ := r.Value("first_name").(string)
	last, _ := r.Value("last_name").(string)

	return strings.TrimSpace(first + " " + last), nil
}

func TestBuild(t *testing.T) {
	sf, err := Parse([]byte(personYAML))
	require.NoError(t, err)

	classes, diags := Build(sf, NewComputeRegistry().Register("FullName", fullName))
	require.False(t, diags.HasErrors(), diags.Error())
	require.Len(t, classes, 2)

	person := classes["Person"]
	require.NotNil(t, person)
	assert.Equal(t, []string{"first_name", "last_name", "address", "full_name", "age"}, person.Schema().Names())

	inst, err := person.New(map[string]any{
		"FirstName": "John",
		"Surname":   "Doe",
		"Address":   map[string]any{"Street": "Main St"},
		"Age":       "42",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"first_name": "John",
		"last_name":  "Doe",
		"address":    "Main St",
		"full_name":  "John Doe",
		"age":        42,
	}, inst.Attributes())

	dog := classes["Dog"]
	require.NotNil(t, dog)
	assert.True(t, dog.Strict())

	spot, err := dog.New(map[string]any{})
	require.NoError(t, err)

	name, err := spot.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "Spot", name)
}

func TestBuild_RequiredFromFile(t *testing.T) {
	sf, err := Parse([]byte(personYAML))
	require.NoError(t, err)

	classes, diags := Build(sf, NewComputeRegistry().Register("FullName", fullName))
	require.False(t, diags.HasErrors())

	_, err = classes["Person"].New(map[string]any{"first_name": "John"})
	require.ErrorIs(t, err, model.ErrRequiredAttributeMissing)
}

func TestBuild_ValidationErrors(t *testing.T) {
	sf, err := Parse([]byte(personYAML))
	require.NoError(t, err)

	classes, diags := Build(sf, nil)
	assert.Nil(t, classes)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "unknown_compute", diags.Errors[0].Code)
}

func TestAttributes(t *testing.T) {
	cd := &ClassDef{
		Name: "Person",
		Attributes: []AttributeDef{
			{Name: "last_name", Type: "string", From: &FromDef{Key: "surname"}},
			{Name: "street", From: &FromDef{Path: "address.street"}},
			{Name: "age", Type: "int", Default: 18, Required: true},
		},
	}

	attrs, err := Attributes(cd, nil)
	require.NoError(t, err)
	require.Len(t, attrs, 3)

	assert.Equal(t, model.SourceRename, attrs[0].From.Kind())
	assert.Equal(t, "surname", attrs[0].From.Key())
	assert.Equal(t, model.String, attrs[0].Type)

	assert.Equal(t, model.SourceCompute, attrs[1].From.Kind())
	assert.Equal(t, model.Any, attrs[1].Type)

	assert.True(t, attrs[2].From.IsZero())
	assert.Equal(t, model.Integer, attrs[2].Type)
	assert.Equal(t, 18, attrs[2].Default)
	assert.True(t, attrs[2].Required)

	_, err = Attributes(&ClassDef{Attributes: []AttributeDef{{Name: "x", From: &FromDef{Compute: "Missing"}}}}, NewComputeRegistry())
	require.Error(t, err)
}
