package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d Diagnostics

	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.AddWarning("rename_to_self", "renames to itself", "Person", "name")
	d.AddInfo("note", "just saying", "", "")
	assert.False(t, d.HasErrors())

	d.AddError("unknown_type", `unknown type "strng"`, "Person", "name", "string")
	d.AddError("duplicate_class", `duplicate class "Person"`, "Person", "")

	require.True(t, d.HasErrors())
	assert.Len(t, d.All(), 4)
	assert.Equal(t, DiagnosticError, d.All()[0].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`[Person] name: [unknown_type] unknown type "strng" (did you mean string?); [Person]: [duplicate_class] duplicate class "Person"`,
		err.Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	t.Parallel()

	var a, b Diagnostics

	a.AddError("x", "x", "", "")
	b.AddWarning("y", "y", "", "")
	b.AddInfo("z", "z", "", "")
	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
}

func TestDiagnosticSeverity_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}

func TestDiagnostic_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "name: [c] m", Diagnostic{Code: "c", Message: "m", Attribute: "name"}.String())
}
