package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mock-factory/internal/diagnostic"
)

func codes(diags []diagnostic.Diagnostic) []string {
	var res []string
	for _, d := range diags {
		res = append(res, d.Code)
	}

	return res
}

func TestSchema_Check_Delivery(t *testing.T) {
	schema, err := LoadFile("testdata/delivery.yaml")
	require.NoError(t, err)

	diags := schema.Check()
	assert.False(t, diags.HasErrors())
	assert.Empty(t, diags.Infos)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, CodeRecursiveType, diags.Warnings[0].Code)
	assert.Equal(t, "Category", diags.Warnings[0].Type)
	assert.Equal(t, "Category.children[]", diags.Warnings[0].Path)
}

func TestSchema_Check_Findings(t *testing.T) {
	schema, err := Parse([]byte(`
root: A
types:
  A:
    object:
      m: {generic: Map, args: [string]}
      s: string
  B:
    object:
      x: number
overrides:
  x: 1
  ghost: 2
defaults:
  ObjectType: {}
  string: text
`))
	require.NoError(t, err)

	diags := schema.Check()
	require.True(t, diags.HasErrors())

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, CodeUnknownCategory, diags.Errors[0].Code)
	assert.Equal(t, "A.m", diags.Errors[0].Path)
	assert.Equal(t, "no generator for Map", diags.Errors[0].Message)

	assert.Equal(t, []string{CodeUnusedOverride, CodeInertDefault}, codes(diags.Warnings))
	assert.Contains(t, diags.Warnings[0].Message, `"ghost"`)

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, CodeUnreferencedType, diags.Infos[0].Code)
	assert.Equal(t, "B", diags.Infos[0].Type)

	// All orders by severity, then type, path and code
	assert.Equal(t, []string{CodeUnknownCategory, CodeInertDefault, CodeUnusedOverride, CodeUnreferencedType},
		codes(diags.All()))
}
