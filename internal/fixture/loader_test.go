package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mock-factory/descriptor"
	"mock-factory/factory"
)

func TestLoadFile(t *testing.T) {
	schema, err := LoadFile("testdata/delivery.yaml")
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, schema.File.Version)
	assert.Equal(t, "Delivery", schema.File.Root)
	assert.Len(t, schema.Types, 5)

	for name, typ := range schema.Types {
		assert.Equal(t, descriptor.CategoryAlias, typ.Category, name)
		assert.Equal(t, name, typ.Name)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("testdata/nope.yaml")
	assert.ErrorContains(t, err, "failed to read schema file")
}

func TestLoadFile_UnknownReference(t *testing.T) {
	_, err := LoadFile("testdata/invalid_reference.yaml")
	require.ErrorIs(t, err, ErrUnknownType)
	assert.ErrorContains(t, err, "type Order: property fruit: Fruit")
}

func TestSchema_Options(t *testing.T) {
	schema, err := LoadFile("testdata/delivery.yaml")
	require.NoError(t, err)

	opts, err := schema.Options("")
	require.NoError(t, err)
	assert.Same(t, schema.Types["Delivery"], opts.Type)
	assert.Equal(t, map[descriptor.Category]any{descriptor.CategoryBoolean: false}, opts.DefaultOverrides)

	mock, err := factory.GenerateMockObject(opts)
	require.NoError(t, err)

	obj, ok := mock.(factory.Object)
	require.True(t, ok)
	assert.Equal(t, "string_value", obj["name"])
	assert.Equal(t, factory.Object{"houseNumber": 42, "street": "Fake St", "postcode": "string_value"}, obj["address"])
	assert.Equal(t, false, obj["isNextDayDelivery"])
	assert.Equal(t, []any{factory.Object{"fruit": "apples", "quantity": 1}}, obj["orders"])
	assert.Equal(t, factory.Undefined, obj["note"])
	assert.Len(t, obj["window"], 1)
}

func TestSchema_RecursiveType(t *testing.T) {
	schema, err := LoadFile("testdata/delivery.yaml")
	require.NoError(t, err)

	opts, err := schema.Options("Category")
	require.NoError(t, err)

	_, err = factory.GenerateMockObject(opts)
	var recursive *factory.RecursiveTypeError
	require.ErrorAs(t, err, &recursive)
	assert.Equal(t, "Category.children[]", recursive.Path)

	opts.ValueOverrides = map[string]any{"children": []any{}}
	mock, err := factory.GenerateMockObject(opts)
	require.NoError(t, err)
	assert.Equal(t, factory.Object{"name": "string_value", "children": []any{}}, mock)
}

func TestSchema_Type(t *testing.T) {
	schema, err := Parse([]byte(`
types:
  Id: string
`))
	require.NoError(t, err)

	_, err = schema.Type("")
	assert.EqualError(t, err, "no type requested and the schema has no root")

	_, err = schema.Type("Missing")
	assert.ErrorIs(t, err, ErrUnknownType)

	id, err := schema.Type("Id")
	require.NoError(t, err)
	assert.Equal(t, descriptor.CategoryString, id.Target.Category)
}

func TestParse_Forms(t *testing.T) {
	schema, err := Parse([]byte(`
types:
  Order:
    object:
      id: string
      fruit: Fruit
  Fruit:
    union: [apples, 2, true, {ref: Order}, {object: {x: number}}]
  Ids:
    readonlyArray: string
  Keys:
    keysOf: Order
  Box:
    parameterized: Box
  Fixed:
    literal: fixed
  Maybe:
    nullable: any
  Later:
    ref: Order
  Map:
    generic: Map
    args: [string, number]
`))
	require.NoError(t, err)

	order := schema.Types["Order"].Target
	require.Equal(t, descriptor.CategoryObject, order.Category)
	require.Len(t, order.Properties, 2)
	assert.Equal(t, "id", order.Properties[0].Key)
	assert.Equal(t, descriptor.CategoryDeferred, order.Properties[1].Value.Category)
	assert.Same(t, schema.Types["Fruit"], order.Properties[1].Value.Reveal())

	fruit := schema.Types["Fruit"].Target
	require.Len(t, fruit.Members, 5)
	assert.Equal(t, descriptor.CategoryStringLiteral, fruit.Members[0].Category)
	assert.Equal(t, descriptor.CategoryNumberLiteral, fruit.Members[1].Category)
	assert.Equal(t, descriptor.CategoryBooleanLiteral, fruit.Members[2].Category)
	assert.Equal(t, descriptor.CategoryDeferred, fruit.Members[3].Category)
	assert.Equal(t, descriptor.CategoryObject, fruit.Members[4].Category)

	tests := []struct {
		name string
		want descriptor.Category
	}{
		{"Ids", descriptor.CategoryReadOnlyArray},
		{"Keys", descriptor.CategoryKeysOf},
		{"Box", descriptor.CategoryParameterizedAlias},
		{"Fixed", descriptor.CategoryStringLiteral},
		{"Maybe", descriptor.CategoryNullable},
		{"Later", descriptor.CategoryDeferred},
		{"Map", descriptor.CategoryGenericApplication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schema.Types[tt.name].Target.Category)
		})
	}

	mapType := schema.Types["Map"].Target
	assert.Equal(t, "Map", mapType.Parent)
	assert.Len(t, mapType.TypeInstances, 2)

	keys, err := factory.GenerateMockObject(factory.Options{Type: schema.Types["Keys"]})
	require.NoError(t, err)
	assert.Equal(t, "id", keys)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "invalid yaml",
			yaml: "types: [",
			want: "failed to parse schema YAML",
		},
		{
			name: "unsupported version",
			yaml: "version: \"2\"\ntypes: {}",
			want: `unsupported schema version "2"`,
		},
		{
			name: "no form",
			yaml: "types:\n  A: {}",
			want: "type expression has no form",
		},
		{
			name: "two forms",
			yaml: "types:\n  A: {array: string, nullable: string}",
			want: "type expression has 2 forms, want one",
		},
		{
			name: "args without generic",
			yaml: "types:\n  A: {array: string, args: [string]}",
			want: "args are only allowed with generic",
		},
		{
			name: "object is not a mapping",
			yaml: "types:\n  A: {object: [a, b]}",
			want: "expected mapping of properties",
		},
		{
			name: "union is not a sequence",
			yaml: "types:\n  A: {union: apples}",
			want: "expected sequence of union members",
		},
		{
			name: "unknown root",
			yaml: "root: B\ntypes:\n  A: string",
			want: "root B: unknown type reference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestSchema_DefaultKeys(t *testing.T) {
	schema, err := Parse([]byte(`
root: A
types:
  A: {object: {n: number, s: string}}
defaults:
  number: 7
  StringType: text
`))
	require.NoError(t, err)

	opts, err := schema.Options("")
	require.NoError(t, err)

	mock, err := factory.GenerateMockObject(opts)
	require.NoError(t, err)
	assert.Equal(t, factory.Object{"n": 7, "s": "text"}, mock)
}

func TestParse_ReferenceHint(t *testing.T) {
	_, err := Parse([]byte(`
types:
  Fruit: {union: [apples]}
  Order:
    object:
      fruit: Friut
`))
	require.ErrorIs(t, err, ErrUnknownType)
	assert.EqualError(t, err, "type Order: property fruit: Friut: unknown type reference (did you mean Fruit?)")
}
