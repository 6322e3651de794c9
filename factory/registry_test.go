package factory_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mock-factory/descriptor"
	"mock-factory/factory"
)

func TestRegistry_Builtins(t *testing.T) {
	t.Parallel()

	reg := factory.NewRegistry()

	known := append(descriptor.Primitives(), descriptor.Composites()...)
	for _, category := range known {
		_, ok := reg.Lookup(category)
		assert.True(t, ok, "no generator for %s", category)
	}

	assert.ElementsMatch(t, known, reg.Categories())

	for _, literal := range []descriptor.Category{
		descriptor.CategoryStringLiteral,
		descriptor.CategoryNumberLiteral,
		descriptor.CategoryBooleanLiteral,
	} {
		_, ok := reg.Lookup(literal)
		assert.False(t, ok, literal)
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("new category", func(t *testing.T) {
		t.Parallel()

		reg := factory.NewRegistry()
		reg.Register(descriptor.CategoryStringLiteral, func(_ *factory.Scope, t *descriptor.Type) (any, error) {
			return t.Literal, nil
		})

		mock, err := reg.GenerateMockObject(factory.Options{Type: descriptor.Literal("fake")})
		require.NoError(t, err)
		assert.Equal(t, "fake", mock)

		// the default registry is untouched
		_, err = factory.GenerateMockObject(factory.Options{Type: descriptor.Literal("fake")})
		require.ErrorIs(t, err, factory.ErrUnknownCategory)
	})

	t.Run("extension recurses through the scope", func(t *testing.T) {
		t.Parallel()

		// Map<K, V> synthesizes a single entry keyed by the example key.
		reg := factory.NewRegistry()
		reg.Register("Map", func(s *factory.Scope, t *descriptor.Type) (any, error) {
			key, err := s.Generate(t.TypeInstances[0])
			if err != nil {
				return nil, err
			}

			value, err := s.Generate(t.TypeInstances[1])
			if err != nil {
				return nil, err
			}

			return factory.Object{key.(string): value}, nil
		})

		typ := descriptor.Object(descriptor.Field("prices",
			descriptor.Apply("Map", descriptor.String(), descriptor.Number())))

		mock, err := reg.GenerateMockObject(factory.Options{
			Type:             typ,
			DefaultOverrides: map[descriptor.Category]any{descriptor.CategoryString: "apples"},
		})
		require.NoError(t, err)
		assert.Equal(t, factory.Object{"prices": factory.Object{"apples": 1}}, mock)
	})

	t.Run("replace builtin", func(t *testing.T) {
		t.Parallel()

		// arrays of three elements instead of one
		reg := factory.NewRegistry()
		reg.Register(descriptor.CategoryArray, func(s *factory.Scope, t *descriptor.Type) (any, error) {
			res := make([]any, 0, 3)
			for range 3 {
				v, err := s.Generate(t.Element)
				if err != nil {
					return nil, err
				}
				res = append(res, v)
			}
			return res, nil
		})

		mock, err := reg.GenerateMockObject(factory.Options{Type: descriptor.Array(descriptor.Boolean())})
		require.NoError(t, err)
		assert.Equal(t, []any{true, true, true}, mock)
	})

	t.Run("scope exposes overrides", func(t *testing.T) {
		t.Parallel()

		reg := factory.NewRegistry()
		reg.Register("Slug", func(s *factory.Scope, _ *descriptor.Type) (any, error) {
			v, ok, err := s.FieldValue("slug")
			if err != nil || ok {
				return v, err
			}

			name := s.DefaultValue(descriptor.CategoryString).(string)
			return strings.ReplaceAll(name, "_", "-") + "@" + s.Path(), nil
		})

		typ := descriptor.Object(descriptor.Field("id", descriptor.Of("Slug")))

		mock, err := reg.GenerateMockObject(factory.Options{Type: typ})
		require.NoError(t, err)
		assert.Equal(t, factory.Object{"id": "string-value@root.id"}, mock)
	})

	t.Run("nil generator", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { factory.NewRegistry().Register("Nil", nil) })
	})
}

func TestRegistry_Clone(t *testing.T) {
	t.Parallel()

	reg := factory.NewRegistry()
	clone := reg.Clone()
	clone.Register("Extra", func(*factory.Scope, *descriptor.Type) (any, error) { return nil, nil })

	_, ok := clone.Lookup("Extra")
	assert.True(t, ok)

	_, ok = reg.Lookup("Extra")
	assert.False(t, ok)

	assert.Len(t, clone.Categories(), len(reg.Categories())+1)
}
