package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalk(t *testing.T) {
	var node *Type
	node = Alias("Node", Object(
		Field("id", Nullable(String())),
		Field("tags", Array(UnionOf("a", "b"))),
		Field("next", Deferred("Node", func() *Type { return node })),
	))

	var categories []Category
	Walk(node, func(t *Type) bool {
		categories = append(categories, t.Category)
		return true
	})

	assert.Equal(t, []Category{
		CategoryAlias, CategoryObject,
		CategoryObjectProperty, CategoryNullable, CategoryString,
		CategoryObjectProperty, CategoryArray, CategoryUnion, CategoryStringLiteral, CategoryStringLiteral,
		CategoryObjectProperty, CategoryDeferred,
	}, categories)
}

func TestWalk_Skip(t *testing.T) {
	typ := Object(Field("inner", Object(Field("deep", String()))))

	var keys []string
	Walk(typ, func(t *Type) bool {
		if t.Category == CategoryObjectProperty {
			keys = append(keys, t.Key)
			return false
		}
		return true
	})

	assert.Equal(t, []string{"inner"}, keys)
	Walk(nil, func(*Type) bool { panic("not called") })
}
