package descriptor

import "slices"

// Category is the tag that selects the synthesis rule for a Type.
// Values are the canonical tag names; they show up verbatim in errors.
type Category string

// Primitive categories.
const (
	CategoryString      Category = "StringType"
	CategoryNumber      Category = "NumberType"
	CategoryBoolean     Category = "BooleanType"
	CategoryVoid        Category = "VoidType"
	CategoryNullable    Category = "NullableType"
	CategoryExistential Category = "ExistentialType"
	CategoryFunction    Category = "FunctionType"
	CategoryDate        Category = "DateType"
	CategoryProperty    Category = "$PropertyType" // computed property access marker
)

// Composite categories.
const (
	CategoryObject             Category = "ObjectType"
	CategoryObjectProperty     Category = "ObjectTypeProperty"
	CategoryArray              Category = "ArrayType"
	CategoryReadOnlyArray      Category = "$ReadOnlyArray"
	CategoryUnion              Category = "UnionType"
	CategoryAlias              Category = "TypeAlias"
	CategoryParameterizedAlias Category = "ParameterizedTypeAlias"
	CategoryGenericApplication Category = "TypeParameterApplication"
	CategoryKeysOf             Category = "$KeysType"
	CategoryDeferred           Category = "TypeTDZ"
)

// Literal categories. They only carry a value for union members and
// have no generator of their own.
const (
	CategoryStringLiteral  Category = "StringLiteralType"
	CategoryNumberLiteral  Category = "NumberLiteralType"
	CategoryBooleanLiteral Category = "BooleanLiteralType"
)

var primitives = []Category{
	CategoryString,
	CategoryNumber,
	CategoryBoolean,
	CategoryVoid,
	CategoryFunction,
	CategoryExistential,
	CategoryNullable,
	CategoryDate,
	CategoryProperty,
}

var composites = []Category{
	CategoryAlias,
	CategoryObject,
	CategoryObjectProperty,
	CategoryArray,
	CategoryUnion,
	CategoryDeferred,
	CategoryParameterizedAlias,
	CategoryGenericApplication,
	CategoryReadOnlyArray,
	CategoryKeysOf,
}

// Primitives returns the primitive categories, resolved from the default table.
func Primitives() []Category {
	return append([]Category(nil), primitives...)
}

// Composites returns the composite categories, assembled from children.
func Composites() []Category {
	return append([]Category(nil), composites...)
}

// IsPrimitive reports whether c is one of the primitive categories.
func (c Category) IsPrimitive() bool {
	return slices.Contains(primitives, c)
}

// IsLiteral reports whether c is one of the literal categories.
func (c Category) IsLiteral() bool {
	switch c {
	case CategoryStringLiteral, CategoryNumberLiteral, CategoryBooleanLiteral:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}
