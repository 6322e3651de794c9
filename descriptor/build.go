package descriptor

// String creates a StringType descriptor.
func String() *Type { return &Type{Category: CategoryString} }

// Number creates a NumberType descriptor.
func Number() *Type { return &Type{Category: CategoryNumber} }

// Boolean creates a BooleanType descriptor.
func Boolean() *Type { return &Type{Category: CategoryBoolean} }

// Void creates a VoidType descriptor.
func Void() *Type { return &Type{Category: CategoryVoid} }

// Any creates an ExistentialType descriptor.
func Any() *Type { return &Type{Category: CategoryExistential} }

// Function creates a FunctionType descriptor.
func Function() *Type { return &Type{Category: CategoryFunction} }

// Date creates a DateType descriptor.
func Date() *Type { return &Type{Category: CategoryDate} }

// PropertyAccess creates a $PropertyType descriptor.
func PropertyAccess() *Type { return &Type{Category: CategoryProperty} }

// Nullable creates a NullableType descriptor wrapping inner.
func Nullable(inner *Type) *Type {
	return &Type{Category: CategoryNullable, Target: inner}
}

// Object creates an ObjectType descriptor from property descriptors.
func Object(props ...*Type) *Type {
	return &Type{Category: CategoryObject, Properties: props}
}

// Field creates an ObjectTypeProperty descriptor.
func Field(key string, value *Type) *Type {
	return &Type{Category: CategoryObjectProperty, Key: key, Value: value}
}

// Array creates an ArrayType descriptor.
func Array(elem *Type) *Type {
	return &Type{Category: CategoryArray, Element: elem}
}

// ReadOnlyArray creates a $ReadOnlyArray descriptor; the element type is
// its first type instance.
func ReadOnlyArray(elem *Type) *Type {
	return &Type{Category: CategoryReadOnlyArray, TypeInstances: []*Type{elem}}
}

// Union creates a UnionType descriptor from member descriptors.
func Union(members ...*Type) *Type {
	return &Type{Category: CategoryUnion, Members: members}
}

// UnionOf creates a UnionType whose members are literals of values.
func UnionOf(values ...any) *Type {
	members := make([]*Type, 0, len(values))
	for _, v := range values {
		members = append(members, Literal(v))
	}

	return Union(members...)
}

// Literal creates a literal descriptor; the category follows the Go type of v.
func Literal(v any) *Type {
	category := CategoryStringLiteral

	switch v.(type) {
	case bool:
		category = CategoryBooleanLiteral
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		category = CategoryNumberLiteral
	}

	return &Type{Category: category, Literal: v}
}

// Alias creates a TypeAlias named name over target.
func Alias(name string, target *Type) *Type {
	return &Type{Category: CategoryAlias, Name: name, Target: target}
}

// ParameterizedAlias creates a ParameterizedTypeAlias. Its parameters are
// never resolved.
func ParameterizedAlias(name string) *Type {
	return &Type{Category: CategoryParameterizedAlias, Name: name}
}

// Apply creates a TypeParameterApplication of the type named parent.
func Apply(parent string, args ...*Type) *Type {
	return &Type{Category: CategoryGenericApplication, Parent: parent, TypeInstances: args}
}

// KeysOf creates a $KeysType over subject.
func KeysOf(subject *Type) *Type {
	return &Type{Category: CategoryKeysOf, Target: subject}
}

// Deferred creates a TypeTDZ node resolved by calling resolve on Reveal.
// resolve should return the same node on every call.
func Deferred(name string, resolve func() *Type) *Type {
	return &Type{Category: CategoryDeferred, Name: name, reveal: resolve}
}

// Of creates a bare descriptor of an arbitrary category, for categories
// handled by registered extension generators.
func Of(category Category) *Type {
	return &Type{Category: category}
}
