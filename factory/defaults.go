package factory

import (
	"maps"
	"time"

	"mock-factory/descriptor"
)

// Object is a synthesized object shape keyed by property name.
type Object = map[string]any

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the default of NullableType: an absent value, as opposed
// to nil which is the default of VoidType.
var Undefined any = undefined{}

// Noop is the default of FunctionType.
func Noop() {}

// defaultValues is the canonical value of every primitive category.
// DateType holds the time the package was initialized.
var defaultValues = map[descriptor.Category]any{
	descriptor.CategoryString:      "string_value",
	descriptor.CategoryNumber:      1,
	descriptor.CategoryBoolean:     true,
	descriptor.CategoryVoid:        nil,
	descriptor.CategoryNullable:    Undefined,
	descriptor.CategoryExistential: Object{},
	descriptor.CategoryFunction:    Noop,
	descriptor.CategoryDate:        time.Now(),
	descriptor.CategoryProperty:    string(descriptor.CategoryProperty),
}

// Defaults returns a copy of the default value table.
func Defaults() map[descriptor.Category]any {
	res := maps.Clone(defaultValues)
	res[descriptor.CategoryExistential] = Object{}

	return res
}

// DefaultValue returns the canonical default of a primitive category.
func DefaultValue(category descriptor.Category) (any, bool) {
	v, ok := defaultValues[category]
	if obj, isObj := v.(Object); isObj {
		return maps.Clone(obj), ok
	}

	return v, ok
}
