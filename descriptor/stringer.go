package descriptor

import (
	"fmt"
	"strings"
)

// TypeString returns a human-readable representation of a Type.
// Deferred nodes are printed by name and never forced.
func TypeString(t *Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Category {
	case CategoryString:
		return "string"
	case CategoryNumber:
		return "number"
	case CategoryBoolean:
		return "boolean"
	case CategoryVoid:
		return "void"
	case CategoryExistential:
		return "*"
	case CategoryFunction:
		return "Function"
	case CategoryDate:
		return "Date"
	case CategoryProperty:
		return "$PropertyType"

	case CategoryNullable:
		if t.Target != nil {
			return "?" + TypeString(t.Target)
		}
		return "?<unknown>"

	case CategoryObject:
		if len(t.Properties) == 0 {
			return "{}"
		}
		parts := make([]string, 0, len(t.Properties))
		for _, prop := range t.Properties {
			parts = append(parts, TypeString(prop))
		}
		return "{ " + strings.Join(parts, ", ") + " }"

	case CategoryObjectProperty:
		return t.Key + ": " + TypeString(t.Value)

	case CategoryArray:
		return "Array<" + TypeString(t.Element) + ">"

	case CategoryReadOnlyArray:
		return "$ReadOnlyArray<" + typeList(t.TypeInstances) + ">"

	case CategoryUnion:
		if len(t.Members) == 0 {
			return "empty"
		}
		parts := make([]string, 0, len(t.Members))
		for _, m := range t.Members {
			parts = append(parts, TypeString(m))
		}
		return strings.Join(parts, " | ")

	case CategoryStringLiteral:
		return fmt.Sprintf("'%v'", t.Literal)

	case CategoryNumberLiteral, CategoryBooleanLiteral:
		return fmt.Sprint(t.Literal)

	case CategoryAlias:
		if t.Name != "" {
			return t.Name
		}
		return TypeString(t.Target)

	case CategoryParameterizedAlias:
		return t.Name + "<...>"

	case CategoryGenericApplication:
		return t.Parent + "<" + typeList(t.TypeInstances) + ">"

	case CategoryKeysOf:
		return "$Keys<" + TypeString(t.Target) + ">"

	case CategoryDeferred:
		if t.Name != "" {
			return t.Name
		}
		return string(CategoryDeferred)

	default:
		return string(t.Category)
	}
}

func typeList(ts []*Type) string {
	parts := make([]string, 0, len(ts))
	for _, t := range ts {
		parts = append(parts, TypeString(t))
	}

	return strings.Join(parts, ", ")
}
