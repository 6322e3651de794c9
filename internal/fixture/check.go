package fixture

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"

	"mock-factory/descriptor"
	"mock-factory/factory"
	"mock-factory/internal/diagnostic"
	"mock-factory/internal/match"
)

// Diagnostic codes reported by Check.
const (
	CodeUnknownCategory  = "unknown-category"
	CodeRecursiveType    = "recursive-type"
	CodeSynthesis        = "synthesis-failed"
	CodeUnusedOverride   = "unused-override"
	CodeInertDefault     = "inert-default"
	CodeUnreferencedType = "unreferenced-type"
)

// Check synthesizes every declared type with the schema overrides and
// reports what would fail or have no effect.
func (s *Schema) Check() *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	keys := make(map[string]bool)
	referenced := make(map[string]bool)

	for _, name := range names {
		descriptor.Walk(s.Types[name], func(t *descriptor.Type) bool {
			switch t.Category {
			case descriptor.CategoryObjectProperty:
				keys[t.Key] = true
			case descriptor.CategoryDeferred:
				referenced[t.Name] = true
			}
			return true
		})

		s.checkSynthesis(name, diags)
	}

	for _, name := range names {
		if !referenced[name] && name != s.File.Root {
			diags.AddInfo(CodeUnreferencedType, "type is neither the root nor referenced", name, "")
		}
	}

	properties := slices.Sorted(maps.Keys(keys))
	for _, name := range sortedKeys(s.File.Overrides) {
		if !keys[name] {
			diags.AddWarning(CodeUnusedOverride,
				fmt.Sprintf("override %q matches no property%s", name, match.Hint(name, properties)), "", "")
		}
	}

	for _, key := range sortedKeys(s.File.Defaults) {
		if !defaultCategory(key).IsPrimitive() {
			diags.AddWarning(CodeInertDefault,
				fmt.Sprintf("default for %s has no effect, only primitive categories use defaults", key), "", "")
		}
	}

	return diags
}

func (s *Schema) checkSynthesis(name string, diags *diagnostic.Diagnostics) {
	opts, err := s.Options(name)
	if err != nil {
		diags.AddError(CodeSynthesis, err.Error(), name, "")
		return
	}

	_, err = factory.GenerateMockObject(opts)

	var (
		unknown   *factory.UnknownCategoryError
		recursive *factory.RecursiveTypeError
	)

	switch {
	case err == nil:
	case errors.As(err, &unknown):
		diags.AddError(CodeUnknownCategory,
			fmt.Sprintf("no generator for %s", unknown.Category), name, unknown.Path)
	case errors.As(err, &recursive):
		diags.AddWarning(CodeRecursiveType,
			"recursive type needs a value override on the cycle", name, recursive.Path)
	default:
		diags.AddError(CodeSynthesis, err.Error(), name, "")
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
