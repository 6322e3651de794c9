package analyze

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"mock-factory/descriptor"
	"mock-factory/internal/common"
	"mock-factory/internal/match"
)

// CategoryChan is the category given to channel types. No generator is
// registered for it.
const CategoryChan descriptor.Category = "ChanType"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "mock-factory/store"
	Name    string // e.g., "Delivery"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeGraph holds the descriptors of all exported named types of the
// loaded packages.
type TypeGraph struct {
	// Types maps TypeID to the descriptor of the named type.
	Types map[TypeID]*descriptor.Type
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*descriptor.Type),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the descriptor for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *descriptor.Type {
	return g.Types[id]
}

// Find looks a type up by name. The name is bare ("Delivery"), qualified
// with its package path ("mock-factory/store.Delivery") or with its
// package alias ("store.Delivery"); it must match a single loaded type.
func (g *TypeGraph) Find(name string) (*descriptor.Type, error) {
	qualifier, typeName := common.SplitQualified(name)

	var matches []TypeID
	for id := range g.Types {
		if id.Name != typeName {
			continue
		}

		if qualifier == "" || qualifier == id.PkgPath || qualifier == common.PkgAlias(id.PkgPath) {
			matches = append(matches, id)
		}
	}

	if id, ok := common.Only(matches); ok {
		return g.Types[id], nil
	}

	if len(matches) == 0 {
		names := make([]string, 0, len(g.Types))
		for id := range g.Types {
			names = append(names, id.Name)
		}

		return nil, fmt.Errorf("type %s not found%s", name, match.Hint(typeName, names))
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].String() < matches[j].String() })

	return nil, fmt.Errorf("type %s is ambiguous: %v", name, matches)
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}

// PropertyKey returns the key a struct field gets in a synthesized
// object: its JSON name when tagged, the field name otherwise. ok is
// false for fields excluded from JSON with `json:"-"`.
func PropertyKey(fieldName string, tag reflect.StructTag) (key string, ok bool) {
	jsonTag := tag.Get("json")
	if jsonTag == "-" {
		return "", false
	}

	if name, _, _ := strings.Cut(jsonTag, ","); name != "" {
		return name, true
	}

	return fieldName, true
}
