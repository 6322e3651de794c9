package descriptor

import "strings"

// Path is a readable location inside a descriptor tree.
// Examples:
//   - "Delivery" for the root
//   - "Delivery.address" for a property
//   - "Delivery.orders[]" for array elements
//   - "Delivery.orders[].fruit" for a property of an element
//
// Paths are immutable; every method returns a new Path.
type Path struct {
	parts []string
}

// NewPath creates a Path from a root name.
func NewPath(root string) Path {
	return Path{parts: []string{root}}
}

// Field appends a property name.
func (p Path) Field(name string) Path {
	return Path{parts: append(append([]string{}, p.parts...), name)}
}

// Elem marks the last segment as array elements.
func (p Path) Elem() Path {
	if len(p.parts) == 0 {
		return Path{parts: []string{"[]"}}
	}

	parts := make([]string, len(p.parts))
	copy(parts, p.parts)
	parts[len(parts)-1] += "[]"

	return Path{parts: parts}
}

// String returns the dotted path.
func (p Path) String() string {
	return strings.Join(p.parts, ".")
}
