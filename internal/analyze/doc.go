// Package analyze turns Go types into type descriptors.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to load
// packages, then converts every exported named type into a descriptor
// tree the factory can synthesize:
//   - structs become objects keyed by JSON field name
//   - named types become aliases; named basic types with constants become
//     unions of those constants, in declaration order
//   - pointers are nullable, slices are arrays, fixed arrays are read-only
//     array applications
//   - time.Time is a date, maps and interfaces are existential
//   - recursive references are deferred nodes
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeGraph: descriptors of all exported named types
package analyze
