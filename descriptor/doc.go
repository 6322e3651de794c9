// Package descriptor defines the type descriptor tree consumed by the
// mock factory.
//
// A descriptor is a *Type tagged with a Category. The category is the
// only dispatch key; the remaining fields hold category specific
// children:
//   - ObjectType: Properties (ObjectTypeProperty nodes)
//   - ObjectTypeProperty: Key and Value
//   - ArrayType: Element
//   - $ReadOnlyArray, TypeParameterApplication: TypeInstances (and Parent)
//   - UnionType: Members, each usually a literal
//   - TypeAlias, NullableType, $KeysType: Target
//   - TypeTDZ: a deferred reference forced with Reveal
//
// Descriptors are produced elsewhere (a schema file, Go package analysis,
// or hand-built with the constructors in this package) and are treated
// as read-only once built.
package descriptor
