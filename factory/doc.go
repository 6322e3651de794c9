// Package factory synthesizes example values ("mocks") from type
// descriptors, for use as test fixtures.
//
// Synthesis is a deterministic walk of the descriptor tree. Every node is
// dispatched by category to a Generator found in a Registry:
//   - primitive categories resolve to a default value, see Defaults
//   - objects merge the results of their properties in declaration order
//   - arrays hold exactly one synthesized element
//   - unions pick their first member
//   - aliases and deferred nodes pass through to what they stand for
//   - generic applications are routed to the generator named by their parent
//
// # Overrides
//
// Two independent channels tune the result:
//
//	factory.GenerateMockObject(factory.Options{
//		Type: order,
//		ValueOverrides: map[string]any{
//			"quantity": 3, // used as is
//			"id": factory.Producer(func() any { return nextID() }), // invoked per occurrence
//		},
//		DefaultOverrides: map[descriptor.Category]any{
//			descriptor.CategoryString: "foo",
//		},
//	})
//
// Value overrides are matched by property name at any depth and always
// take precedence over both category defaults and recursion. A recursive
// descriptor can only be synthesized when a value override cuts the cycle;
// otherwise a RecursiveTypeError is returned.
//
// # Extension
//
// New categories are supported by registering a Generator:
//
//	reg := factory.NewRegistry()
//	reg.Register("StringLiteralType", func(_ *factory.Scope, t *descriptor.Type) (any, error) {
//		return t.Literal, nil
//	})
package factory
