package factory

import (
	"maps"
	"slices"
	"sync"

	"mock-factory/descriptor"
)

// Generator produces a value for a descriptor. Generators recurse into
// children through the Scope they are given.
type Generator func(s *Scope, t *descriptor.Type) (any, error)

// Registry maps categories to generators. A Registry is safe for
// concurrent use; registration does not disturb running syntheses
// beyond the lookups that happen after it.
type Registry struct {
	mu         sync.RWMutex
	generators map[descriptor.Category]Generator
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry used by GenerateMockObject.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry creates a Registry with every builtin generator installed.
func NewRegistry() *Registry {
	r := &Registry{generators: make(map[descriptor.Category]Generator)}

	for _, category := range descriptor.Primitives() {
		r.generators[category] = resolveValue(category)
	}

	r.generators[descriptor.CategoryAlias] = generateAlias
	r.generators[descriptor.CategoryObject] = generateObject
	r.generators[descriptor.CategoryObjectProperty] = generateObjectProperty
	r.generators[descriptor.CategoryArray] = generateArray
	r.generators[descriptor.CategoryUnion] = generateUnion
	r.generators[descriptor.CategoryDeferred] = generateDeferred
	r.generators[descriptor.CategoryParameterizedAlias] = generateParameterizedAlias
	r.generators[descriptor.CategoryGenericApplication] = generateApplication
	r.generators[descriptor.CategoryReadOnlyArray] = generateReadOnlyArray
	r.generators[descriptor.CategoryKeysOf] = generateKeysOf

	return r
}

// Register installs gen for category, replacing any previous generator.
func (r *Registry) Register(category descriptor.Category, gen Generator) {
	if gen == nil {
		panic("generator for category " + category.String() + " cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.generators[category] = gen
}

// Lookup returns the generator registered for category.
func (r *Registry) Lookup(category descriptor.Category) (Generator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gen, ok := r.generators[category]
	return gen, ok
}

// Categories returns the registered categories, sorted.
func (r *Registry) Categories() []descriptor.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.generators))
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &Registry{generators: maps.Clone(r.generators)}
}

// Register installs gen for category in the default registry.
func Register(category descriptor.Category, gen Generator) {
	defaultRegistry.Register(category, gen)
}
