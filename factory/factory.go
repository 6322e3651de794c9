package factory

import (
	"mock-factory/descriptor"
)

// Options configures a single synthesis call.
type Options struct {
	// Type is the root descriptor. Required.
	Type *descriptor.Type

	// ValueOverrides maps a property name to the value used wherever a
	// property of that name appears, at any depth. Producer, ProducerE
	// and their unnamed func equivalents are invoked instead of used.
	ValueOverrides map[string]any

	// DefaultOverrides replaces the default value of primitive categories.
	DefaultOverrides map[descriptor.Category]any
}

// GenerateMockObject synthesizes an example value for opts.Type using the
// default registry.
func GenerateMockObject(opts Options) (any, error) {
	return defaultRegistry.GenerateMockObject(opts)
}

// GenerateMockObject synthesizes an example value for opts.Type. Override
// maps live for the duration of this call only, so concurrent calls never
// observe each other's overrides.
func (r *Registry) GenerateMockObject(opts Options) (any, error) {
	if opts.Type == nil {
		return nil, ErrMissingType
	}

	return newScope(r, opts).Generate(opts.Type)
}
