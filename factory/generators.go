package factory

import (
	"maps"

	"mock-factory/descriptor"
	"mock-factory/internal/common"
)

// resolveValue returns the generator of a primitive category.
func resolveValue(category descriptor.Category) Generator {
	return func(s *Scope, _ *descriptor.Type) (any, error) {
		return s.DefaultValue(category), nil
	}
}

func generateAlias(s *Scope, t *descriptor.Type) (any, error) {
	return s.Generate(t.Target)
}

// generateObject merges the single-key results of every property in
// declaration order.
func generateObject(s *Scope, t *descriptor.Type) (any, error) {
	obj := make(Object, len(t.Properties))

	for _, prop := range t.Properties {
		v, err := s.Generate(prop)
		if err != nil {
			return nil, err
		}

		if single, ok := v.(Object); ok {
			maps.Copy(obj, single)
		}
	}

	return obj, nil
}

// generateObjectProperty resolves a property by name override first and
// falls back to synthesizing its value descriptor.
func generateObjectProperty(s *Scope, t *descriptor.Type) (any, error) {
	restore := s.descend(s.path.Field(t.Key))
	defer restore()

	value, ok, err := s.FieldValue(t.Key)
	if err != nil {
		return nil, err
	}

	if !ok {
		value, err = s.Generate(t.Value)
		if err != nil {
			return nil, err
		}
	}

	return Object{t.Key: value}, nil
}

func generateArray(s *Scope, t *descriptor.Type) (any, error) {
	return generateSingleton(s, t.Element)
}

func generateReadOnlyArray(s *Scope, t *descriptor.Type) (any, error) {
	var elem *descriptor.Type
	if len(t.TypeInstances) > 0 {
		elem = t.TypeInstances[0]
	}

	return generateSingleton(s, elem)
}

// generateSingleton builds an example array holding exactly one element.
func generateSingleton(s *Scope, elem *descriptor.Type) (any, error) {
	restore := s.descend(s.path.Elem())
	defer restore()

	v, err := s.Generate(elem)
	if err != nil {
		return nil, err
	}

	return []any{v}, nil
}

func generateUnion(s *Scope, t *descriptor.Type) (any, error) {
	return firstMember(s, t)
}

// firstMember picks the first member of a union. Literal members give
// their value; other members are synthesized, where a plain literal
// lookup would only give undefined. An empty union is Undefined.
func firstMember(s *Scope, union *descriptor.Type) (any, error) {
	if union == nil {
		return Undefined, nil
	}

	first, ok := common.First(union.Members)
	if !ok {
		return Undefined, nil
	}

	if first != nil && first.Category.IsLiteral() {
		return first.Literal, nil
	}

	return s.Generate(first)
}

func generateDeferred(s *Scope, t *descriptor.Type) (any, error) {
	return s.Generate(t.Reveal())
}

// generateParameterizedAlias does not resolve type parameters.
func generateParameterizedAlias(*Scope, *descriptor.Type) (any, error) {
	return Object{}, nil
}

// generateApplication routes the node to the generator of its owning
// type, e.g. a $ReadOnlyArray<T> application to the $ReadOnlyArray one.
func generateApplication(s *Scope, t *descriptor.Type) (any, error) {
	return s.GenerateAs(t, descriptor.Category(t.Parent))
}

func generateKeysOf(s *Scope, t *descriptor.Type) (any, error) {
	return firstMember(s, t.Unwrap())
}
