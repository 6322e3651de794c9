package descriptor

// Type is a node of a type descriptor tree. Category selects which of the
// remaining fields are meaningful; the others stay zero.
type Type struct {
	Category Category // Dispatch tag

	// Name of an alias, parameterized alias or deferred reference.
	Name string

	// Properties are ObjectTypeProperty nodes of an ObjectType, in declaration order.
	Properties []*Type

	// Key and Value describe a single ObjectTypeProperty.
	Key   string
	Value *Type

	// Element is the element descriptor of an ArrayType.
	Element *Type

	// TypeInstances are the type arguments of a $ReadOnlyArray or a TypeParameterApplication.
	TypeInstances []*Type

	// Members are the members of a UnionType, in declaration order.
	Members []*Type

	// Literal is the value carried by literal categories.
	Literal any

	// Target is the aliased type of a TypeAlias, the wrapped type of a
	// NullableType and the subject of a $KeysType.
	Target *Type

	// Parent names the owning type of a TypeParameterApplication (e.g. "$ReadOnlyArray").
	Parent string

	reveal func() *Type
}

// String returns a human-readable representation of the Type.
func (t *Type) String() string {
	return TypeString(t)
}

// Reveal forces a deferred node one step and returns the descriptor it
// stands for. Other nodes are returned unchanged.
func (t *Type) Reveal() *Type {
	if t == nil || t.Category != CategoryDeferred {
		return t
	}

	if t.reveal == nil {
		return nil
	}

	return t.reveal()
}

// Unwrap forces deferred nodes, follows aliases and evaluates $KeysType
// into a union of its subject's property keys. The result is never a
// deferred node or an alias unless the chain is broken or cyclic.
func (t *Type) Unwrap() *Type {
	seen := map[*Type]struct{}{}

	for t != nil {
		if _, ok := seen[t]; ok {
			return t
		}
		seen[t] = struct{}{}

		switch t.Category {
		case CategoryDeferred:
			t = t.Reveal()
		case CategoryAlias:
			t = t.Target
		case CategoryKeysOf:
			return keysOf(t.Target.Unwrap())
		default:
			return t
		}
	}

	return nil
}

func keysOf(subject *Type) *Type {
	if subject == nil {
		return Union()
	}

	switch subject.Category {
	case CategoryUnion:
		return subject
	case CategoryObject:
		members := make([]*Type, 0, len(subject.Properties))
		for _, prop := range subject.Properties {
			members = append(members, Literal(prop.Key))
		}

		return Union(members...)
	default:
		return Union()
	}
}
