package descriptor

// Walk visits t and its descendants depth-first, in field order. Deferred
// nodes are visited but not forced, so Walk terminates on recursive
// descriptors. Returning false from fn skips the children of a node.
func Walk(t *Type, fn func(*Type) bool) {
	if t == nil || !fn(t) {
		return
	}

	for _, prop := range t.Properties {
		Walk(prop, fn)
	}

	Walk(t.Value, fn)
	Walk(t.Element, fn)

	for _, inst := range t.TypeInstances {
		Walk(inst, fn)
	}

	for _, m := range t.Members {
		Walk(m, fn)
	}

	Walk(t.Target, fn)
}
