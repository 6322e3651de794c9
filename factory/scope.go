package factory

import (
	"maps"
	"reflect"

	"mock-factory/descriptor"
)

// Producer is a field override invoked once per occurrence of the field.
type Producer func() any

// ProducerE is a Producer that can fail; its error aborts the synthesis.
type ProducerE func() (any, error)

// Scope is the state of a single synthesis call: the override maps and
// the descriptors currently being synthesized. A Scope is created by
// GenerateMockObject and must not outlive it.
type Scope struct {
	registry *Registry
	values   map[string]any
	defaults map[descriptor.Category]any

	active map[visit]struct{}
	path   descriptor.Path
}

type visit struct {
	t        *descriptor.Type
	category descriptor.Category
}

func newScope(r *Registry, opts Options) *Scope {
	root := "root"
	if opts.Type != nil && opts.Type.Name != "" {
		root = opts.Type.Name
	}

	return &Scope{
		registry: r,
		values:   maps.Clone(opts.ValueOverrides),
		defaults: maps.Clone(opts.DefaultOverrides),
		active:   make(map[visit]struct{}),
		path:     descriptor.NewPath(root),
	}
}

// Generate synthesizes t using its own category.
func (s *Scope) Generate(t *descriptor.Type) (any, error) {
	return s.GenerateAs(t, "")
}

// GenerateAs synthesizes t with the generator registered for category.
// An empty category means the category of t.
func (s *Scope) GenerateAs(t *descriptor.Type, category descriptor.Category) (any, error) {
	if t == nil {
		return nil, ErrMissingType
	}

	if category == "" {
		category = t.Category
	}

	gen, ok := s.registry.Lookup(category)
	if !ok {
		return nil, &UnknownCategoryError{Category: category, Path: s.path.String()}
	}

	key := visit{t: t, category: category}
	if _, ok := s.active[key]; ok {
		return nil, &RecursiveTypeError{Type: descriptor.TypeString(t), Path: s.path.String()}
	}

	s.active[key] = struct{}{}
	defer delete(s.active, key)

	return gen(s, t)
}

// FieldValue returns the override for a property name. Producers are
// invoked and their result returned: besides Producer and ProducerE, any
// function without parameters returning a value, or a value and an error.
func (s *Scope) FieldValue(name string) (value any, ok bool, err error) {
	override, ok := s.values[name]
	if !ok {
		return nil, false, nil
	}

	switch fn := override.(type) {
	case Producer:
		return fn(), true, nil
	case func() any:
		return fn(), true, nil
	case ProducerE:
		value, err = fn()
		return value, true, err
	case func() (any, error):
		value, err = fn()
		return value, true, err
	default:
		if value, called, err := invoke(override); called {
			return value, true, err
		}
		return override, true, nil
	}
}

var errorType = reflect.TypeFor[error]()

// invoke calls fn when it is a typed producer such as func() int or
// func() (string, error). called is false for anything else, including
// functions with parameters or without results.
func invoke(fn any) (value any, called bool, err error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() || v.Type().NumIn() != 0 {
		return nil, false, nil
	}

	t := v.Type()

	switch {
	case t.NumOut() == 1:
		return v.Call(nil)[0].Interface(), true, nil
	case t.NumOut() == 2 && t.Out(1).Implements(errorType):
		out := v.Call(nil)
		if e, _ := out[1].Interface().(error); e != nil {
			return nil, true, e
		}
		return out[0].Interface(), true, nil
	default:
		return nil, false, nil
	}
}

// DefaultValue resolves the value of a primitive category: the caller's
// category override when present, the default table otherwise. Stored
// values are returned as is, functions included.
func (s *Scope) DefaultValue(category descriptor.Category) any {
	if v, ok := s.defaults[category]; ok {
		return v
	}

	v, _ := DefaultValue(category)
	return v
}

// Path returns the location currently being synthesized.
func (s *Scope) Path() string {
	return s.path.String()
}

// descend moves the scope to next and returns a func restoring the previous location.
func (s *Scope) descend(next descriptor.Path) func() {
	prev := s.path
	s.path = next

	return func() { s.path = prev }
}
