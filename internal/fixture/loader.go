package fixture

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"mock-factory/descriptor"
	"mock-factory/factory"
	"mock-factory/internal/match"
)

// CurrentVersion is the only schema version understood by this package.
const CurrentVersion = "1"

// Schema is a parsed schema file with its named types built.
type Schema struct {
	File *SchemaFile

	// Types maps every declared name to its TypeAlias descriptor.
	Types map[string]*descriptor.Type
}

// LoadFile loads and builds a YAML schema file from the given path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	schema, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schema file %s: %w", path, err)
	}

	return schema, nil
}

// Parse parses YAML data and builds the declared types.
func Parse(data []byte) (*Schema, error) {
	var sf SchemaFile

	err := yaml.Unmarshal(data, &sf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&sf)

	return Build(&sf)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(sf *SchemaFile) {
	if sf.Version == "" {
		sf.Version = CurrentVersion
	}
}

// Build builds descriptors for every type declared in sf. References are
// deferred nodes, so declaration order does not matter and recursive
// types are allowed.
func Build(sf *SchemaFile) (*Schema, error) {
	if sf.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported schema version %q", sf.Version)
	}

	b := &builder{types: make(map[string]*descriptor.Type, len(sf.Types))}

	names := make([]string, 0, len(sf.Types))
	for name := range sf.Types {
		names = append(names, name)
		b.types[name] = descriptor.Alias(name, nil)
	}
	sort.Strings(names)

	for _, name := range names {
		target, err := b.build(sf.Types[name])
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", name, err)
		}

		b.types[name].Target = target
	}

	if sf.Root != "" {
		if _, ok := b.types[sf.Root]; !ok {
			return nil, fmt.Errorf("root %s: %w", sf.Root, ErrUnknownType)
		}
	}

	return &Schema{File: sf, Types: b.types}, nil
}

// Type returns the named type, or the root type when name is empty.
func (s *Schema) Type(name string) (*descriptor.Type, error) {
	if name == "" {
		name = s.File.Root
	}

	if name == "" {
		return nil, fmt.Errorf("no type requested and the schema has no root")
	}

	t, ok := s.Types[name]
	if !ok {
		return nil, fmt.Errorf("type %s: %w%s", name, ErrUnknownType, match.Hint(name, slices.Collect(maps.Keys(s.Types))))
	}

	return t, nil
}

// Options returns factory options synthesizing the named type with the
// overrides and defaults of the schema.
func (s *Schema) Options(name string) (factory.Options, error) {
	t, err := s.Type(name)
	if err != nil {
		return factory.Options{}, err
	}

	defaults := make(map[descriptor.Category]any, len(s.File.Defaults))
	for key, v := range s.File.Defaults {
		defaults[defaultCategory(key)] = v
	}

	return factory.Options{
		Type:             t,
		ValueOverrides:   s.File.Overrides,
		DefaultOverrides: defaults,
	}, nil
}

// defaultCategory maps a defaults key, either a primitive keyword or a
// category tag, to its category.
func defaultCategory(key string) descriptor.Category {
	if category, ok := primitiveKeywords[key]; ok {
		return category
	}

	return descriptor.Category(key)
}

type builder struct {
	types map[string]*descriptor.Type
}

func (b *builder) build(e TypeExpr) (*descriptor.Type, error) {
	switch {
	case e.Keyword != "":
		if category, ok := primitiveKeywords[e.Keyword]; ok {
			return descriptor.Of(category), nil
		}
		return b.reference(e.Keyword)

	case e.Ref != "":
		return b.reference(e.Ref)

	case e.isLiteral:
		return descriptor.Literal(e.Literal), nil

	case e.Object != nil:
		obj := descriptor.Object()
		for _, field := range *e.Object {
			value, err := b.build(field.Type)
			if err != nil {
				return nil, fmt.Errorf("property %s: %w", field.Name, err)
			}
			obj.Properties = append(obj.Properties, descriptor.Field(field.Name, value))
		}
		return obj, nil

	case e.Array != nil:
		elem, err := b.build(*e.Array)
		if err != nil {
			return nil, err
		}
		return descriptor.Array(elem), nil

	case e.ReadOnlyArray != nil:
		elem, err := b.build(*e.ReadOnlyArray)
		if err != nil {
			return nil, err
		}
		return descriptor.ReadOnlyArray(elem), nil

	case e.Union != nil:
		members, err := b.buildAll(e.Union)
		if err != nil {
			return nil, err
		}
		return descriptor.Union(members...), nil

	case e.Nullable != nil:
		inner, err := b.build(*e.Nullable)
		if err != nil {
			return nil, err
		}
		return descriptor.Nullable(inner), nil

	case e.KeysOf != nil:
		subject, err := b.build(*e.KeysOf)
		if err != nil {
			return nil, err
		}
		return descriptor.KeysOf(subject), nil

	case e.Generic != "":
		args, err := b.buildAll(e.Args)
		if err != nil {
			return nil, err
		}
		return descriptor.Apply(e.Generic, args...), nil

	case e.Parameterized != "":
		return descriptor.ParameterizedAlias(e.Parameterized), nil

	default:
		return nil, fmt.Errorf("type expression has no form")
	}
}

func (b *builder) buildAll(exprs []TypeExpr) ([]*descriptor.Type, error) {
	res := make([]*descriptor.Type, 0, len(exprs))
	for _, e := range exprs {
		t, err := b.build(e)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}

	return res, nil
}

// reference resolves a named type lazily through a deferred node.
func (b *builder) reference(name string) (*descriptor.Type, error) {
	target, ok := b.types[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w%s", name, ErrUnknownType, match.Hint(name, slices.Collect(maps.Keys(b.types))))
	}

	return descriptor.Deferred(name, func() *descriptor.Type { return target }), nil
}
