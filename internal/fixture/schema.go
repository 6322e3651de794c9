package fixture

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"mock-factory/descriptor"
)

// SchemaFile is the YAML document describing types to synthesize.
type SchemaFile struct {
	// Version of the schema format. Defaults to "1".
	Version string `yaml:"version"`

	// Root names the type synthesized when no other is requested.
	Root string `yaml:"root,omitempty"`

	// Types declares named types. Names can be referenced from any type
	// expression, before or after their declaration.
	Types map[string]TypeExpr `yaml:"types"`

	// Overrides are property value overrides, matched by name.
	Overrides map[string]any `yaml:"overrides,omitempty"`

	// Defaults replace the default of primitive categories, keyed by
	// category tag (e.g. "StringType").
	Defaults map[string]any `yaml:"defaults,omitempty"`
}

// TypeExpr is a type expression. Exactly one form is set.
//
// Scalar forms:
//
//	string | number | boolean | void | any | function | date | property
//	Fruit            # reference to a named type
//
// Mapping forms:
//
//	object: {name: string, tags: {array: string}}
//	array: number
//	readonlyArray: number
//	union: [apples, oranges, {ref: Fruit}]  # scalars are literals
//	nullable: string
//	keysOf: Order
//	generic: $ReadOnlyArray
//	args: [string]
//	parameterized: Box
//	literal: apples
//	ref: Fruit
type TypeExpr struct {
	Keyword string `yaml:"-"` // primitive keyword or type reference

	Object        *Fields    `yaml:"object,omitempty"`
	Array         *TypeExpr  `yaml:"array,omitempty"`
	ReadOnlyArray *TypeExpr  `yaml:"readonlyArray,omitempty"`
	Union         Members    `yaml:"union,omitempty"`
	Nullable      *TypeExpr  `yaml:"nullable,omitempty"`
	KeysOf        *TypeExpr  `yaml:"keysOf,omitempty"`
	Generic       string     `yaml:"generic,omitempty"`
	Args          []TypeExpr `yaml:"args,omitempty"`
	Parameterized string     `yaml:"parameterized,omitempty"`
	Literal       any        `yaml:"literal,omitempty"`
	Ref           string     `yaml:"ref,omitempty"`

	isLiteral bool
}

// Members are union members. Scalars are literal values; mappings are
// type expressions.
type Members []TypeExpr

// Field is a single object property.
type Field struct {
	Name string
	Type TypeExpr
}

// Fields keeps object properties in document order.
type Fields []Field

// primitiveKeywords maps scalar keywords to primitive categories.
var primitiveKeywords = map[string]descriptor.Category{
	"string":   descriptor.CategoryString,
	"number":   descriptor.CategoryNumber,
	"boolean":  descriptor.CategoryBoolean,
	"void":     descriptor.CategoryVoid,
	"any":      descriptor.CategoryExistential,
	"function": descriptor.CategoryFunction,
	"date":     descriptor.CategoryDate,
	"property": descriptor.CategoryProperty,
}

// UnmarshalYAML implements custom YAML unmarshaling for TypeExpr.
// Accepts either a scalar keyword/reference or a mapping with one form.
func (e *TypeExpr) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str == "" {
			return fmt.Errorf("line %d: empty type expression", node.Line)
		}

		*e = TypeExpr{Keyword: str}

		return nil

	case yaml.MappingNode:
		type plain TypeExpr

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*e = TypeExpr(p)

		for i := 0; i < len(node.Content); i += 2 {
			if node.Content[i].Value == "literal" {
				e.isLiteral = true
			}
		}

		return e.validate(node.Line)

	default:
		return fmt.Errorf("line %d: expected type name or mapping, got %v", node.Line, node.Kind)
	}
}

// validate checks that exactly one form is set.
func (e *TypeExpr) validate(line int) error {
	forms := 0
	for _, set := range []bool{
		e.Object != nil,
		e.Array != nil,
		e.ReadOnlyArray != nil,
		e.Union != nil,
		e.Nullable != nil,
		e.KeysOf != nil,
		e.Generic != "",
		e.Parameterized != "",
		e.isLiteral,
		e.Ref != "",
	} {
		if set {
			forms++
		}
	}

	switch {
	case forms == 0:
		return fmt.Errorf("line %d: type expression has no form", line)
	case forms > 1:
		return fmt.Errorf("line %d: type expression has %d forms, want one", line, forms)
	case len(e.Args) > 0 && e.Generic == "":
		return fmt.Errorf("line %d: args are only allowed with generic", line)
	}

	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Fields.
// Accepts a mapping of property name to type expression.
func (f *Fields) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping of properties, got %v", node.Line, node.Kind)
	}

	fields := make(Fields, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var field Field

		err := node.Content[i].Decode(&field.Name)
		if err != nil {
			return err
		}

		err = node.Content[i+1].Decode(&field.Type)
		if err != nil {
			return fmt.Errorf("property %s: %w", field.Name, err)
		}

		fields = append(fields, field)
	}

	*f = fields

	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Members.
func (m *Members) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: expected sequence of union members, got %v", node.Line, node.Kind)
	}

	members := make(Members, 0, len(node.Content))

	for _, item := range node.Content {
		var member TypeExpr

		if item.Kind == yaml.ScalarNode {
			err := item.Decode(&member.Literal)
			if err != nil {
				return err
			}

			member.isLiteral = true
		} else {
			err := item.Decode(&member)
			if err != nil {
				return err
			}
		}

		members = append(members, member)
	}

	*m = members

	return nil
}

// ErrUnknownType is returned for references to undeclared types.
var ErrUnknownType = errors.New("unknown type reference")
