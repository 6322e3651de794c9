package factory

import (
	"errors"
	"fmt"

	"mock-factory/descriptor"
)

var (
	// ErrMissingType is returned when no root descriptor is supplied.
	ErrMissingType = errors.New("Must provide a type")

	// ErrUnknownCategory is wrapped by every UnknownCategoryError.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrRecursiveType is wrapped by every RecursiveTypeError.
	ErrRecursiveType = errors.New("recursive type")
)

// UnknownCategoryError reports a category with no registered generator.
type UnknownCategoryError struct {
	Category descriptor.Category
	Path     string // where in the tree the category was met
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("Unknown type '%s' - If you want to create a mock for this type "+
		"please update the factory to handle it.", e.Category)
}

func (e *UnknownCategoryError) Unwrap() error {
	return ErrUnknownCategory
}

// RecursiveTypeError reports a descriptor that re-enters itself while it
// is still being synthesized.
type RecursiveTypeError struct {
	Type string
	Path string
}

func (e *RecursiveTypeError) Error() string {
	return fmt.Sprintf("Recursive type '%s' at %s - provide a value override for a field "+
		"on the cycle to break it.", e.Type, e.Path)
}

func (e *RecursiveTypeError) Unwrap() error {
	return ErrRecursiveType
}
