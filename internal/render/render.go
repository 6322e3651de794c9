// Package render converts synthesized mock values into plain data and
// encodes them as JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"time"

	"gopkg.in/yaml.v3"

	"mock-factory/factory"
)

// FunctionPlaceholder replaces function values in plain data.
const FunctionPlaceholder = "[Function]"

// Plain returns v with every value an encoder cannot handle replaced:
// functions become FunctionPlaceholder, dates become RFC 3339 strings
// and Undefined properties are dropped. Undefined elsewhere becomes nil.
func Plain(v any) any {
	switch vv := v.(type) {
	case nil:
		return nil
	case factory.Object:
		res := make(map[string]any, len(vv))
		for key, value := range vv {
			if value == factory.Undefined {
				continue
			}
			res[key] = Plain(value)
		}
		return res
	case []any:
		res := make([]any, len(vv))
		for i, value := range vv {
			res[i] = Plain(value)
		}
		return res
	case time.Time:
		return vv.Format(time.RFC3339Nano)
	}

	if v == factory.Undefined {
		return nil
	}

	if reflect.TypeOf(v).Kind() == reflect.Func {
		return FunctionPlaceholder
	}

	return v
}

// Encode writes the plain form of v to w in the given format.
func Encode(w io.Writer, v any, format Format) error {
	plain := Plain(v)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		err := enc.Encode(plain)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		err := enc.Encode(plain)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return enc.Close()

	default:
		return fmt.Errorf("unsupported format %v", format)
	}
}
