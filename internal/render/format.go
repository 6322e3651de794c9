package render

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Format -linecomment -output=format_string.go

// Format is an output encoding for synthesized values.
type Format int

const (
	_ Format = iota // zero value is an invalid format

	FormatJSON // json
	FormatYAML // yaml
)

// ParseFormat returns the format named s, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case FormatJSON.String():
		return FormatJSON, nil
	case FormatYAML.String(), "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (want json or yaml)", s)
	}
}
