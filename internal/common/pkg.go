package common

import (
	"path"
	"strings"
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SplitQualified splits "mock-factory/store.Delivery" into its package
// qualifier and type name. The qualifier is empty for a bare name.
func SplitQualified(name string) (qualifier, typeName string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return "", name
	}

	return name[:i], name[i+1:]
}
