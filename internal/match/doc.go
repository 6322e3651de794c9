// Package match suggests known names for misspelled ones: type
// references, property overrides and type lookups.
//
// Names are compared case-insensitively with separators removed, using
// the Levenshtein distance normalized by the longer name.
package match
