// Package diagnostic provides structured findings reported when a schema
// is checked before synthesis.
//
// Key capabilities:
//   - Overrides that match no property
//   - Types that cannot be synthesized without an override
//   - Declared types nothing refers to
package diagnostic
