// Package schema validates native records against declarative field rules.
//
// A descriptor is an ordered list of Field entries, each carrying a Rule:
// required flag, primitive type, generated-identifier marker, default
// value, a go-playground/validator constraint tag, an optional custom
// check function and, for objects and lists, nested rules.
//
// Validate never mutates the candidate record. It returns a fresh
// normalized copy with generated identifiers and defaults filled in, or a
// *ValidationError listing every violated rule in declaration order so a
// caller can report all problems at once.
package schema
