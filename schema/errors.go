package schema

import (
	"fmt"
	"strings"
)

// Violation describes a single failed rule on a candidate record.
type Violation struct {
	// Path locates the field, including nested steps (e.g. "author.name",
	// "tags[2]").
	Path string
	// Rule names the failed rule: "required", "type", "constraint" or "check".
	Rule string
	// Message is a human-readable description of the failure.
	Message string
}

// ValidationError carries every violation found on a candidate record, in
// field declaration order.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Path, v.Message))
	}
	return fmt.Sprintf("schema: %d violation(s): %s", len(e.Violations), strings.Join(parts, "; "))
}
