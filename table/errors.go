package table

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned by Create when an item with the same key
// already exists. The caller decides whether to retry as a Put or pick a
// new key; the mapper never does either on its own.
var ErrDuplicateKey = errors.New("dynamodel: item with the same key already exists")

// DefinitionError reports a misuse of a table definition: duplicate table
// names, key or index fields that are not declared, unknown index names at
// query time, or an ambiguous point lookup on a composite-keyed table.
// It indicates a programming mistake and is never retryable.
type DefinitionError struct {
	Table  string
	Reason string
}

func (e *DefinitionError) Error() string {
	if e.Table == "" {
		return "dynamodel: " + e.Reason
	}
	return fmt.Sprintf("dynamodel: table %q: %s", e.Table, e.Reason)
}
