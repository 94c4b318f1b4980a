// Package uid produces unique string identifiers for generated key fields.
package uid

import "github.com/google/uuid"

// New returns a fresh identifier, unique across calls with overwhelming
// probability. Values are plain strings suitable for hash or range keys.
func New() string {
	return uuid.NewString()
}
