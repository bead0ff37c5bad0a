// Package id generates opaque, prefixed entity identifiers.
package id

import (
	"fmt"

	"github.com/google/uuid"
)

// New returns a fresh identifier of the form "<prefix>-<uuid>".
// The prefix keeps identifiers human-distinguishable across tables.
func New(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String())
}
