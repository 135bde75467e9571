package save

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the store
var (
	// ErrOversized means the serialized payload exceeded the configured
	// size cap; nothing was written.
	ErrOversized = errors.New("save payload exceeds size limit")

	// ErrVersionMismatch means the stored record carries a different
	// version than this build expects. Load fails closed rather than
	// guessing a migration.
	ErrVersionMismatch = errors.New("save version mismatch, migration required")

	// ErrNotFound means the storage backend has no blob under the key
	ErrNotFound = errors.New("save entry not found")
)

// ValidationError reports a structurally invalid game state: a required
// field missing, out of range, or inconsistent with another field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid save state: %s %s", e.Field, e.Reason)
}
