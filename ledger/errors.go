/*
errors.go - Centralized error types for the ledger package

ERROR CATEGORIES:
  1. Validation errors - Malformed or negative monetary fields at entry
     construction. Never silently coerced to zero.
  2. Not-found errors - A requested file is absent from a collection.
     Distinct from "present but empty", which is a legitimate state.

USAGE:
  Callers match with errors.Is / errors.As:

    if errors.Is(err, ledger.ErrValidation) { ... }

    var verr *ledger.ValidationError
    if errors.As(err, &verr) {
        log.Printf("bad field %s: %s", verr.Field, verr.Reason)
    }
*/
package ledger

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrValidation is the root of all entry construction failures.
	ErrValidation = errors.New("ledger validation failed")

	// ErrFileNotFound is returned when a requested ledger file does not
	// exist in the supplied collection or store.
	ErrFileNotFound = errors.New("ledger file not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError reports a malformed field in a raw record.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
