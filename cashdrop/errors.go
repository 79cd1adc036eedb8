/*
errors.go - Error kinds surfaced by the cash-drop core

PURPOSE:
  All error types in one place. Callers classify with errors.Is against the
  sentinels, or errors.As against the structured types for detail.

ERROR CATEGORIES:
  1. Validation - bad or missing input, date outside the window, non-positive
     drop, reconcile amount/notes mismatch. Nothing was written.
  2. Conflict   - duplicate submission, daily cap reached, record in the wrong
     status, batch number already used. Retry with different parameters.
  3. Not found  - missing drop, drawer or batch.
  4. Forbidden  - actor lacks the admin flag or does not own the draft.

  Store failures that are none of the above are wrapped with %w and passed
  through untouched.

SEE ALSO:
  - lifecycle.go: Raises these errors
  - api/handlers.go: Maps them to HTTP status codes
*/
package cashdrop

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

// Store-level errors. Store implementations return these so the lifecycle
// can translate constraint violations into ConflictError.
var (
	// ErrDuplicateSlot is returned when a second submitted-or-later drop
	// would occupy the same workstation/shift/date.
	ErrDuplicateSlot = errors.New("workstation, shift and date already submitted")

	// ErrDuplicateDraft is returned when a user already holds a draft for
	// the same workstation/shift/date.
	ErrDuplicateDraft = errors.New("draft already exists for workstation, shift and date")

	// ErrDuplicateBatchNumber is returned when a batch number is reused.
	ErrDuplicateBatchNumber = errors.New("batch number already exists")

	// ErrRecordNotFound is returned by Get* methods for unknown ids.
	ErrRecordNotFound = errors.New("record not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ConflictReason is a machine-readable conflict cause.
type ConflictReason string

const (
	ConflictDuplicateSubmission ConflictReason = "duplicate_submission"
	ConflictDuplicateDraft      ConflictReason = "duplicate_draft"
	ConflictDailyCap            ConflictReason = "daily_cap_reached"
	ConflictInvalidTransition   ConflictReason = "invalid_transition"
	ConflictBatchNumberTaken    ConflictReason = "batch_number_taken"
	ConflictNothingEligible     ConflictReason = "nothing_eligible"
)

// ConflictError reports a request that is well formed but clashes with
// existing records.
type ConflictError struct {
	Reason     ConflictReason
	Message    string
	ExistingID string // the record already holding the slot, when known
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NotFoundError names the missing record.
type NotFoundError struct {
	Kind string // "cash_drop", "drawer", "batch"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ForbiddenError is returned when the actor may not perform an action.
type ForbiddenError struct {
	Action string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("not allowed to %s", e.Action)
}

func (e *ForbiddenError) Unwrap() error { return ErrForbidden }

// =============================================================================
// ERROR HELPERS
// =============================================================================

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsConflict(err error) bool   { return errors.Is(err, ErrConflict) }
func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsForbidden(err error) bool  { return errors.Is(err, ErrForbidden) }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func notFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}
