// Package errs holds the ledger error taxonomy shared by repositories,
// services and handlers.
package errs

import "errors"

// Validation errors. Terminal for the call; never retried.
var (
	ErrPlanNotFound           = errors.New("investment plan not found")
	ErrInvalidAmountForPlan   = errors.New("amount is outside the plan deposit bounds")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrLedgerNotFound         = errors.New("ledger not found")
	ErrPositionNotFound       = errors.New("position not found")
	ErrInvalidStateTransition = errors.New("position is not active")
)

// Transient errors. Safe to retry: every ledger operation is atomic, so a
// failed attempt leaves no partial state behind.
var (
	ErrConcurrentModification = errors.New("ledger was modified concurrently")
	ErrStoreUnavailable       = errors.New("ledger store unavailable")
)

// IsTransient reports whether err is worth retrying.
func IsTransient(err error) bool {
	return errors.Is(err, ErrConcurrentModification) || errors.Is(err, ErrStoreUnavailable)
}
