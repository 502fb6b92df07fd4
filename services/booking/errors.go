package booking

import "fmt"

// LedgerError is a typed failure from a booking lifecycle operation.
// Instances below are compared by identity with errors.Is.
type LedgerError struct {
	Code    string
	Message string
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrNotFound means no booking exists for the given id.
	ErrNotFound = &LedgerError{Code: "notFound", Message: "booking not found"}

	// ErrInvalidTransition means the action is not legal from the
	// booking's current state.
	ErrInvalidTransition = &LedgerError{Code: "invalidTransition", Message: "action not allowed from current booking status"}

	// ErrAlreadyResolved means another worker response won the race on
	// a pending booking.
	ErrAlreadyResolved = &LedgerError{Code: "alreadyResolved", Message: "booking already responded to or reassigned"}

	// ErrNotEditable means booking details may no longer be changed.
	ErrNotEditable = &LedgerError{Code: "notEditable", Message: "booking details can only be edited before a worker responds"}

	// ErrNotCancellable means the booking has progressed past the
	// cancellable states.
	ErrNotCancellable = &LedgerError{Code: "notCancellable", Message: "booking can no longer be cancelled"}
)
