// Package errcode wraps the core's sentinel errors with the numeric abort
// codes spec.md assigns per module (spec §7). Each native/* package still
// defines its own package-level sentinel errors, following the teacher's
// native/lending and native/escrow convention; this package only adds the
// numeric code spec.md's testable properties check for with errors.As.
package errcode

import "fmt"

// Error pairs a sentinel error with its module-local abort code.
type Error struct {
	Code uint32
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil || e.Err == nil {
		return fmt.Sprintf("abort %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap exposes the wrapped sentinel for errors.Is comparisons.
func (e *Error) Unwrap() error { return e.Err }

// New wraps err with the given module-local abort code.
func New(code uint32, err error) error {
	return &Error{Code: code, Err: err}
}
