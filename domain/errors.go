package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrValidation matches every *ValidationError
	ErrValidation = errors.New("validation error")
	// ErrLedger matches every *LedgerError
	ErrLedger = errors.New("ledger error")
)

// ValidationError is malformed or missing user input, found before the ledger is contacted.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation || target == ErrBadParamInput
}

// LedgerError is any failure reported by a ledger call: network faults,
// rejected signatures, reverted transactions. The message of the cause is
// passed through untouched.
type LedgerError struct {
	Op  string
	Err error
}

func NewLedgerError(op string, err error) *LedgerError {
	return &LedgerError{Op: op, Err: err}
}

func (e *LedgerError) Error() string {
	if e.Err == nil {
		return e.Op + ": unknown ledger failure"
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

func (e *LedgerError) Is(target error) bool {
	return target == ErrLedger
}

// AsLedgerError wraps err unless it already is a *LedgerError.
func AsLedgerError(op string, err error) error {
	if err == nil {
		return nil
	}
	var le *LedgerError
	if errors.As(err, &le) {
		return err
	}
	return NewLedgerError(op, err)
}
