package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnconvertible indicates that the rate provider has no rate for the requested
// currency pair. This is a soft failure: the affected item is excluded from the
// priced set, it must not abort the whole batch.
var ErrUnconvertible = errors.New("no exchange rate available for currency pair")

// RateLookupError is a hard failure of the external rate provider: a transport
// error, a malformed body, or a provider-reported failure. It aborts the batch.
// Kept as a distinct type from ErrUnconvertible so callers can branch with
// errors.As instead of matching on error strings.
type RateLookupError struct {
	Code    int
	Message string
	Err     error
}

func (e *RateLookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rate lookup failed: %v", e.Err)
	}
	return fmt.Sprintf("rate lookup failed: provider error %d: %s", e.Code, e.Message)
}

func (e *RateLookupError) Unwrap() error {
	return e.Err
}
