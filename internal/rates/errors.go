package rates

import (
	"errors"
	"fmt"
)

// ErrFetch is wrapped by every fetch failure so callers can treat them alike.
var ErrFetch = errors.New("fetch exchange rate")

var (
	ErrEmptyCode   = errors.New("currency code required")
	ErrTransport   = fmt.Errorf("%w: transport", ErrFetch)
	ErrStatus      = fmt.Errorf("%w: unexpected status", ErrFetch)
	ErrUnsupported = fmt.Errorf("%w: currency not supported", ErrFetch)
)

// StatusError carries the HTTP status of a non-success response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrStatus.Error(), e.Code)
}

func (e *StatusError) Unwrap() error { return ErrStatus }
