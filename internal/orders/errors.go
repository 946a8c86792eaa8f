package orders

import (
	"errors"
	"strings"
)

// ErrDelivery marks a message sink failure (rejected call, unreachable host, timeout).
// Sinks wrap it; the relay turns it into a RelayError.
var ErrDelivery = errors.New("message delivery failed")

type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

type RelayError struct {
	Err error
}

func (e *RelayError) Error() string { return "relay order: " + e.Err.Error() }
func (e *RelayError) Unwrap() error { return e.Err }

// InternalError wraps any fault that is neither validation nor delivery.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return "internal: " + e.Err.Error() }
func (e *InternalError) Unwrap() error { return e.Err }
