package library

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes callers branch on. More specific
// detail travels in StatusError and TransportError.
var (
	// ErrMissingAPIKey is returned before any network activity when the
	// client has no API key to send.
	ErrMissingAPIKey = errors.New("cdisc library api key is not configured")

	// ErrTimeout is returned when a request exceeds its per-call deadline.
	ErrTimeout = errors.New("cdisc library request timed out")
)

// StatusError is returned when the CDISC Library responds with a non-2xx
// status. Body carries the upstream response text verbatim.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cdisc library returned status %d", e.StatusCode)
}

// TransportError is returned when the request fails before an HTTP response
// arrives: DNS failures, refused connections, TLS problems.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cdisc library request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
