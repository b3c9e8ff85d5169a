// Package library is the HTTP client for the CDISC Library REST API. It
// issues plain GET requests with the required headers and classifies
// failures; it performs no retries and keeps no cache, so every tool call
// maps to exactly one upstream request.
package library

import (
	"context"
	"time"
)

// DefaultBaseURL is the public CDISC Library API root.
const DefaultBaseURL = "https://api.library.cdisc.org/api"

// Client performs GET requests against the CDISC Library API.
type Client interface {
	// Get issues a GET for path, which is relative to the base URL and may
	// carry a query string, and returns the raw response body. The call is
	// bounded by timeout in addition to any deadline already on ctx.
	//
	// Failures are classified: ErrMissingAPIKey before any network activity
	// when no key is configured, ErrTimeout on deadline expiry, *StatusError
	// for non-2xx responses, *TransportError for connection-level failures.
	Get(ctx context.Context, path string, timeout time.Duration) ([]byte, error)
}
