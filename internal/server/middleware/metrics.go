// Package middleware provides HTTP middleware for the server's transports.
package middleware

import (
	"net/http"
	"regexp"
	"time"

	"github.com/allensrj/mcp-cdisc-library/internal/instrumentation"
)

// responseWriter captures the status code written by the wrapped handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.written = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Flush implements http.Flusher; the SSE streams of the HTTP transports
// type-assert for it on every event.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Session identifiers show up in streamable HTTP and SSE paths; collapse
// them so the path label stays low-cardinality.
var (
	uuidPattern    = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
	sessionPattern = regexp.MustCompile(`sessionId=[^&]+`)
)

func normalizePath(path string) string {
	path = uuidPattern.ReplaceAllString(path, "{id}")
	return sessionPattern.ReplaceAllString(path, "sessionId={id}")
}

// HTTPMetrics records request counts and latencies for every request passing
// through. With instrumentation disabled the recording is a no-op and the
// handler chain is unchanged.
func HTTPMetrics(provider *instrumentation.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)
			provider.Metrics().RecordHTTPRequest(
				r.Context(), r.Method, normalizePath(r.URL.Path), rw.statusCode, time.Since(start))
		})
	}
}
