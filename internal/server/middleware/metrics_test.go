package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allensrj/mcp-cdisc-library/internal/instrumentation"
)

func newDisabledProvider(t *testing.T) *instrumentation.Provider {
	t.Helper()
	p, err := instrumentation.NewProvider(context.Background(), instrumentation.Config{})
	require.NoError(t, err)
	return p
}

func TestHTTPMetricsPreservesFlusher(t *testing.T) {
	handler := HTTPMetrics(newDisabledProvider(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := w.(http.Flusher)
		assert.True(t, ok, "streaming transports type-assert http.Flusher on the writer")
		assert.NoError(t, http.NewResponseController(w).Flush())

		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte("data: {}\n\n"))
		w.(http.Flusher).Flush()
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))

	assert.True(t, rec.Flushed)
	assert.Equal(t, "data: {}\n\n", rec.Body.String())
}

func TestHTTPMetricsCapturesFirstStatus(t *testing.T) {
	handler := HTTPMetrics(newDisabledProvider(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "plain path unchanged",
			path: "/mcp",
			want: "/mcp",
		},
		{
			name: "uuid collapsed",
			path: "/mcp/0f8fad5b-d9cb-469f-a165-70867728950e",
			want: "/mcp/{id}",
		},
		{
			name: "session query collapsed",
			path: "/message?sessionId=abc123&foo=bar",
			want: "/message?sessionId={id}&foo=bar",
		},
		{
			name: "uppercase uuid collapsed",
			path: "/sse/0F8FAD5B-D9CB-469F-A165-70867728950E",
			want: "/sse/{id}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePath(tt.path))
		})
	}
}
