package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doProbe(t *testing.T, mux *http.ServeMux, path string) (int, healthResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	return rec.Code, body
}

func TestHealthEndpoints(t *testing.T) {
	sc := newServerContext(t)
	mux := http.NewServeMux()
	NewHealthChecker(sc).RegisterHealthEndpoints(mux)

	code, body := doProbe(t, mux, "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, sc.Config().ServerName, body.Server)

	code, body = doProbe(t, mux, "/readyz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ready", body.Status)
	assert.Equal(t, sc.Config().BaseURL, body.BaseURL)
}

func TestReadinessAfterShutdown(t *testing.T) {
	sc := newServerContext(t)
	mux := http.NewServeMux()
	NewHealthChecker(sc).RegisterHealthEndpoints(mux)

	require.NoError(t, sc.Shutdown())

	code, body := doProbe(t, mux, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "shutting down", body.Status)

	// Liveness is about the process, not readiness.
	code, _ = doProbe(t, mux, "/healthz")
	assert.Equal(t, http.StatusOK, code)
}
