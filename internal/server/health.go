package server

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthChecker serves the liveness and readiness endpoints for the HTTP
// transports.
type HealthChecker struct {
	sc      *ServerContext
	started time.Time
}

// DefaultShutdownTimeout bounds graceful shutdown of the HTTP listeners.
const DefaultShutdownTimeout = 30 * time.Second

// NewHealthChecker builds a HealthChecker bound to sc.
func NewHealthChecker(sc *ServerContext) *HealthChecker {
	return &HealthChecker{sc: sc, started: time.Now()}
}

// RegisterHealthEndpoints mounts the liveness and readiness probes on mux.
func (h *HealthChecker) RegisterHealthEndpoints(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", h.LivenessHandler())
	mux.HandleFunc("/readyz", h.ReadinessHandler())
}

type healthResponse struct {
	Status  string `json:"status"`
	Server  string `json:"server"`
	Version string `json:"version"`
	Uptime  string `json:"uptime,omitempty"`
	BaseURL string `json:"baseURL,omitempty"`
}

// LivenessHandler always reports healthy while the process is running.
func (h *HealthChecker) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.write(w, http.StatusOK, healthResponse{
			Status:  "ok",
			Server:  h.sc.Config().ServerName,
			Version: h.sc.Config().Version,
			Uptime:  time.Since(h.started).Round(time.Second).String(),
		})
	}
}

// ReadinessHandler reports ready until shutdown begins, so load balancers
// drain traffic before the listener closes.
func (h *HealthChecker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.sc.IsShutdown() {
			h.write(w, http.StatusServiceUnavailable, healthResponse{
				Status:  "shutting down",
				Server:  h.sc.Config().ServerName,
				Version: h.sc.Config().Version,
			})
			return
		}
		h.write(w, http.StatusOK, healthResponse{
			Status:  "ready",
			Server:  h.sc.Config().ServerName,
			Version: h.sc.Config().Version,
			BaseURL: h.sc.Config().BaseURL,
		})
	}
}

func (h *HealthChecker) write(w http.ResponseWriter, code int, body healthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
