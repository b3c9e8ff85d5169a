package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/allensrj/mcp-cdisc-library/internal/instrumentation"
)

// MetricsServer exposes the prometheus scrape endpoint on its own listener,
// separate from the MCP transports.
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
}

// NewMetricsServer builds a /metrics server on addr backed by the provider's
// prometheus registry. It returns an error when the provider uses a
// non-prometheus metrics exporter.
func NewMetricsServer(addr string, provider *instrumentation.Provider, logger *slog.Logger) (*MetricsServer, error) {
	registry := provider.PrometheusRegistry()
	if registry == nil {
		return nil, fmt.Errorf("metrics server requires the prometheus exporter")
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return &MetricsServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

// ListenAndServe blocks serving scrapes until Shutdown or a listener error.
func (m *MetricsServer) ListenAndServe() error {
	m.logger.Info("metrics server listening", slog.String("addr", m.server.Addr))
	err := m.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the scrape endpoint.
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	return m.server.Shutdown(ctx)
}
