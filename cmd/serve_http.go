package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/allensrj/mcp-cdisc-library/internal/logging"
	"github.com/allensrj/mcp-cdisc-library/internal/server"
	"github.com/allensrj/mcp-cdisc-library/internal/server/middleware"
)

// runStreamableHTTPServer runs the server with Streamable HTTP transport.
// The MCP endpoint, health probes and (optionally) a dedicated metrics
// listener run until the shutdown context fires or a listener fails.
func runStreamableHTTPServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, sc *server.ServerContext, config ServeConfig, logger *slog.Logger) error {
	mux := http.NewServeMux()

	mcpHandler := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithEndpointPath(config.HTTPEndpoint),
	)
	mux.Handle(config.HTTPEndpoint, mcpHandler)

	healthChecker := server.NewHealthChecker(sc)
	healthChecker.RegisterHealthEndpoints(mux)

	var handler http.Handler = mux
	handler = middleware.HTTPMetrics(sc.Instrumentation())(handler)

	httpServer := &http.Server{
		Addr:              config.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	metricsServer, err := maybeStartMetricsServer(config, sc, logger)
	if err != nil {
		return err
	}

	logger.Info("streamable HTTP server starting",
		slog.String("addr", config.HTTPAddr),
		slog.String(logging.KeyEndpoint, config.HTTPEndpoint),
		slog.Any("health_endpoints", []string{"/healthz", "/readyz"}))

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutdown signal received, stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()
		shutdownMetricsServer(shutdownCtx, metricsServer, logger)
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}
	logger.Info("HTTP server gracefully stopped")
	return nil
}

// maybeStartMetricsServer starts the dedicated /metrics listener when both
// the flag and instrumentation are on. Serving scrapes on a separate port
// keeps operational data off the MCP listener.
func maybeStartMetricsServer(config ServeConfig, sc *server.ServerContext, logger *slog.Logger) (*server.MetricsServer, error) {
	if !config.MetricsEnabled {
		return nil, nil
	}
	provider := sc.Instrumentation()
	if !provider.Enabled() {
		logger.Warn("--metrics set but instrumentation is disabled; set INSTRUMENTATION_ENABLED=true")
		return nil, nil
	}
	metricsServer, err := server.NewMetricsServer(config.MetricsAddr, provider, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics server: %w", err)
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil {
			logger.Error("metrics server stopped with error", logging.Err(err))
		}
	}()
	return metricsServer, nil
}

func shutdownMetricsServer(ctx context.Context, metricsServer *server.MetricsServer, logger *slog.Logger) {
	if metricsServer == nil {
		return
	}
	if err := metricsServer.Shutdown(ctx); err != nil {
		logger.Error("error shutting down metrics server", logging.Err(err))
	}
}
