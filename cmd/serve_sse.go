package cmd

import (
	"context"
	"fmt"
	"log/slog"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/allensrj/mcp-cdisc-library/internal/server"
)

// runSSEServer runs the server with SSE transport.
func runSSEServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, sc *server.ServerContext, config ServeConfig, logger *slog.Logger) error {
	sseServer := mcpserver.NewSSEServer(mcpSrv,
		mcpserver.WithSSEEndpoint(config.SSEEndpoint),
		mcpserver.WithMessageEndpoint(config.MessageEndpoint),
	)

	logger.Info("SSE server starting",
		slog.String("addr", config.HTTPAddr),
		slog.String("sse_endpoint", config.SSEEndpoint),
		slog.String("message_endpoint", config.MessageEndpoint))

	metricsServer, err := maybeStartMetricsServer(config, sc, logger)
	if err != nil {
		return err
	}

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := sseServer.Start(config.HTTPAddr); err != nil {
			serverDone <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping SSE server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()
		shutdownMetricsServer(shutdownCtx, metricsServer, logger)
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down SSE server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("SSE server stopped with error: %w", err)
		}
		logger.Info("SSE server stopped normally")
	}

	logger.Info("SSE server gracefully stopped")
	return nil
}
