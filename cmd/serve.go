package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/allensrj/mcp-cdisc-library/internal/catalog"
	"github.com/allensrj/mcp-cdisc-library/internal/instrumentation"
	"github.com/allensrj/mcp-cdisc-library/internal/library"
	"github.com/allensrj/mcp-cdisc-library/internal/logging"
	"github.com/allensrj/mcp-cdisc-library/internal/server"
	"github.com/allensrj/mcp-cdisc-library/internal/tools"
	"github.com/allensrj/mcp-cdisc-library/internal/tools/adam"
	"github.com/allensrj/mcp-cdisc-library/internal/tools/ct"
	"github.com/allensrj/mcp-cdisc-library/internal/tools/products"
	"github.com/allensrj/mcp-cdisc-library/internal/tools/qrs"
	"github.com/allensrj/mcp-cdisc-library/internal/tools/standards"
)

// Transport type constants for the MCP server.
const (
	transportStdio          = "stdio"
	transportSSE            = "sse"
	transportStreamableHTTP = "streamable-http"
)

const serverName = "mcp-cdisc-library"

func newServeCmd() *cobra.Command {
	config := ServeConfig{}
	var requestTimeout, ctRequestTimeout string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP CDISC Library server",
		Long: `Starts the MCP server exposing the CDISC Library as read-only tools.

The CDISC Library API key is resolved from --api-key, the CDISC_API_KEY
environment variable, or the config file, in that order. The server starts
without a key; tool calls then return a configuration error instead of
reaching the network.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if config.RequestTimeout, err = parseTimeoutFlag(requestTimeout, "request-timeout"); err != nil {
				return err
			}
			if config.CTRequestTimeout, err = parseTimeoutFlag(ctRequestTimeout, "ct-request-timeout"); err != nil {
				return err
			}
			if err := config.resolve(); err != nil {
				return err
			}
			return runServe(config)
		},
	}

	cmd.Flags().StringVar(&config.Transport, "transport", transportStdio, "Transport type: stdio, sse, or streamable-http")
	cmd.Flags().StringVar(&config.HTTPAddr, "http-addr", ":8080", "HTTP server address (for sse and streamable-http transports)")
	cmd.Flags().StringVar(&config.SSEEndpoint, "sse-endpoint", "/sse", "SSE endpoint path (for sse transport)")
	cmd.Flags().StringVar(&config.MessageEndpoint, "message-endpoint", "/message", "Message endpoint path (for sse transport)")
	cmd.Flags().StringVar(&config.HTTPEndpoint, "http-endpoint", "/mcp", "HTTP endpoint path (for streamable-http transport)")
	cmd.Flags().BoolVar(&config.MetricsEnabled, "metrics", false, "Serve prometheus metrics on a dedicated listener (requires INSTRUMENTATION_ENABLED=true)")
	cmd.Flags().StringVar(&config.MetricsAddr, "metrics-addr", ":9090", "Metrics server address")
	cmd.Flags().StringVar(&config.APIKey, "api-key", "", "CDISC Library API key (can also be set via CDISC_API_KEY)")
	cmd.Flags().StringVar(&config.BaseURL, "base-url", "", "CDISC Library API base URL (default: "+library.DefaultBaseURL+")")
	cmd.Flags().StringVar(&requestTimeout, "request-timeout", "", "Per-call timeout for library requests (default: 15s)")
	cmd.Flags().StringVar(&ctRequestTimeout, "ct-request-timeout", "", "Per-call timeout for controlled terminology requests (default: 30s)")
	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "Config file path (default: $XDG_CONFIG_HOME/mcp-cdisc-library/config.yaml)")
	cmd.Flags().StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, or error")
	cmd.Flags().StringVar(&config.LogFormat, "log-format", "text", "Log format: text or json")

	return cmd
}

func parseTimeoutFlag(value, name string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return d, nil
}

// runServe contains the main server logic with support for multiple
// transports.
func runServe(config ServeConfig) error {
	// Logs go to stderr on every transport; stdout belongs to the MCP
	// protocol in stdio mode.
	logger := logging.New(os.Stderr, config.LogFormat, config.LogLevel)

	// Graceful shutdown on both SIGINT and SIGTERM.
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	instrumentationConfig := instrumentation.NewConfigFromEnv(rootCmd.Version)
	instrumentationProvider, err := instrumentation.NewProvider(shutdownCtx, instrumentationConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if shutdownErr := instrumentationProvider.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("error during instrumentation shutdown", logging.Err(shutdownErr))
		}
	}()
	if instrumentationProvider.Enabled() {
		logger.Info("instrumentation enabled",
			slog.String("metrics_exporter", instrumentationConfig.MetricsExporter),
			slog.String("traces_exporter", instrumentationConfig.TracesExporter))
	}

	libraryClient, err := library.NewClient(library.ClientConfig{
		BaseURL:   config.BaseURL,
		APIKey:    config.APIKey,
		UserAgent: serverName + "/" + rootCmd.Version,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create CDISC Library client: %w", err)
	}

	serverConfig := &server.Config{
		ServerName:       serverName,
		Version:          rootCmd.Version,
		BaseURL:          config.BaseURL,
		RequestTimeout:   config.RequestTimeout,
		CTRequestTimeout: config.CTRequestTimeout,
	}

	serverContext, err := server.NewServerContext(shutdownCtx,
		server.WithLibraryClient(libraryClient),
		server.WithLogger(logger),
		server.WithConfig(serverConfig),
		server.WithInstrumentation(instrumentationProvider),
	)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if err := serverContext.Shutdown(); err != nil {
			logger.Error("error during server context shutdown", logging.Err(err))
		}
	}()

	if config.APIKey == "" {
		logger.Warn("no CDISC Library API key configured; tool calls will fail until one is provided")
	} else {
		logger.Info("CDISC Library client ready",
			slog.String(logging.KeyEndpoint, config.BaseURL),
			slog.String("api_key", logging.RedactAPIKey(config.APIKey)))
	}

	mcpSrv := mcpserver.NewMCPServer(serverName, rootCmd.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(true, true),
	)

	registry := newOperationRegistry(config)
	for _, register := range []struct {
		name string
		fn   func(*mcpserver.MCPServer, *server.ServerContext, *catalog.Registry) error
	}{
		{"product", products.RegisterProductTools},
		{"standards", standards.RegisterStandardTools},
		{"adam", adam.RegisterADaMTools},
		{"qrs", qrs.RegisterQRSTools},
		{"ct", ct.RegisterCTTools},
	} {
		if err := register.fn(mcpSrv, serverContext, registry); err != nil {
			return fmt.Errorf("failed to register %s tools: %w", register.name, err)
		}
	}
	if err := tools.RegisterCatalogResource(mcpSrv, serverContext, registry); err != nil {
		return fmt.Errorf("failed to register catalog resource: %w", err)
	}

	switch config.Transport {
	case transportStdio:
		// No startup message for stdio mode; stdout carries the protocol.
		return runStdioServer(mcpSrv)
	case transportSSE:
		logger.Info("starting MCP CDISC Library server", slog.String(logging.KeyTransport, config.Transport))
		return runSSEServer(shutdownCtx, mcpSrv, serverContext, config, logger)
	case transportStreamableHTTP:
		logger.Info("starting MCP CDISC Library server", slog.String(logging.KeyTransport, config.Transport))
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, serverContext, config, logger)
	default:
		return fmt.Errorf("unsupported transport type: %s", config.Transport)
	}
}

// newOperationRegistry builds the operation table and applies the configured
// timeout overrides.
func newOperationRegistry(config ServeConfig) *catalog.Registry {
	registry := catalog.DefaultRegistry()
	for _, name := range registry.Names() {
		op := registry.MustGet(name)
		if op.Family == catalog.FamilyCT {
			op.Timeout = config.CTRequestTimeout
		} else {
			op.Timeout = config.RequestTimeout
		}
	}
	return registry
}
