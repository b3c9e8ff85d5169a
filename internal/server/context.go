// Package server holds the shared state handed to every tool handler: the
// CDISC Library client, configuration, logging and instrumentation. It is
// assembled once at startup via functional options and is safe for
// concurrent use.
package server

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/allensrj/mcp-cdisc-library/internal/instrumentation"
	"github.com/allensrj/mcp-cdisc-library/internal/library"
)

// Configuration errors returned by NewServerContext.
var (
	ErrMissingClient = errors.New("library client is required")
	ErrMissingLogger = errors.New("logger is required")
	ErrMissingConfig = errors.New("config is required")
)

// Config carries the server-level settings tool handlers read at call time.
type Config struct {
	// ServerName and Version identify this server to MCP clients.
	ServerName string
	Version    string

	// BaseURL is the CDISC Library API root in use, kept for logging and
	// the health report.
	BaseURL string

	// RequestTimeout bounds most upstream calls; CTRequestTimeout applies
	// to controlled terminology packages, which are much larger.
	RequestTimeout   time.Duration
	CTRequestTimeout time.Duration
}

// NewDefaultConfig returns a Config with the standard defaults applied.
func NewDefaultConfig() *Config {
	return &Config{
		ServerName:       "mcp-cdisc-library",
		Version:          "dev",
		BaseURL:          library.DefaultBaseURL,
		RequestTimeout:   15 * time.Second,
		CTRequestTimeout: 30 * time.Second,
	}
}

// ServerContext is the dependency container shared by all handlers.
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc

	client          library.Client
	logger          *slog.Logger
	config          *Config
	instrumentation *instrumentation.Provider

	mu         sync.RWMutex
	isShutdown bool
}

// NewServerContext builds a ServerContext from the given options. The
// library client, a logger and a config are required; instrumentation is
// optional and defaults to a disabled provider.
func NewServerContext(ctx context.Context, opts ...Option) (*ServerContext, error) {
	childCtx, cancel := context.WithCancel(ctx)
	sc := &ServerContext{
		ctx:    childCtx,
		cancel: cancel,
	}
	for _, opt := range opts {
		if err := opt(sc); err != nil {
			cancel()
			return nil, err
		}
	}
	if sc.instrumentation == nil {
		sc.instrumentation = newDisabledProvider()
	}
	if err := sc.validate(); err != nil {
		cancel()
		return nil, err
	}
	return sc, nil
}

func (sc *ServerContext) validate() error {
	if sc.client == nil {
		return ErrMissingClient
	}
	if sc.logger == nil {
		return ErrMissingLogger
	}
	if sc.config == nil {
		return ErrMissingConfig
	}
	return nil
}

// Context returns the server's lifecycle context, cancelled on Shutdown.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Client returns the CDISC Library client.
func (sc *ServerContext) Client() library.Client {
	return sc.client
}

// Logger returns the server logger.
func (sc *ServerContext) Logger() *slog.Logger {
	return sc.logger
}

// Config returns the server configuration.
func (sc *ServerContext) Config() *Config {
	return sc.config
}

// Instrumentation returns the telemetry provider. It may be a disabled
// provider but is never nil after a successful NewServerContext.
func (sc *ServerContext) Instrumentation() *instrumentation.Provider {
	return sc.instrumentation
}

// Shutdown cancels the lifecycle context and marks the server not ready.
// It is idempotent.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.isShutdown {
		return nil
	}
	sc.isShutdown = true
	sc.cancel()
	return nil
}

// IsShutdown reports whether Shutdown has been called.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.isShutdown
}
