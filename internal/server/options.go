package server

import (
	"context"
	"log/slog"

	"github.com/allensrj/mcp-cdisc-library/internal/instrumentation"
	"github.com/allensrj/mcp-cdisc-library/internal/library"
)

// Option configures a ServerContext during construction.
type Option func(*ServerContext) error

// WithLibraryClient sets the CDISC Library client. Required.
func WithLibraryClient(c library.Client) Option {
	return func(sc *ServerContext) error {
		sc.client = c
		return nil
	}
}

// WithLogger sets the server logger. Required.
func WithLogger(l *slog.Logger) Option {
	return func(sc *ServerContext) error {
		sc.logger = l
		return nil
	}
}

// WithConfig sets the server configuration. Required.
func WithConfig(cfg *Config) Option {
	return func(sc *ServerContext) error {
		sc.config = cfg
		return nil
	}
}

// WithInstrumentation sets the telemetry provider. When the option is not
// used a disabled provider is installed so handlers can record
// unconditionally.
func WithInstrumentation(p *instrumentation.Provider) Option {
	return func(sc *ServerContext) error {
		if p == nil {
			return nil
		}
		sc.instrumentation = p
		return nil
	}
}

// newDisabledProvider builds the no-op provider used when WithInstrumentation
// is not supplied. NewProvider with a disabled config never errors.
func newDisabledProvider() *instrumentation.Provider {
	p, _ := instrumentation.NewProvider(context.Background(), instrumentation.Config{})
	return p
}
