package cmd

import (
	"fmt"
	"os"
	"time"

	appconfig "github.com/allensrj/mcp-cdisc-library/internal/config"
	"github.com/allensrj/mcp-cdisc-library/internal/library"
)

// ServeConfig holds all configuration for the serve command after flag,
// environment and config-file resolution.
type ServeConfig struct {
	// Transport settings
	Transport string
	HTTPAddr  string

	// Endpoint paths
	SSEEndpoint     string
	MessageEndpoint string
	HTTPEndpoint    string

	// Metrics scrape endpoint, served on its own listener.
	MetricsEnabled bool
	MetricsAddr    string

	// CDISC Library client settings
	APIKey           string
	BaseURL          string
	RequestTimeout   time.Duration
	CTRequestTimeout time.Duration

	// ConfigPath overrides the default config file location.
	ConfigPath string

	// Logging
	LogLevel  string
	LogFormat string
}

// loadEnvIfEmpty loads an environment variable into a string pointer if it's
// empty, preserving flag precedence over the environment.
func loadEnvIfEmpty(target *string, envKey string) {
	if *target == "" {
		*target = os.Getenv(envKey)
	}
}

// resolve fills the remaining gaps from the environment and the config file.
// Precedence per value: flag, then environment, then config file, then the
// built-in default.
func (c *ServeConfig) resolve() error {
	loadEnvIfEmpty(&c.APIKey, "CDISC_API_KEY")
	loadEnvIfEmpty(&c.BaseURL, "CDISC_LIBRARY_BASE_URL")

	var file *appconfig.File
	var err error
	if c.ConfigPath != "" {
		file, err = appconfig.Load(c.ConfigPath)
	} else {
		file, err = appconfig.LoadDefault()
	}
	if err != nil {
		return err
	}
	if file != nil {
		if c.APIKey == "" {
			c.APIKey = file.APIKey
		}
		if c.BaseURL == "" {
			c.BaseURL = file.BaseURL
		}
		if c.RequestTimeout == 0 {
			c.RequestTimeout = file.RequestTimeoutOr(0)
		}
		if c.CTRequestTimeout == 0 {
			c.CTRequestTimeout = file.CTRequestTimeoutOr(0)
		}
	}

	if c.BaseURL == "" {
		c.BaseURL = library.DefaultBaseURL
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 15 * time.Second
	}
	if c.CTRequestTimeout == 0 {
		c.CTRequestTimeout = 30 * time.Second
	}
	return c.validate()
}

func (c *ServeConfig) validate() error {
	switch c.Transport {
	case transportStdio, transportSSE, transportStreamableHTTP:
	default:
		return fmt.Errorf("invalid transport %q: must be %s, %s or %s",
			c.Transport, transportStdio, transportSSE, transportStreamableHTTP)
	}
	if c.RequestTimeout <= 0 || c.CTRequestTimeout <= 0 {
		return fmt.Errorf("request timeouts must be positive")
	}
	return nil
}
