package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allensrj/mcp-cdisc-library/internal/library"
)

func writeServeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestServeConfigResolveDefaults(t *testing.T) {
	t.Setenv("CDISC_API_KEY", "")
	t.Setenv("CDISC_LIBRARY_BASE_URL", "")
	// Point the config lookup at an empty directory so any real user config
	// file does not leak into the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &ServeConfig{Transport: transportStdio}
	require.NoError(t, cfg.resolve())

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, library.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.CTRequestTimeout)
}

func TestServeConfigResolvePrecedence(t *testing.T) {
	t.Setenv("CDISC_API_KEY", "env-key")
	t.Setenv("CDISC_LIBRARY_BASE_URL", "https://env.example.com/api")

	path := writeServeTestConfig(t, `
apiKey: file-key
baseURL: https://file.example.com/api
requestTimeout: 45s
ctRequestTimeout: 90s
`)

	tests := []struct {
		name        string
		cfg         ServeConfig
		wantAPIKey  string
		wantBaseURL string
	}{
		{
			name:        "flags beat environment and file",
			cfg:         ServeConfig{Transport: transportStdio, ConfigPath: path, APIKey: "flag-key", BaseURL: "https://flag.example.com/api"},
			wantAPIKey:  "flag-key",
			wantBaseURL: "https://flag.example.com/api",
		},
		{
			name:        "environment beats file",
			cfg:         ServeConfig{Transport: transportStdio, ConfigPath: path},
			wantAPIKey:  "env-key",
			wantBaseURL: "https://env.example.com/api",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.cfg.resolve())
			assert.Equal(t, tt.wantAPIKey, tt.cfg.APIKey)
			assert.Equal(t, tt.wantBaseURL, tt.cfg.BaseURL)
		})
	}
}

func TestServeConfigResolveFileFillsGaps(t *testing.T) {
	t.Setenv("CDISC_API_KEY", "")
	t.Setenv("CDISC_LIBRARY_BASE_URL", "")

	path := writeServeTestConfig(t, `
apiKey: file-key
baseURL: https://file.example.com/api
requestTimeout: 45s
ctRequestTimeout: 90s
`)

	cfg := &ServeConfig{Transport: transportStdio, ConfigPath: path}
	require.NoError(t, cfg.resolve())

	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "https://file.example.com/api", cfg.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 90*time.Second, cfg.CTRequestTimeout)
}

func TestServeConfigResolveMissingExplicitFile(t *testing.T) {
	cfg := &ServeConfig{
		Transport:  transportStdio,
		ConfigPath: filepath.Join(t.TempDir(), "absent.yaml"),
	}
	assert.Error(t, cfg.resolve())
}

func TestServeConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServeConfig
		wantErr bool
	}{
		{
			name: "stdio transport",
			cfg:  ServeConfig{Transport: transportStdio, RequestTimeout: time.Second, CTRequestTimeout: time.Second},
		},
		{
			name: "sse transport",
			cfg:  ServeConfig{Transport: transportSSE, RequestTimeout: time.Second, CTRequestTimeout: time.Second},
		},
		{
			name: "streamable-http transport",
			cfg:  ServeConfig{Transport: transportStreamableHTTP, RequestTimeout: time.Second, CTRequestTimeout: time.Second},
		},
		{
			name:    "unknown transport",
			cfg:     ServeConfig{Transport: "carrier-pigeon", RequestTimeout: time.Second, CTRequestTimeout: time.Second},
			wantErr: true,
		},
		{
			name:    "zero request timeout",
			cfg:     ServeConfig{Transport: transportStdio, CTRequestTimeout: time.Second},
			wantErr: true,
		},
		{
			name:    "negative ct timeout",
			cfg:     ServeConfig{Transport: transportStdio, RequestTimeout: time.Second, CTRequestTimeout: -time.Second},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
