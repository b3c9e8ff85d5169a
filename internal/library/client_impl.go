package library

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/allensrj/mcp-cdisc-library/internal/logging"
)

// maxBodyBytes bounds how much of an upstream response is read. The largest
// published payloads (full controlled terminology packages) are a few tens
// of megabytes.
const maxBodyBytes = 64 << 20

// ClientConfig configures the CDISC Library client.
type ClientConfig struct {
	// BaseURL is the API root. Empty means DefaultBaseURL.
	BaseURL string
	// APIKey is sent in the api-key header. It may be empty; Get then fails
	// with ErrMissingAPIKey without touching the network.
	APIKey string
	// UserAgent is sent on every request.
	UserAgent string
	// HTTPClient overrides the transport, mainly for tests. Per-call
	// timeouts come from Get, so the client's own Timeout stays zero.
	HTTPClient *http.Client
	// Logger receives request-level debug logs. Nil disables them.
	Logger *slog.Logger
}

type libraryClient struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a Client from cfg.
func NewClient(cfg ClientConfig) (Client, error) {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", base)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &libraryClient{
		baseURL:    strings.TrimRight(base, "/"),
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

func (c *libraryClient) Get(ctx context.Context, path string, timeout time.Duration) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.logger.Debug("library request timed out",
				slog.String(logging.KeyPath, path),
				logging.Duration(time.Since(start)))
			return nil, fmt.Errorf("%w after %s: GET %s", ErrTimeout, timeout, path)
		}
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s: GET %s", ErrTimeout, timeout, path)
		}
		return nil, &TransportError{Err: err}
	}

	c.logger.Debug("library request",
		slog.String(logging.KeyPath, path),
		logging.Status(resp.StatusCode),
		logging.Duration(time.Since(start)))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
