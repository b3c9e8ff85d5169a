// Package logging provides slog helpers shared across the server: canonical
// attribute keys, typed attribute constructors, and redaction for the API
// key so it never reaches the logs.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// Canonical attribute keys. Using the constants keeps log output uniform and
// greppable across packages.
const (
	KeyTool      = "tool"
	KeyFamily    = "family"
	KeyPath      = "path"
	KeyStatus    = "status"
	KeyDuration  = "duration_ms"
	KeyError     = "error"
	KeyTransport = "transport"
	KeyTraceID   = "trace_id"
	KeyEndpoint  = "endpoint"
	KeyVersion   = "version"
)

// Err returns an error attribute, tolerating nil.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// Tool returns a tool-name attribute.
func Tool(name string) slog.Attr {
	return slog.String(KeyTool, name)
}

// Status returns an HTTP status attribute.
func Status(code int) slog.Attr {
	return slog.Int(KeyStatus, code)
}

// Duration returns an elapsed-time attribute in milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Int64(KeyDuration, d.Milliseconds())
}

// RedactAPIKey reduces an API key to a short, non-reversible form for log
// output: empty stays empty, short keys are fully masked, longer keys keep a
// four-character prefix.
func RedactAPIKey(key string) string {
	switch {
	case key == "":
		return ""
	case len(key) <= 8:
		return "****"
	default:
		return key[:4] + "****"
	}
}

// New builds a slog.Logger writing to w. Format is "text" or "json"; level
// is one of debug, info, warn, error and defaults to info for unknown input.
func New(w io.Writer, format, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
