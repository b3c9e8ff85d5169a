// Package tools registers the MCP tools and runs them through a single
// execution pipeline: validate parameters, render the request path, call the
// CDISC Library, shape the decoded response, and cap the serialized result.
// Every failure becomes a descriptive string result; handlers never surface
// a protocol-level error for an upstream problem.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/allensrj/mcp-cdisc-library/internal/catalog"
	"github.com/allensrj/mcp-cdisc-library/internal/instrumentation"
	"github.com/allensrj/mcp-cdisc-library/internal/library"
	"github.com/allensrj/mcp-cdisc-library/internal/logging"
	"github.com/allensrj/mcp-cdisc-library/internal/server"
	"github.com/allensrj/mcp-cdisc-library/internal/tools/output"
)

// missingCredentialMessage is returned when no API key is configured. The
// check short-circuits before any network activity.
const missingCredentialMessage = "Error: CDISC_API_KEY is not configured. Set the CDISC_API_KEY environment variable, pass --api-key, or add apiKey to the config file."

// timeoutMessage is returned when the upstream call exceeds its deadline.
const timeoutMessage = "Error: The request to CDISC Library timed out. Please try again later."

// Execute runs one operation end to end and returns its result as text. The
// result text is either the (possibly truncated) serialized response or an
// error string with a category prefix; see the error constants above and the
// API/Network/Execution prefixes in classifyError.
func Execute(ctx context.Context, sc *server.ServerContext, op *catalog.Operation, params map[string]string) *mcp.CallToolResult {
	start := time.Now()
	logger := sc.Logger().With(
		logging.Tool(op.Name),
		slog.String(logging.KeyFamily, op.Family),
	)
	metrics := sc.Instrumentation().Metrics()

	ctx, span := instrumentation.StartToolSpan(ctx, op.Name, op.Family)
	defer span.End()
	if traceID := instrumentation.GetTraceID(ctx); traceID != "" {
		logger = logger.With(slog.String(logging.KeyTraceID, traceID))
	}

	text, status, err := run(ctx, sc, op, params, logger, metrics)
	if err != nil {
		instrumentation.SetSpanError(span, err)
	} else {
		instrumentation.SetSpanSuccess(span)
	}
	metrics.RecordToolCall(ctx, op.Name, status, time.Since(start))
	return mcp.NewToolResultText(text)
}

// run executes the pipeline and reports the outcome both as the result text
// and as a metrics status. err is non-nil for any non-success outcome so the
// span can carry it; the caller still returns text, never err.
func run(ctx context.Context, sc *server.ServerContext, op *catalog.Operation, params map[string]string, logger *slog.Logger, metrics *instrumentation.Metrics) (string, string, error) {
	if err := op.Validate(params); err != nil {
		metrics.RecordValidationFailure(ctx, op.Name)
		logger.Debug("parameter rejected", logging.Err(err))
		return err.Error(), instrumentation.StatusValidationError, err
	}

	path := op.BuildPath(params)
	instrumentation.SetSpanRequest(ctx, path)
	reqStart := time.Now()
	body, err := sc.Client().Get(ctx, path, op.Timeout)
	if err != nil {
		text, status := classifyError(err)
		var statusErr *library.StatusError
		if errors.As(err, &statusErr) {
			instrumentation.SetSpanStatusCode(ctx, statusErr.StatusCode)
		}
		metrics.RecordLibraryRequest(ctx, op.Family, status, time.Since(reqStart))
		logger.Warn("library request failed",
			slog.String(logging.KeyPath, path),
			logging.Err(err))
		return text, status, err
	}
	metrics.RecordLibraryRequest(ctx, op.Family, instrumentation.StatusSuccess, time.Since(reqStart))

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		logger.Warn("library response not decodable", slog.String(logging.KeyPath, path), logging.Err(err))
		return "Execution Error: " + err.Error(), instrumentation.StatusExecutionError, err
	}
	if op.Shape != nil {
		decoded = op.Shape(decoded)
	}

	serialized, err := json.Marshal(decoded)
	if err != nil {
		return "Execution Error: " + err.Error(), instrumentation.StatusExecutionError, err
	}

	text, truncated := output.Truncate(string(serialized))
	if truncated {
		instrumentation.SetSpanTruncated(ctx)
		metrics.RecordTruncation(ctx, op.Name)
		logger.Info("response truncated",
			slog.String(logging.KeyPath, path),
			slog.Int("serialized_len", len(serialized)))
	}
	return text, instrumentation.StatusSuccess, nil
}

// classifyError maps a library client failure to the result text and the
// metrics status it is recorded under.
func classifyError(err error) (string, string) {
	var statusErr *library.StatusError
	var transportErr *library.TransportError
	switch {
	case errors.Is(err, library.ErrMissingAPIKey):
		return missingCredentialMessage, instrumentation.StatusConfigError
	case errors.Is(err, library.ErrTimeout):
		return timeoutMessage, instrumentation.StatusTimeout
	case errors.As(err, &statusErr):
		return fmt.Sprintf("API Error: HTTP %d - %s", statusErr.StatusCode, statusErr.Body), instrumentation.StatusUpstreamError
	case errors.As(err, &transportErr):
		return "Network Error: " + transportErr.Err.Error(), instrumentation.StatusTransportFailure
	default:
		return "Execution Error: " + err.Error(), instrumentation.StatusExecutionError
	}
}
