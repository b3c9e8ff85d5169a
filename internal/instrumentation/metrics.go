package instrumentation

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrTool      = "tool"
	attrFamily    = "family"
	attrStatus    = "status"
	attrMethod    = "method"
	attrPath      = "path"
	attrTransport = "transport"
)

// Tool call statuses recorded in mcp_tool_calls_total.
const (
	StatusSuccess          = "success"
	StatusValidationError  = "validation_error"
	StatusUpstreamError    = "upstream_error"
	StatusConfigError      = "config_error"
	StatusExecutionError   = "execution_error"
	StatusTimeout          = "timeout"
	StatusTransportFailure = "transport_error"
)

// Metrics holds the instruments the server records into. A zero Metrics is a
// valid no-op recorder; the Record methods skip nil instruments so call
// sites never need an enabled check.
type Metrics struct {
	detailedLabels bool

	toolCallsTotal    metric.Int64Counter
	toolCallDuration  metric.Float64Histogram
	libraryReqsTotal  metric.Int64Counter
	libraryReqLatency metric.Float64Histogram
	truncationsTotal  metric.Int64Counter
	validationsTotal  metric.Int64Counter
	httpRequestsTotal metric.Int64Counter
	httpReqDuration   metric.Float64Histogram
}

var latencyBoundaries = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0}

// NewMetrics creates the server's instruments on the given meter.
func NewMetrics(meter metric.Meter, detailedLabels bool) (*Metrics, error) {
	m := &Metrics{detailedLabels: detailedLabels}
	var err error

	if m.toolCallsTotal, err = meter.Int64Counter(
		"mcp_tool_calls_total",
		metric.WithDescription("Total MCP tool calls by tool and outcome"),
	); err != nil {
		return nil, err
	}
	if m.toolCallDuration, err = meter.Float64Histogram(
		"mcp_tool_call_duration_seconds",
		metric.WithDescription("MCP tool call duration in seconds"),
		metric.WithExplicitBucketBoundaries(latencyBoundaries...),
	); err != nil {
		return nil, err
	}
	if m.libraryReqsTotal, err = meter.Int64Counter(
		"cdisc_library_requests_total",
		metric.WithDescription("Upstream CDISC Library requests by standard family and outcome"),
	); err != nil {
		return nil, err
	}
	if m.libraryReqLatency, err = meter.Float64Histogram(
		"cdisc_library_request_duration_seconds",
		metric.WithDescription("Upstream CDISC Library request duration in seconds"),
		metric.WithExplicitBucketBoundaries(latencyBoundaries...),
	); err != nil {
		return nil, err
	}
	if m.truncationsTotal, err = meter.Int64Counter(
		"mcp_response_truncations_total",
		metric.WithDescription("Tool responses cut at the size cap"),
	); err != nil {
		return nil, err
	}
	if m.validationsTotal, err = meter.Int64Counter(
		"mcp_validation_failures_total",
		metric.WithDescription("Tool calls rejected by parameter validation"),
	); err != nil {
		return nil, err
	}
	if m.httpRequestsTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("HTTP requests to the transport endpoints"),
	); err != nil {
		return nil, err
	}
	if m.httpReqDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithExplicitBucketBoundaries(latencyBoundaries...),
	); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordToolCall records one completed tool call.
func (m *Metrics) RecordToolCall(ctx context.Context, tool, status string, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(attrTool, tool),
		attribute.String(attrStatus, status),
	)
	if m.toolCallsTotal != nil {
		m.toolCallsTotal.Add(ctx, 1, attrs)
	}
	if m.toolCallDuration != nil {
		m.toolCallDuration.Record(ctx, d.Seconds(), attrs)
	}
}

// RecordLibraryRequest records one upstream request by standard family.
func (m *Metrics) RecordLibraryRequest(ctx context.Context, family, status string, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(attrFamily, family),
		attribute.String(attrStatus, status),
	)
	if m.libraryReqsTotal != nil {
		m.libraryReqsTotal.Add(ctx, 1, attrs)
	}
	if m.libraryReqLatency != nil {
		m.libraryReqLatency.Record(ctx, d.Seconds(), attrs)
	}
}

// RecordTruncation records a response cut at the size cap.
func (m *Metrics) RecordTruncation(ctx context.Context, tool string) {
	if m == nil || m.truncationsTotal == nil {
		return
	}
	m.truncationsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrTool, tool)))
}

// RecordValidationFailure records a call rejected before any network use.
func (m *Metrics) RecordValidationFailure(ctx context.Context, tool string) {
	if m == nil || m.validationsTotal == nil {
		return
	}
	m.validationsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrTool, tool)))
}

// RecordHTTPRequest records one HTTP request on a transport endpoint. The
// path attribute is only attached when detailed labels are enabled, keeping
// default cardinality low.
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, d time.Duration) {
	if m == nil {
		return
	}
	kvs := []attribute.KeyValue{
		attribute.String(attrMethod, method),
		attribute.String(attrStatus, strconv.Itoa(statusCode)),
	}
	if m.detailedLabels {
		kvs = append(kvs, attribute.String(attrPath, path))
	}
	attrs := metric.WithAttributes(kvs...)
	if m.httpRequestsTotal != nil {
		m.httpRequestsTotal.Add(ctx, 1, attrs)
	}
	if m.httpReqDuration != nil {
		m.httpReqDuration.Record(ctx, d.Seconds(), attrs)
	}
}
