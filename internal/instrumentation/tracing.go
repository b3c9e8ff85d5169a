package instrumentation

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope for all spans and metrics.
const TracerName = "github.com/allensrj/mcp-cdisc-library"

// Span attribute keys.
const (
	SpanAttrTool       = "mcp.tool"
	SpanAttrFamily     = "cdisc.family"
	SpanAttrPath       = "cdisc.path"
	SpanAttrStatusCode = "cdisc.status_code"
	SpanAttrTruncated  = "cdisc.truncated"
)

// StartToolSpan starts a server span for one tool call. The returned span is
// a no-op unless a tracer provider has been installed.
func StartToolSpan(ctx context.Context, tool, family string) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, "tool."+tool,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String(SpanAttrTool, tool),
			attribute.String(SpanAttrFamily, family),
		),
	)
}

// SetSpanRequest records the rendered request path on the active span.
func SetSpanRequest(ctx context.Context, path string) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String(SpanAttrPath, path))
}

// SetSpanStatusCode records the upstream HTTP status on the active span.
func SetSpanStatusCode(ctx context.Context, code int) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int(SpanAttrStatusCode, code))
}

// SetSpanTruncated marks the active span's response as truncated.
func SetSpanTruncated(ctx context.Context) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Bool(SpanAttrTruncated, true))
}

// SetSpanError marks the span failed and records err.
func SetSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetSpanSuccess marks the span successful.
func SetSpanSuccess(span trace.Span) {
	span.SetStatus(codes.Ok, "")
}

// GetTraceID returns the current trace ID, or "" when the span is not
// sampled or tracing is disabled.
func GetTraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}
