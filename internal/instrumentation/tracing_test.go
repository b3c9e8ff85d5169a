package instrumentation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func installSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = tp.Shutdown(context.Background())
	})
	return recorder
}

func spanAttributes(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	return attrs
}

func TestStartToolSpanAndSetters(t *testing.T) {
	recorder := installSpanRecorder(t)

	ctx, span := StartToolSpan(context.Background(), "get_qrs_info", "qrs")
	SetSpanRequest(ctx, "/mdr/qrs/instruments/AIMS01/versions/2-0")
	SetSpanStatusCode(ctx, 404)
	SetSpanTruncated(ctx)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "tool.get_qrs_info", ended[0].Name())

	attrs := spanAttributes(ended[0])
	assert.Equal(t, "get_qrs_info", attrs[SpanAttrTool].AsString())
	assert.Equal(t, "qrs", attrs[SpanAttrFamily].AsString())
	assert.Equal(t, "/mdr/qrs/instruments/AIMS01/versions/2-0", attrs[SpanAttrPath].AsString())
	assert.Equal(t, int64(404), attrs[SpanAttrStatusCode].AsInt64())
	assert.True(t, attrs[SpanAttrTruncated].AsBool())
}

func TestGetTraceID(t *testing.T) {
	installSpanRecorder(t)

	assert.Empty(t, GetTraceID(context.Background()))

	ctx, span := StartToolSpan(context.Background(), "get_qrs_info", "qrs")
	defer span.End()
	assert.Len(t, GetTraceID(ctx), 32)
}
