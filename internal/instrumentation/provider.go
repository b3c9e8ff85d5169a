package instrumentation

import (
	"context"
	"errors"
	"fmt"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Provider owns the OpenTelemetry pipelines. A disabled provider is a valid
// no-op: Metrics returns a zero recorder and Shutdown does nothing, so the
// rest of the server never branches on instrumentation state.
type Provider struct {
	config  Config
	metrics *Metrics

	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	promRegistry   *promclient.Registry
}

// NewProvider builds the pipelines described by cfg and installs them as the
// global otel providers. With cfg.Enabled false it returns a no-op provider.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	p := &Provider{config: cfg, metrics: &Metrics{}}
	if !cfg.Enabled {
		return p, nil
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
	)

	reader, err := p.newMetricReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up metrics exporter: %w", err)
	}
	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	otel.SetMeterProvider(p.meterProvider)

	m, err := NewMetrics(p.meterProvider.Meter(TracerName), cfg.DetailedLabels)
	if err != nil {
		return nil, fmt.Errorf("creating instruments: %w", err)
	}
	p.metrics = m

	if err := p.setupTracing(ctx, res); err != nil {
		return nil, fmt.Errorf("setting up traces exporter: %w", err)
	}
	return p, nil
}

func (p *Provider) newMetricReader(ctx context.Context) (sdkmetric.Reader, error) {
	switch p.config.MetricsExporter {
	case "prometheus":
		p.promRegistry = promclient.NewRegistry()
		return otelprom.New(otelprom.WithRegisterer(p.promRegistry))
	case "otlp":
		opts := []otlpmetrichttp.Option{}
		if p.config.OTLPEndpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpointURL(p.config.OTLPEndpoint))
		}
		if p.config.OTLPInsecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exp, err := otlpmetrichttp.New(ctx, opts...)
		if err != nil {
			return nil, err
		}
		return sdkmetric.NewPeriodicReader(exp), nil
	case "stdout":
		exp, err := stdoutmetric.New()
		if err != nil {
			return nil, err
		}
		return sdkmetric.NewPeriodicReader(exp), nil
	default:
		return nil, fmt.Errorf("unknown metrics exporter %q", p.config.MetricsExporter)
	}
}

func (p *Provider) setupTracing(ctx context.Context, res *resource.Resource) error {
	var exporter sdktrace.SpanExporter
	switch p.config.TracesExporter {
	case "none", "":
		return nil
	case "otlp":
		opts := []otlptracehttp.Option{}
		if p.config.OTLPEndpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpointURL(p.config.OTLPEndpoint))
		}
		if p.config.OTLPInsecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exp, err := otlptracehttp.New(ctx, opts...)
		if err != nil {
			return err
		}
		exporter = exp
	case "stdout":
		exp, err := stdouttrace.New()
		if err != nil {
			return err
		}
		exporter = exp
	default:
		return fmt.Errorf("unknown traces exporter %q", p.config.TracesExporter)
	}

	p.tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(p.config.SampleRate))),
	)
	otel.SetTracerProvider(p.tracerProvider)
	return nil
}

// Enabled reports whether instrumentation is active.
func (p *Provider) Enabled() bool {
	return p != nil && p.config.Enabled
}

// Metrics returns the recorder. On a disabled provider it is a zero
// recorder; all Record methods tolerate a nil receiver.
func (p *Provider) Metrics() *Metrics {
	if p == nil {
		return nil
	}
	return p.metrics
}

// PrometheusRegistry returns the registry backing the prometheus exporter,
// or nil when a different metrics exporter is configured.
func (p *Provider) PrometheusRegistry() *promclient.Registry {
	if p == nil {
		return nil
	}
	return p.promRegistry
}

// Shutdown flushes and stops the pipelines.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down meter provider: %w", err))
		}
	}
	if p.tracerProvider != nil {
		if err := p.tracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down tracer provider: %w", err))
		}
	}
	return errors.Join(errs...)
}
