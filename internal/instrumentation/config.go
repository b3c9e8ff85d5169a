package instrumentation

import (
	"os"
	"strconv"
	"strings"
)

// Config controls the OpenTelemetry setup. All fields are environment
// driven so instrumentation can be toggled without flag changes; it is off
// by default.
type Config struct {
	// Enabled turns instrumentation on. INSTRUMENTATION_ENABLED.
	Enabled bool

	// ServiceName and ServiceVersion identify the emitting service.
	ServiceName    string
	ServiceVersion string

	// MetricsExporter selects the metrics pipeline: "prometheus", "otlp" or
	// "stdout". INSTRUMENTATION_METRICS_EXPORTER.
	MetricsExporter string

	// TracesExporter selects the traces pipeline: "otlp", "stdout" or
	// "none". INSTRUMENTATION_TRACES_EXPORTER.
	TracesExporter string

	// OTLPEndpoint is the collector URL for the otlp exporters.
	// INSTRUMENTATION_OTLP_ENDPOINT.
	OTLPEndpoint string

	// OTLPInsecure disables TLS towards the collector.
	// INSTRUMENTATION_OTLP_INSECURE.
	OTLPInsecure bool

	// SampleRate is the trace sampling ratio in [0, 1].
	// INSTRUMENTATION_TRACE_SAMPLE_RATE.
	SampleRate float64

	// DetailedLabels enables high-cardinality attributes such as the
	// request path. INSTRUMENTATION_DETAILED_LABELS.
	DetailedLabels bool
}

// NewConfigFromEnv builds a Config from the environment, applying defaults
// for anything unset.
func NewConfigFromEnv(serviceVersion string) Config {
	return Config{
		Enabled:         getEnvBoolOrDefault("INSTRUMENTATION_ENABLED", false),
		ServiceName:     getEnvOrDefault("INSTRUMENTATION_SERVICE_NAME", "mcp-cdisc-library"),
		ServiceVersion:  serviceVersion,
		MetricsExporter: strings.ToLower(getEnvOrDefault("INSTRUMENTATION_METRICS_EXPORTER", "prometheus")),
		TracesExporter:  strings.ToLower(getEnvOrDefault("INSTRUMENTATION_TRACES_EXPORTER", "none")),
		OTLPEndpoint:    getEnvOrDefault("INSTRUMENTATION_OTLP_ENDPOINT", ""),
		OTLPInsecure:    getEnvBoolOrDefault("INSTRUMENTATION_OTLP_INSECURE", false),
		SampleRate:      getEnvFloatOrDefault("INSTRUMENTATION_TRACE_SAMPLE_RATE", 1.0),
		DetailedLabels:  getEnvBoolOrDefault("INSTRUMENTATION_DETAILED_LABELS", false),
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBoolOrDefault(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloatOrDefault(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
