// Package instrumentation wires OpenTelemetry metrics and tracing for the
// server. Everything is configured from the environment and disabled by
// default; see Config for the INSTRUMENTATION_* variables.
//
// Metrics cover tool calls, upstream CDISC Library requests, response
// truncations, validation rejections, and the HTTP transports. The
// prometheus exporter feeds a dedicated scrape endpoint started by the serve
// command; otlp and stdout exporters are available for push setups and
// debugging.
package instrumentation
