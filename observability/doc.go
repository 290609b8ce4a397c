// Package observability provides OpenTelemetry tracing and metrics for
// restkit transports. InitTracer and InitMeter configure OTLP-HTTP
// exporters; transports start one span per send and record request
// counters and durations through Metrics.
//
// Instrumentation is optional: a transport built without WithTracing
// never touches this package.
package observability
