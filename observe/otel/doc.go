// Package otel reserves the observer slot for OpenTelemetry-backed tracing
// of scheduler task lifecycles.
package otel
