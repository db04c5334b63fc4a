// Package tracing wraps OpenTelemetry so that action runs can be recorded as spans
// without the callers importing the SDK directly.
package tracing
