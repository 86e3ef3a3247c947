// Package metrics exposes Prometheus instrumentation for the gateway.
//
// The Observer interface decouples the features from the metrics backend:
// handlers and services record operations through it, and the concrete
// PrometheusObserver exports them as histograms and counters. Tests use the
// Nop observer.
//
// # Exported Series
//
//   - upload_gateway_operation_duration_seconds{operation}
//   - upload_gateway_operation_errors_total{operation}
//   - upload_gateway_uploaded_bytes_total
//
// The /metrics route itself is registered during application startup.
package metrics
