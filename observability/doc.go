// Package observability provides OpenTelemetry metrics for streamkit.
//
// InitMeter bootstraps an OTLP HTTP meter provider for applications that
// export metrics. StreamMetrics holds the instruments the flow package
// records on: deliveries, drain cycles, overflows, and terminal events.
// Recording is optional; a nil *StreamMetrics disables it.
package observability
