// Package middleware provides HTTP observability middleware for picklist
// applications.
//
// This package includes:
//   - Prometheus request metrics middleware
//   - OpenTelemetry tracing middleware
//   - Recording helpers the live runtime uses for session and patch counters
//
// Both middlewares are standard func(http.Handler) http.Handler wrappers, so
// they compose with chi and the stdlib mux alike.
//
// # Prometheus Metrics
//
// The Prometheus middleware records request counts, durations, and in-flight
// gauges. The live runtime feeds the session, event, and patch counters
// through the Record* helpers.
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus(
//	    middleware.WithNamespace("myapp"),
//	))
//	r.Handle("/metrics", promhttp.Handler())
//
// Metrics collected:
//   - picklist_http_requests_total: Counter of requests by path, method, status
//   - picklist_http_request_duration_seconds: Histogram of request duration
//   - picklist_http_requests_in_flight: Gauge of in-progress requests
//   - picklist_live_events_total: Counter of live events by status
//   - picklist_live_patches_sent_total: Counter of patches pushed to clients
//   - picklist_live_active_sessions: Gauge of live sessions
//   - picklist_live_handler_panics_total: Counter of recovered handler panics
//   - picklist_live_websocket_errors_total: Counter of WebSocket errors by type
//
// # OpenTelemetry Tracing
//
// The OpenTelemetry middleware creates a server span per request using the
// global tracer provider. Configure the provider in main() before starting
// the server:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
//
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("my-app"),
//	    middleware.WithTraceFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// Handlers see the span through r.Context(), so downstream database and HTTP
// calls inherit the trace.
package middleware
