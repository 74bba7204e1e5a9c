// Package prometheus renders dashgate session counters for Prometheus.
//
// [NewExporter] accepts a [dashgate.Controller] and exposes an
// [net/http.Handler] that renders all session counters in Prometheus text
// exposition format. Counter names are prefixed dashgate_*_total.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the
//     Handler.
//   - Mutate controller state.
package prometheus
