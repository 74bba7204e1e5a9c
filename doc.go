// Package dashgate provides a local, single-device session authenticator
// for dashboard clients: it establishes an identity, mirrors it to durable
// storage, and gates access to authenticated views through a pure
// route-guard protocol.
//
// The package is designed for event-driven client workloads: Controller
// methods are safe to call from multiple goroutines after initialization
// through [Builder.Build], and every state transition flows through one
// pure reducer in issue order.
//
// # Architecture boundaries
//
// dashgate is the public surface. It exposes [Controller], [Builder],
// [Config], and value types (MetricsSnapshot, AuditEvent, etc.). The state
// machine and storage live in the session subpackage, guard decisions in
// guard, and HTTP adapters in middleware.
//
// # What this package must NOT do
//
//   - Verify real credentials or talk to a server-side authority — the
//     session is a trust-the-client local cache.
//   - Let presentation code reach into session state or the store
//     directly; [Controller.State], Login, and Logout are the sole
//     boundary.
//   - Refresh tokens or sync sessions across devices.
//
// # Failure contract
//
// No failure in this package is fatal. Login failures surface as a stable
// user-presentable message in session state; a corrupt persisted record is
// purged silently; everything converges to a well-defined resting state.
package dashgate
