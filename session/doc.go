// Package session holds the session state machine and its durable storage:
// the State model, the tagged action union consumed by [Reduce], the strict
// persisted-record codec, and the [Store] implementations (file and Redis).
//
// # Design
//
// State is a value type mutated exclusively through [Reduce], a pure total
// function over the action union. Stores persist exactly one identity record
// under a well-known key; a record that fails strict decoding is treated as
// absent and purged in place, so a corrupt store always converges back to
// the empty state without surfacing an error to the caller.
//
// # Architecture boundaries
//
// This package owns state transitions and persistence. It does NOT decide
// when transitions happen — ordering, bootstrap, and login orchestration
// belong to the dashgate Controller.
//
// # What this package must NOT do
//
//   - Import dashgate or any sibling package (no import cycles).
//   - Perform identity establishment or any network I/O beyond the Redis
//     store's own round-trips.
//   - Expose partial or corrupt records to callers.
package session
