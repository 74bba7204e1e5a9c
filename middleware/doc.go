// Package middleware exposes gin adapters for the dashgate session
// controller: route-guard enforcement, controller injection, request
// logging, and Prometheus instrumentation.
//
// # Guards
//
//   - [RequireAuth] — executes the authenticated-only verdict.
//   - [RequireAnon] — executes the anonymous-only verdict.
//
// Each guard reads the controller attached by [Attach], snapshots session
// state, asks the guard package for a verdict, and translates it to HTTP:
// render continues the chain, wait answers 503 with Retry-After, conceal
// answers 204, redirect answers 302.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into controller calls. It does
// NOT make gating decisions itself — all decisions are delegated to the
// guard package — and it never touches the session store.
//
// # What this package must NOT do
//
//   - Mutate session state outside Controller methods.
//   - Swallow a missing controller: running a guard on a route group
//     without [Attach] is a programming error and panics.
package middleware
