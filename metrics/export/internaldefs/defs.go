package internaldefs

import (
	dashgate "github.com/fluxboard/dashgate"
)

// CounterDef defines a public type used by dashgate APIs.
//
// CounterDef instances are intended to be configured during initialization
// and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   dashgate.MetricID
	Name string
	Help string
}

// CounterDefs is the stable, ordered list of exported session counters.
// Exporters iterate it so metric renamings happen in exactly one place.
var CounterDefs = []CounterDef{
	{dashgate.MetricBootstrapRestored, "dashgate_bootstrap_restored_total", "Bootstraps that restored a persisted session."},
	{dashgate.MetricBootstrapEmpty, "dashgate_bootstrap_empty_total", "Bootstraps that found no usable persisted record."},
	{dashgate.MetricLoginSuccess, "dashgate_login_success_total", "Successful login attempts."},
	{dashgate.MetricLoginFailure, "dashgate_login_failure_total", "Failed login attempts."},
	{dashgate.MetricLogout, "dashgate_logout_total", "Logouts that dropped a live session."},
	{dashgate.MetricStorePurge, "dashgate_store_purge_total", "Malformed persisted records cleared by self-healing reads."},
	{dashgate.MetricStaleLoginResolved, "dashgate_stale_login_resolved_total", "Login attempts that resolved after a newer attempt began."},
}
