package dashgate

import "sync/atomic"

// MetricID defines a public type used by dashgate APIs.
//
// MetricID instances are intended to be configured during initialization
// and then treated as immutable unless documented otherwise.
type MetricID uint16

const (
	// MetricBootstrapRestored counts bootstraps that restored a persisted
	// session.
	MetricBootstrapRestored MetricID = iota
	// MetricBootstrapEmpty counts bootstraps that found no usable record.
	MetricBootstrapEmpty
	// MetricLoginSuccess is an exported constant or variable used by the
	// session controller.
	MetricLoginSuccess
	// MetricLoginFailure is an exported constant or variable used by the
	// session controller.
	MetricLoginFailure
	// MetricLogout is an exported constant or variable used by the session
	// controller.
	MetricLogout
	// MetricStorePurge counts malformed persisted records cleared by the
	// store's self-healing read.
	MetricStorePurge
	// MetricStaleLoginResolved counts login attempts that resolved after a
	// newer attempt had already begun.
	MetricStaleLoginResolved
	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics defines a public type used by dashgate APIs.
//
// Metrics instances are intended to be configured during initialization
// and then treated as immutable unless documented otherwise.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

// MetricsSnapshot defines a public type used by dashgate APIs.
//
// MetricsSnapshot instances are intended to be configured during
// initialization and then treated as immutable unless documented otherwise.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// NewMetrics describes the newmetrics operation and its observable behavior.
//
// NewMetrics does not mutate shared global state and can be used
// concurrently when the receiver and dependencies are concurrently safe.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Enabled reports whether the metrics subsystem records increments.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc describes the inc operation and its observable behavior.
//
// Inc does not mutate shared global state beyond its own counter and can be
// used concurrently.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Value describes the value operation and its observable behavior.
//
// Value does not mutate shared global state and can be used concurrently.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot describes the snapshot operation and its observable behavior.
//
// Snapshot does not mutate shared global state and can be used concurrently.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}

	s := MetricsSnapshot{
		Counters: make(map[MetricID]uint64, int(metricIDCount)),
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return s
}
