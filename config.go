package dashgate

import (
	"errors"
	"time"
)

// Config defines a public type used by dashgate APIs.
//
// Config instances are intended to be configured during initialization and
// then treated as immutable unless documented otherwise.
type Config struct {
	Session SessionConfig
	Login   LoginConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig defines a public type used by dashgate APIs.
//
// SessionConfig instances are intended to be configured during
// initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	// StoragePath is the file the default store persists the session
	// record under. Ignored when a store is injected through
	// [Builder.WithStore].
	StoragePath string
}

/*
====================================
LOGIN CONFIG
====================================
*/

// LoginConfig defines a public type used by dashgate APIs.
//
// LoginConfig instances are intended to be configured during initialization
// and then treated as immutable unless documented otherwise.
type LoginConfig struct {
	// EstablishLatency is the simulated identity-establishment delay used
	// by the default establisher. Zero means resolve immediately; the
	// contract is "suspends, then resolves or rejects", not a fixed delay.
	EstablishLatency time.Duration

	// AvatarBaseURL is the prefix the default establisher derives avatar
	// references from. The seed value is appended URL-escaped.
	AvatarBaseURL string
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig defines a public type used by dashgate APIs.
//
// AuditConfig instances are intended to be configured during initialization
// and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by dashgate APIs.
//
// MetricsConfig instances are intended to be configured during
// initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool
}

func defaultConfig() Config {
	return Config{
		Session: SessionConfig{
			StoragePath: "",
		},
		Login: LoginConfig{
			EstablishLatency: 250 * time.Millisecond,
			AvatarBaseURL:    "https://i.pravatar.cc/150?u=",
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 64,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation fails. It does not
// mutate the receiver.
func (c Config) Validate() error {
	if c.Login.EstablishLatency < 0 {
		return errors.New("Login EstablishLatency must not be negative")
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be positive when audit is enabled")
	}
	return nil
}

func cloneConfig(cfg Config) Config {
	// All Config fields are value types today; clone exists so adding
	// reference fields later cannot alias builder and engine state.
	return cfg
}
