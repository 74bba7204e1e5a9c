package dashgate

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/fluxboard/dashgate/session"
)

// Builder defines a public type used by dashgate APIs.
//
// Builder instances are intended to be configured during initialization and
// then treated as immutable unless documented otherwise. A Builder may be
// used to construct exactly one Controller.
type Builder struct {
	config      Config
	store       session.Store
	establisher Establisher
	auditSink   AuditSink
	logger      zerolog.Logger
	hasLogger   bool

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when
// the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithStore injects the persistent session store. When omitted, Build
// constructs a [session.FileStore] from Config.Session.StoragePath.
func (b *Builder) WithStore(store session.Store) *Builder {
	b.store = store
	return b
}

// WithEstablisher injects the identity-establishment step. When omitted,
// Build uses the simulated establisher configured by Config.Login.
func (b *Builder) WithEstablisher(est Establisher) *Builder {
	b.establisher = est
	return b
}

// WithAuditSink describes the withauditsink operation and its observable
// behavior.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithLogger describes the withlogger operation and its observable behavior.
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = logger
	b.hasLogger = true
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its
// observable behavior.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation or dependency wiring
// fails. Construction is allocation-only: no store I/O happens until
// [Controller.Bootstrap].
func (b *Builder) Build() (*Controller, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if b.hasLogger {
		logger = b.logger
	}
	logger = logger.With().Str("component", "dashgate").Logger()

	store := b.store
	if store == nil {
		if cfg.Session.StoragePath == "" {
			return nil, errors.New("session store required: inject one via WithStore or set Session.StoragePath")
		}
		store = session.NewFileStore(cfg.Session.StoragePath, logger)
	}

	establisher := b.establisher
	if establisher == nil {
		establisher = newSimulatedEstablisher(cfg.Login)
	}

	c := &Controller{
		config:      cfg,
		store:       store,
		establisher: establisher,
		logger:      logger,
		audit:       newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics:     NewMetrics(cfg.Metrics),
		state:       session.Initial(),
	}

	// Stores self-heal silently; hook their purge callback so recoveries
	// still show up in metrics and audit. A caller-installed callback keeps
	// firing after ours.
	switch s := store.(type) {
	case *session.FileStore:
		s.OnPurge = chainPurge(c.onStorePurge, s.OnPurge)
	case *session.RedisStore:
		s.OnPurge = chainPurge(c.onStorePurge, s.OnPurge)
	}

	b.built = true

	return c, nil
}

func chainPurge(first, next func()) func() {
	if next == nil {
		return first
	}
	return func() {
		first()
		next()
	}
}
