package dashgate

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fluxboard/dashgate/session"
)

// Controller defines a public type used by dashgate APIs.
//
// Controller orchestrates the session lifecycle: it seeds state from the
// persistent store at bootstrap, drives every transition through the pure
// reducer in issue order, and mirrors the authenticated identity to the
// store. It is the only component that touches session state or the store;
// guards and presentation code consume [Controller.State] snapshots.
//
// Controller instances are intended to be configured during initialization
// through [Builder.Build] and then treated as immutable unless documented
// otherwise.
type Controller struct {
	config      Config
	store       session.Store
	establisher Establisher
	logger      zerolog.Logger
	audit       *auditDispatcher
	metrics     *Metrics

	mu           sync.Mutex
	state        session.State
	bootstrapped bool
	loginSeq     uint64
}

// State returns a snapshot of the current session state. The snapshot is a
// value; holding it does not observe later transitions.
func (c *Controller) State() session.State {
	if c == nil {
		return session.State{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Bootstrap reconciles in-memory state with the persistent store. It is
// called once at process start: a well-formed persisted identity resumes
// the session, anything else settles into the unauthenticated resting
// state. Loading resolves to false exactly once; repeat calls are
// observable no-ops.
func (c *Controller) Bootstrap(ctx context.Context) {
	if c == nil {
		return
	}

	c.mu.Lock()
	if c.bootstrapped {
		c.mu.Unlock()
		c.logger.Warn().Msg("bootstrap called more than once")
		return
	}
	c.bootstrapped = true
	c.mu.Unlock()

	ident, ok := c.store.Read(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if ok {
		c.dispatchLocked(session.LoginSucceeded{Identity: ident})
		c.metrics.Inc(MetricBootstrapRestored)
		c.audit.Emit(AuditEvent{
			Timestamp: nowUTC(),
			EventType: AuditBootstrapRestored,
			UserID:    ident.ID,
			Email:     ident.Email,
			Success:   true,
		})
		c.logger.Info().Str("user_id", ident.ID).Msg("session restored from store")
		return
	}

	c.dispatchLocked(session.LoggedOut{})
	c.dispatchLocked(session.BootstrapSettled{})
	c.metrics.Inc(MetricBootstrapEmpty)
	c.audit.Emit(AuditEvent{
		Timestamp: nowUTC(),
		EventType: AuditBootstrapEmpty,
		Success:   true,
	})
	c.logger.Info().Msg("no persisted session, starting unauthenticated")
}

// Login establishes a session for the given credential input. It raises
// Loading, runs the establisher, and on success persists the identity
// before installing it. On failure the store is untouched and session
// state carries a stable user-presentable message; the returned error
// wraps ErrLoginFailed with the cause for callers.
//
// Overlapping calls cannot interleave state updates: each dispatch is
// atomic and applied in issue order. A call that resolves after a newer
// attempt has begun is logged and counted as a stale resolution — which
// attempt's outcome sticks is last-writer-wins, a documented gap rather
// than a guarantee.
func (c *Controller) Login(ctx context.Context, email, displayName string) error {
	if c == nil {
		return ErrControllerNotReady
	}

	c.mu.Lock()
	c.loginSeq++
	seq := c.loginSeq
	c.dispatchLocked(session.BeginLogin{})
	c.mu.Unlock()

	ident, err := c.establisher.Establish(ctx, email, displayName)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.loginSeq {
		c.metrics.Inc(MetricStaleLoginResolved)
		c.logger.Warn().
			Uint64("attempt", seq).
			Uint64("latest", c.loginSeq).
			Msg("login resolved after a newer attempt began")
	}

	if err != nil {
		c.dispatchLocked(session.LoginFailed{Message: loginFailureMessage})
		c.metrics.Inc(MetricLoginFailure)
		c.audit.Emit(AuditEvent{
			Timestamp: nowUTC(),
			EventType: AuditLoginFailure,
			Email:     email,
			Success:   false,
			Error:     err.Error(),
		})
		c.logger.Warn().Err(err).Msg("login failed")
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	// Persistence is a cache of the live session, not a precondition for
	// it: a write failure costs restart survival, not the login.
	if werr := c.store.Write(ctx, ident); werr != nil {
		c.logger.Warn().Err(werr).Msg("session persist failed, session will not survive restart")
	}

	c.dispatchLocked(session.LoginSucceeded{Identity: ident})
	c.metrics.Inc(MetricLoginSuccess)
	c.audit.Emit(AuditEvent{
		Timestamp: nowUTC(),
		EventType: AuditLoginSuccess,
		UserID:    ident.ID,
		Email:     ident.Email,
		Success:   true,
	})
	c.logger.Info().Str("user_id", ident.ID).Msg("login succeeded")
	return nil
}

// Logout clears the persistent store and drops the session. It is
// idempotent: logging out while already logged out changes nothing
// observable.
func (c *Controller) Logout(ctx context.Context) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	wasAuthenticated := c.state.Authenticated
	var userID string
	if c.state.User != nil {
		userID = c.state.User.ID
	}

	if err := c.store.Clear(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("store clear failed during logout")
	}

	if !wasAuthenticated && c.state.User == nil {
		return
	}

	c.dispatchLocked(session.LoggedOut{})
	c.metrics.Inc(MetricLogout)
	c.audit.Emit(AuditEvent{
		Timestamp: nowUTC(),
		EventType: AuditLogout,
		UserID:    userID,
		Success:   true,
	})
	c.logger.Info().Str("user_id", userID).Msg("logged out")
}

// MetricsSnapshot describes the metricssnapshot operation and its
// observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used
// concurrently.
func (c *Controller) MetricsSnapshot() MetricsSnapshot {
	if c == nil || c.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return c.metrics.Snapshot()
}

// AuditDropped reports how many audit events were discarded because the
// dispatch buffer was full.
func (c *Controller) AuditDropped() uint64 {
	if c == nil {
		return 0
	}
	return c.audit.Dropped()
}

// Close releases background resources (the audit dispatcher). The
// Controller remains usable for state reads after Close; further audit
// events are discarded.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	if c.audit != nil {
		c.audit.Close()
	}
}

// dispatchLocked applies one action through the reducer. The caller holds
// c.mu, so dispatches are applied exactly in issue order and never
// interleave.
func (c *Controller) dispatchLocked(action session.Action) {
	next := session.Reduce(c.state, action)
	c.logger.Debug().
		Type("action", action).
		Bool("authenticated", next.Authenticated).
		Bool("loading", next.Loading).
		Msg("state transition")
	c.state = next
}

func (c *Controller) onStorePurge() {
	c.metrics.Inc(MetricStorePurge)
	c.audit.Emit(AuditEvent{
		Timestamp: nowUTC(),
		EventType: AuditStorePurged,
		Success:   true,
	})
}
