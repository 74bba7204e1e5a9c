package dashgate

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fluxboard/dashgate/session"
)

// Establisher performs the asynchronous identity-establishment step of a
// login: it suspends, then resolves with a full identity or rejects. The
// default implementation simulates latency and mints a local identity;
// production integrations swap in a real credential exchange through
// [Builder.WithEstablisher].
type Establisher interface {
	Establish(ctx context.Context, email, displayName string) (session.Identity, error)
}

// simulatedEstablisher is the trust-the-client default: any non-blank
// email and display name produce a fresh identity after a configurable
// delay.
type simulatedEstablisher struct {
	latency    time.Duration
	avatarBase string
}

func newSimulatedEstablisher(cfg LoginConfig) *simulatedEstablisher {
	return &simulatedEstablisher{
		latency:    cfg.EstablishLatency,
		avatarBase: cfg.AvatarBaseURL,
	}
}

func (e *simulatedEstablisher) Establish(ctx context.Context, email, displayName string) (session.Identity, error) {
	email = strings.TrimSpace(email)
	displayName = strings.TrimSpace(displayName)
	if email == "" || displayName == "" {
		return session.Identity{}, ErrInvalidCredentials
	}

	if e.latency > 0 {
		timer := time.NewTimer(e.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return session.Identity{}, ctx.Err()
		}
	}

	return session.Identity{
		ID:          uuid.NewString(),
		Email:       email,
		DisplayName: displayName,
		AvatarRef:   e.avatarBase + url.QueryEscape(email),
	}, nil
}
