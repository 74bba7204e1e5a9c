// Package guard implements the route-guard protocol: pure decision
// functions mapping session state to a render-or-redirect verdict.
//
// # Design
//
// Guards are stateless. Each policy is a pure function of the current
// session state plus a redirect target, returning a [Verdict] that the
// caller executes — the decision is separated from the navigation side
// effect so it stays unit-testable without any rendering environment.
//
// # What this package must NOT do
//
//   - Read or write the session store.
//   - Perform navigation; executing a Verdict belongs to adapters such as
//     the middleware package.
package guard

import "github.com/fluxboard/dashgate/session"

// Outcome is the decision a guard hands to its adapter.
type Outcome uint8

const (
	// Render grants access: show the guarded content.
	Render Outcome = iota
	// Wait shows a neutral waiting indicator while bootstrap or a login is
	// still resolving. Authenticated-only guards wait instead of
	// redirecting so a returning user never sees a redirect flash before
	// bootstrap completes.
	Wait
	// Conceal renders nothing while state is still resolving. Anonymous-only
	// guards conceal instead of rendering so an already-authenticated
	// returning user never sees a flash of anonymous content.
	Conceal
	// RedirectTo denies access: navigate to Verdict.Target.
	RedirectTo
)

// String describes the string operation and its observable behavior.
func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case Wait:
		return "wait"
	case Conceal:
		return "conceal"
	case RedirectTo:
		return "redirect"
	default:
		return "unknown"
	}
}

// Verdict is a guard decision. Target is set only when Outcome is
// [RedirectTo].
type Verdict struct {
	Outcome Outcome
	Target  string
}

// RequireAuth is the authenticated-only policy: wait while loading, render
// once authenticated, otherwise redirect to the anonymous entry point.
func RequireAuth(st session.State, redirectTo string) Verdict {
	if st.Loading {
		return Verdict{Outcome: Wait}
	}
	if !st.Authenticated {
		return Verdict{Outcome: RedirectTo, Target: redirectTo}
	}
	return Verdict{Outcome: Render}
}

// RequireAnon is the anonymous-only policy: conceal while loading, render
// once confirmed unauthenticated, otherwise redirect to the authenticated
// landing point.
func RequireAnon(st session.State, redirectTo string) Verdict {
	if st.Loading {
		return Verdict{Outcome: Conceal}
	}
	if st.Authenticated {
		return Verdict{Outcome: RedirectTo, Target: redirectTo}
	}
	return Verdict{Outcome: Render}
}
