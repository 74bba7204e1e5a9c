package dashgate

import "github.com/fluxboard/dashgate/session"

// Identity is re-exported from the session subpackage so that callers
// integrating a custom [Establisher] or [session.Store] do not need a
// second import for the common case.
type Identity = session.Identity

// State is re-exported from the session subpackage; see [Controller.State].
type State = session.State
