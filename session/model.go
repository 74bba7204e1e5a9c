package session

// Identity is the user profile established by a successful login and
// persisted across restarts. It is opaque to the state machine beyond its
// shape; production integrations replace the simulated establisher with a
// real credential exchange that produces the same record.
type Identity struct {
	ID          string
	Email       string
	DisplayName string
	AvatarRef   string
}

// State is the authoritative in-memory record of authentication status.
//
// State instances are values: they are produced by [Reduce] and never
// mutated in place. A nil User with Authenticated set never occurs in a
// reachable state.
type State struct {
	// User is the identity of the authenticated user, or nil when no
	// session is established.
	User *Identity

	// Authenticated is true iff User is present and session establishment
	// succeeded.
	Authenticated bool

	// Loading is true only during the bootstrap read from the store or
	// while a login attempt is in flight.
	Loading bool

	// Err is the user-presentable message of the most recent failed login
	// attempt. Empty means no error. It is cleared at the start of every
	// new attempt and on successful login.
	Err string
}

// Initial returns the state every process starts from: loading, not
// authenticated, no user, no error.
func Initial() State {
	return State{Loading: true}
}
