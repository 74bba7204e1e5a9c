package session

// Action is the closed union of state transitions accepted by [Reduce].
// New transitions are added by extending the variant set and the match in
// Reduce, never through open-ended string tags.
type Action interface {
	isAction()
}

// BeginLogin marks the start of a login attempt. It raises Loading and
// clears any error from a previous attempt; identity fields are untouched.
type BeginLogin struct{}

// LoginSucceeded installs the established identity and resolves Loading.
type LoginSucceeded struct {
	Identity Identity
}

// LoginFailed resolves Loading and records a user-presentable failure
// message. Authentication status and the current user are untouched, so a
// failed re-login does not tear down an existing session.
type LoginFailed struct {
	Message string
}

// LoggedOut drops the session: no user, not authenticated. Loading and Err
// are untouched by this transition.
type LoggedOut struct{}

// BootstrapSettled resolves the initial Loading flag once the bootstrap
// read found no usable record. It exists so that LoggedOut can stay a pure
// "drop the session" transition while bootstrap still resolves Loading
// exactly once.
type BootstrapSettled struct{}

func (BeginLogin) isAction()       {}
func (LoginSucceeded) isAction()   {}
func (LoginFailed) isAction()      {}
func (LoggedOut) isAction()        {}
func (BootstrapSettled) isAction() {}

// Reduce maps (state, action) to the next state. It is pure, synchronous,
// and total: no action is rejected and there is no terminal state. The
// machine cycles between unauthenticated, loading, and authenticated
// phases, with Loading orthogonal to the identity fields.
func Reduce(st State, action Action) State {
	switch a := action.(type) {
	case BeginLogin:
		st.Loading = true
		st.Err = ""
	case LoginSucceeded:
		ident := a.Identity
		st.User = &ident
		st.Authenticated = true
		st.Loading = false
		st.Err = ""
	case LoginFailed:
		st.Loading = false
		st.Err = a.Message
	case LoggedOut:
		st.User = nil
		st.Authenticated = false
	case BootstrapSettled:
		st.Loading = false
	}
	return st
}
