package dashgate

import "errors"

var (
	// ErrInvalidCredentials is returned by the default establisher when the
	// submitted credential input is unusable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrLoginFailed is returned by [Controller.Login] when identity
	// establishment did not complete. The session state carries the stable
	// user-presentable message; ErrLoginFailed wraps the underlying cause.
	ErrLoginFailed = errors.New("login failed")
	// ErrControllerMissing is returned by [FromContext] when no Controller
	// has been attached to the context. Consumers running outside an active
	// controller scope are a programming error, not a runtime condition.
	ErrControllerMissing = errors.New("session controller not attached to context")
	// ErrControllerNotReady is returned when a nil Controller is asked to
	// perform work.
	ErrControllerNotReady = errors.New("controller not initialized")
)

// loginFailureMessage is the stable, user-presentable text surfaced in
// session state after a failed login attempt. Callers inspect the wrapped
// error for the cause; users only ever see this string.
const loginFailureMessage = "unable to establish session"
