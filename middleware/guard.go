package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dashgate "github.com/fluxboard/dashgate"
	"github.com/fluxboard/dashgate/guard"
)

// controllerKey is the gin context key [Attach] stores the controller
// under.
const controllerKey = "dashgate.controller"

// Attach injects the session controller into the request context for
// downstream guards and handlers. Register it once on the router or group
// that carries guarded routes.
func Attach(ctrl *dashgate.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(controllerKey, ctrl)
		c.Request = c.Request.WithContext(dashgate.WithController(c.Request.Context(), ctrl))
		c.Next()
	}
}

// ControllerFrom returns the controller attached by [Attach]. A guard or
// handler running without one is misconfigured; MustGet panics rather than
// degrading to an anonymous decision.
func ControllerFrom(c *gin.Context) *dashgate.Controller {
	return c.MustGet(controllerKey).(*dashgate.Controller)
}

// RequireAuth enforces the authenticated-only policy on a route. While
// state is loading it answers 503 with Retry-After so clients poll instead
// of being bounced to the login view mid-bootstrap.
func RequireAuth(redirectTo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl := ControllerFrom(c)

		verdict := guard.RequireAuth(ctrl.State(), redirectTo)
		execute(c, verdict)
	}
}

// RequireAnon enforces the anonymous-only policy on a route. While state
// is loading it answers 204 so no anonymous content flashes for a
// returning authenticated user.
func RequireAnon(redirectTo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl := ControllerFrom(c)

		verdict := guard.RequireAnon(ctrl.State(), redirectTo)
		execute(c, verdict)
	}
}

func execute(c *gin.Context, verdict guard.Verdict) {
	switch verdict.Outcome {
	case guard.Render:
		c.Next()
	case guard.Wait:
		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
	case guard.Conceal:
		c.AbortWithStatus(http.StatusNoContent)
	case guard.RedirectTo:
		c.Redirect(http.StatusFound, verdict.Target)
		c.Abort()
	default:
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
