package test

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"

	dashgate "github.com/fluxboard/dashgate"
	"github.com/fluxboard/dashgate/guard"
	"github.com/fluxboard/dashgate/middleware"
	"github.com/fluxboard/dashgate/session"
)

// This test intentionally guards public API compile-compat for consumers.
func TestPublicAPISurfaceCompile(t *testing.T) {
	_ = dashgate.New

	var _ *dashgate.Controller
	var _ dashgate.Config
	var _ dashgate.Establisher
	var _ dashgate.AuditSink
	var _ dashgate.AuditEvent
	var _ dashgate.MetricsSnapshot
	var _ dashgate.Identity
	var _ dashgate.State

	var _ error = dashgate.ErrInvalidCredentials
	var _ error = dashgate.ErrLoginFailed
	var _ error = dashgate.ErrControllerMissing
	var _ error = dashgate.ErrControllerNotReady

	var _ session.Store = (*session.FileStore)(nil)
	var _ session.Store = (*session.RedisStore)(nil)
	var _ func(session.State, session.Action) session.State = session.Reduce

	var _ func(session.State, string) guard.Verdict = guard.RequireAuth
	var _ func(session.State, string) guard.Verdict = guard.RequireAnon

	var _ func(*dashgate.Controller) gin.HandlerFunc = middleware.Attach
	var _ func(string) gin.HandlerFunc = middleware.RequireAuth
	var _ func(string) gin.HandlerFunc = middleware.RequireAnon

	var _ func(*dashgate.Controller, context.Context, string, string) error = (*dashgate.Controller).Login
	var _ func(*dashgate.Controller, context.Context) = (*dashgate.Controller).Bootstrap
	var _ func(*dashgate.Controller, context.Context) = (*dashgate.Controller).Logout
	var _ func(*dashgate.Controller) session.State = (*dashgate.Controller).State
}
