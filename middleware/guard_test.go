package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	dashgate "github.com/fluxboard/dashgate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGuardController(t *testing.T) *dashgate.Controller {
	t.Helper()

	cfg := dashgate.Config{}
	cfg.Session.StoragePath = filepath.Join(t.TempDir(), "session.json")
	cfg.Login.EstablishLatency = time.Millisecond

	ctrl, err := dashgate.New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(ctrl.Close)
	return ctrl
}

func newGuardRouter(ctrl *dashgate.Controller) *gin.Engine {
	r := gin.New()
	r.Use(Attach(ctrl))
	r.GET("/dashboard", RequireAuth("/login"), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})
	r.GET("/login", RequireAnon("/dashboard"), func(c *gin.Context) {
		c.String(http.StatusOK, "login form")
	})
	return r
}

func perform(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthWaitsWhileLoading(t *testing.T) {
	ctrl := newGuardController(t)
	r := newGuardRouter(ctrl)

	// No bootstrap yet: state is still loading.
	w := perform(r, http.MethodGet, "/dashboard")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatal("Retry-After header missing on waiting response")
	}
}

func TestRequireAuthRedirectsWhenAnonymous(t *testing.T) {
	ctrl := newGuardController(t)
	ctrl.Bootstrap(context.Background())
	r := newGuardRouter(ctrl)

	w := perform(r, http.MethodGet, "/dashboard")
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/login" {
		t.Fatalf("Location = %q, want /login", got)
	}
}

func TestRequireAuthRendersWhenAuthenticated(t *testing.T) {
	ctrl := newGuardController(t)
	ctx := context.Background()
	ctrl.Bootstrap(ctx)
	if err := ctrl.Login(ctx, "a@b.com", "a"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	r := newGuardRouter(ctrl)

	w := perform(r, http.MethodGet, "/dashboard")
	if w.Code != http.StatusOK || w.Body.String() != "dashboard" {
		t.Fatalf("response = %d %q", w.Code, w.Body.String())
	}
}

func TestRequireAnonConcealsWhileLoading(t *testing.T) {
	ctrl := newGuardController(t)
	r := newGuardRouter(ctrl)

	w := perform(r, http.MethodGet, "/login")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("concealed response has a body: %q", w.Body.String())
	}
}

func TestRequireAnonRedirectsWhenAuthenticated(t *testing.T) {
	ctrl := newGuardController(t)
	ctx := context.Background()
	ctrl.Bootstrap(ctx)
	if err := ctrl.Login(ctx, "a@b.com", "a"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	r := newGuardRouter(ctrl)

	w := perform(r, http.MethodGet, "/login")
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/dashboard" {
		t.Fatalf("Location = %q, want /dashboard", got)
	}
}

func TestRequireAnonRendersWhenAnonymous(t *testing.T) {
	ctrl := newGuardController(t)
	ctrl.Bootstrap(context.Background())
	r := newGuardRouter(ctrl)

	w := perform(r, http.MethodGet, "/login")
	if w.Code != http.StatusOK || w.Body.String() != "login form" {
		t.Fatalf("response = %d %q", w.Code, w.Body.String())
	}
}

// A guard on a route group without Attach is a programming error and must
// fail loudly, not fall through to an anonymous decision.
func TestGuardWithoutAttachPanics(t *testing.T) {
	r := gin.New()
	r.GET("/dashboard", RequireAuth("/login"), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})

	defer func() {
		if recover() == nil {
			t.Fatal("guard without Attach did not panic")
		}
	}()
	perform(r, http.MethodGet, "/dashboard")
}

func TestAttachExposesControllerOnRequestContext(t *testing.T) {
	ctrl := newGuardController(t)

	r := gin.New()
	r.Use(Attach(ctrl))
	r.GET("/probe", func(c *gin.Context) {
		got, err := dashgate.FromContext(c.Request.Context())
		if err != nil || got != ctrl {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	if w := perform(r, http.MethodGet, "/probe"); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
