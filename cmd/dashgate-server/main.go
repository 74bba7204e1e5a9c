// Command dashgate-server hosts the dashboard session API: login, logout,
// session introspection, and guarded views, with Prometheus metrics and
// structured logging.
//
// Configuration is environment-driven (a .env file is honored when
// present):
//
//	PORT                 listen port (default 8080)
//	LOG_LEVEL            zerolog level (default info)
//	SESSION_FILE         session record path (default ./dashgate-session.json)
//	REDIS_ADDR           when set, persist the session in Redis instead
//	REDIS_KEY            Redis key for the session record
//	LOGIN_LATENCY_MS     simulated identity-establishment delay (default 250)
//	INSIGHT_ENDPOINT     remote insight provider URL (optional)
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	dashgate "github.com/fluxboard/dashgate"
	"github.com/fluxboard/dashgate/insight"
	promexport "github.com/fluxboard/dashgate/metrics/export/prometheus"
	"github.com/fluxboard/dashgate/middleware"
	"github.com/fluxboard/dashgate/session"
)

func main() {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	level, err := zerolog.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	port := envOr("PORT", "8080")

	cfg := dashgate.Config{}
	cfg.Session.StoragePath = envOr("SESSION_FILE", "dashgate-session.json")
	cfg.Login.EstablishLatency = time.Duration(envInt("LOGIN_LATENCY_MS", 250)) * time.Millisecond
	cfg.Login.AvatarBaseURL = "https://i.pravatar.cc/150?u="
	cfg.Audit.Enabled = true
	cfg.Audit.BufferSize = 128
	cfg.Metrics.Enabled = true

	builder := dashgate.New().
		WithConfig(cfg).
		WithLogger(log.Logger).
		WithAuditSink(dashgate.NewJSONWriterSink(os.Stdout))

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		defer rdb.Close()
		builder = builder.WithStore(session.NewRedisStore(rdb, os.Getenv("REDIS_KEY"), log.Logger))
		log.Info().Str("addr", addr).Msg("Using Redis session store")
	}

	ctrl, err := builder.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build session controller")
	}
	defer ctrl.Close()

	ctrl.Bootstrap(context.Background())
	log.Info().
		Bool("authenticated", ctrl.State().Authenticated).
		Msg("Session bootstrap complete")

	var tips insight.Provider = insight.NewStatic(nil)
	if endpoint := os.Getenv("INSIGHT_ENDPOINT"); endpoint != "" {
		tips = insight.NewHTTP(endpoint, 3*time.Second, nil, log.Logger)
	}

	if level > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logging())
	r.Use(middleware.Prometheus())
	r.Use(middleware.Attach(ctrl))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/metrics/session", gin.WrapH(promexport.NewExporter(ctrl).Handler()))

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", login(ctrl))
		api.POST("/auth/logout", logout(ctrl))
		api.GET("/auth/me", me(ctrl))
	}

	r.GET("/dashboard", middleware.RequireAuth("/login"), dashboard(ctrl, tips))
	r.GET("/login", middleware.RequireAnon("/dashboard"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"view": "login"})
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", port).Msg("Starting dashgate server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}
	log.Info().Msg("Graceful shutdown complete")
}

type loginRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

func login(ctrl *dashgate.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := ctrl.Login(c.Request.Context(), req.Email, req.Name); err != nil {
			// State carries the stable user-presentable message.
			c.JSON(http.StatusUnauthorized, gin.H{"error": ctrl.State().Err})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": userPayload(ctrl.State())})
	}
}

func logout(ctrl *dashgate.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl.Logout(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
	}
}

func me(ctrl *dashgate.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := ctrl.State()
		if st.Loading {
			c.Header("Retry-After", "1")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
			return
		}
		if !st.Authenticated {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": userPayload(st)})
	}
}

func dashboard(ctrl *dashgate.Controller, tips insight.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := ctrl.State()
		name := ""
		if st.User != nil {
			name = st.User.DisplayName
		}
		c.JSON(http.StatusOK, gin.H{
			"view":    "dashboard",
			"user":    userPayload(st),
			"insight": tips.Tip(c.Request.Context(), name),
		})
	}
}

func userPayload(st dashgate.State) gin.H {
	if st.User == nil {
		return nil
	}
	return gin.H{
		"id":     st.User.ID,
		"email":  st.User.Email,
		"name":   st.User.DisplayName,
		"avatar": st.User.AvatarRef,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
