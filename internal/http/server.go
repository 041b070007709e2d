// Package http provides the HTTP servers of a keyshred node: the API server
// for provisioning and alerts, and the metrics server.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	auditHTTP "github.com/allisson/keyshred/internal/audit/http"
	"github.com/allisson/keyshred/internal/config"
	keysHTTP "github.com/allisson/keyshred/internal/keys/http"
	"github.com/allisson/keyshred/internal/metrics"
)

// Server represents the API HTTP server.
type Server struct {
	server       *http.Server
	router       *gin.Engine
	db           *sql.DB
	logger       *slog.Logger
	shuttingDown atomic.Bool
}

// NewServer creates a new API server. db is the audit store and may be nil
// when auditing is disabled.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter registers middleware and routes. shredRecordHandler may be nil,
// in which case the audit routes are not exposed. metricsProvider may be nil
// to disable HTTP metrics. ctx bounds background cleanup of rate limiters.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	keyHandler *keysHTTP.KeyHandler,
	shredRecordHandler *auditHTTP.ShredRecordHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.APIToken != "" {
		v1.Use(APITokenMiddleware(cfg.APIToken, s.logger))
	} else {
		s.logger.Warn("API_TOKEN is empty - /v1 routes are unauthenticated")
	}

	provision := []gin.HandlerFunc{}
	if cfg.RateLimitEnabled {
		provision = append(provision,
			RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	provision = append(provision, keyHandler.ProvisionHandler)

	v1.POST("/keys", provision...)
	v1.GET("/keys/*id", keyHandler.GetHandler)
	v1.GET("/node", keyHandler.NodeHandler)

	// Alerts are never rate limited: a destruction request must not be delayed.
	v1.POST("/alerts", keyHandler.TriggerShredHandler)
	v1.POST("/alerts/all", keyHandler.ShredAllHandler)

	if shredRecordHandler != nil {
		v1.GET("/audit/records", shredRecordHandler.ListHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server. SetupRouter must be called first.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server. Readiness reports not_ready
// from the moment shutdown begins.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shuttingDown.Store(true)
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports that the process is alive.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the node accepts traffic. The audit store
// is checked only when one is configured.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.shuttingDown.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"server": "shutting_down"},
		})
		return
	}

	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"components": gin.H{"database": "disabled"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
