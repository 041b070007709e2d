package http

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/allisson/keyshred/internal/config"
)

// createCORSMiddleware returns nil unless CORS is enabled with at least one
// explicit origin. Nodes are normally driven server-to-server, so this only
// exists for an operator console calling the API from a browser.
func createCORSMiddleware(cfg *config.Config, logger *slog.Logger) gin.HandlerFunc {
	if !cfg.CORSEnabled {
		return nil
	}

	origins := parseOrigins(cfg.CORSAllowOrigins)
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no explicit origins configured - CORS will not be applied")
		return nil
	}

	logger.Info("CORS enabled", slog.Any("origins", origins))

	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id"},
		// Authentication is a bearer token, never a cookie.
		AllowCredentials: false,
		MaxAge:           time.Hour,
	})
}

// parseOrigins splits a comma-separated origin list. Blank entries, duplicates
// and the "*" wildcard are dropped.
func parseOrigins(originsStr string) []string {
	var origins []string
	for _, part := range strings.Split(originsStr, ",") {
		origin := strings.TrimSpace(part)
		if origin == "" || origin == "*" || slices.Contains(origins, origin) {
			continue
		}
		origins = append(origins, origin)
	}
	return origins
}
