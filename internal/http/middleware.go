package http

import (
	"crypto/subtle"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/keyshred/internal/errors"
	"github.com/allisson/keyshred/internal/httputil"
)

// CustomLoggerMiddleware logs one structured line per request.
func CustomLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		attrs := []any{
			slog.String("request_id", requestid.Get(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}

		if len(c.Errors) > 0 {
			logger.Error("http request", append(attrs, slog.String("errors", c.Errors.String()))...)
			return
		}
		logger.Info("http request", attrs...)
	}
}

// APITokenMiddleware requires "Authorization: Bearer <token>" on every request.
// The comparison runs in constant time.
func APITokenMiddleware(token string, logger *slog.Logger) gin.HandlerFunc {
	expected := []byte(token)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		presented, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(presented), expected) != 1 {
			logger.Debug("rejected request with invalid API token",
				slog.String("client_ip", c.ClientIP()),
				slog.String("path", c.Request.URL.Path))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
