package middleware

import (
	"time"

	"marina-guard-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger logs one structured line per request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		fields := map[string]interface{}{
			"status":     status,
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.ByType(gin.ErrorTypePrivate).String()
		}

		// the auth middleware swaps in a request context carrying the user id
		log := logger.WithContext(c.Request.Context()).WithFields(fields)
		switch {
		case status >= 500:
			log.Error("Request failed")
		case status >= 400:
			log.Warn("Client error")
		default:
			log.Info("Request completed")
		}
	}
}
