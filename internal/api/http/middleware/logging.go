package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/odishoodeesh/textpost-server/internal/logger"
)

// Logging logs HTTP requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, duration and status for each request.
func (l *Logging) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		l.logger.Info("http request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", duration.Milliseconds())

		if status >= http.StatusInternalServerError {
			l.logger.Error("http request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", status,
				"errors", c.Errors.String())
		}
	}
}
