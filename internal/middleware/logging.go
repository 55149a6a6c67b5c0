package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		entry := logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"remote_ip": c.ClientIP(),
		})
		entry.Debug("Incoming request")

		c.Next()

		latency := time.Since(startTime)
		statusCode := c.Writer.Status()

		completedEntry := logger.WithFields(logrus.Fields{
			"status_code": statusCode,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"remote_ip":   c.ClientIP(),
			"latency_ms":  latency.Milliseconds(),
		})

		if len(c.Errors) > 0 {
			completedEntry.Errorf("Request completed with errors: %s", c.Errors.String())
			return
		}
		if statusCode >= 500 {
			completedEntry.Error("Request completed")
		} else if statusCode >= 400 {
			completedEntry.Warn("Request completed")
		} else {
			completedEntry.Info("Request completed")
		}
	}
}
