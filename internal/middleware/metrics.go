package middleware

import (
	"strconv"
	"time"

	"storefront/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records a request counter and latency histogram per route pattern.
func Metrics(m *metrics.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.Requests.WithLabelValues(handler, status).Inc()
		m.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
	}
}
