package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/metrics"
)

// Metrics records per-route request counts and latencies for Prometheus.
// Uses the matched route pattern, not the raw path, to keep cardinality down.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
