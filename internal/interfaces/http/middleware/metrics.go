package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"obleafusion/internal/infrastructure/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request counts and latency per matched route.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
