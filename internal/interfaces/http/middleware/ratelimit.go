package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"obleafusion/internal/infrastructure/i18n"
	"obleafusion/internal/infrastructure/metrics"
	"obleafusion/internal/infrastructure/ratelimit"
	"obleafusion/internal/shared/logger"
	"obleafusion/internal/shared/utils"
)

// RateLimiter enforces a per-client-IP limit on the routes it wraps.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	metrics *metrics.Metrics
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, m *metrics.Metrics, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		metrics: m,
		logger:  log,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		allowed, err := rl.limiter.Allow(c.Request.Context(), clientIP)
		if err != nil {
			// Backend unavailable: let the request through.
			rl.logger.Warnw("rate limiter unavailable, allowing request",
				"client_ip", clientIP,
				"error", err,
			)
			c.Next()
			return
		}

		if !allowed {
			rl.metrics.ObserveRateLimited(c.FullPath())
			rl.logger.Warnw("rate limit exceeded", "client_ip", clientIP, "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusTooManyRequests, i18n.MsgTooManyRequests(requestLang(c)))
			c.Abort()
			return
		}

		c.Next()
	}
}
