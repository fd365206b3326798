package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tagcash-inc/tagcash/internal/infrastructure/ratelimit"
	"github.com/tagcash-inc/tagcash/internal/shared/utils"
)

// RateLimit enforces the limiter per client IP. Limiter failures let the
// request through so a Redis outage does not block all traffic.
func RateLimit(limiter ratelimit.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow("ip:" + c.ClientIP())
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
