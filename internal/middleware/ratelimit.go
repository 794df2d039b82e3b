package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carbontrack/internal/ratelimit"
)

// RateLimit returns a Gin middleware that rejects requests exceeding the
// limiter's per-client window with 429 and a Retry-After hint. Clients are
// keyed by IP.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter := limiter.Allow(c.ClientIP())
		if !ok {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":      "Too many requests",
				"retryAfter": seconds,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
