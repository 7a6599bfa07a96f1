package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pagesmith/pagesmith-go/internal/infrastructure/security"
	"github.com/pagesmith/pagesmith-go/pkg/config"
)

// RateLimitMiddleware throttles by client IP within a sliding window.
// Applied to the public write endpoints (login, form submissions).
func RateLimitMiddleware(store security.RateLimitStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.FullPath()
		if store.Increment(key, config.RateLimitWindow) > config.RateLimitMax {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
