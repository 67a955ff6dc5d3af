package middleware

import (
	"net/http"
	"strconv"

	"github.com/gdugdh24/topfive-backend/internal/infrastructure/cache"
	"github.com/gdugdh24/topfive-backend/pkg/log"
	"github.com/gin-gonic/gin"
)

// RateLimit counts requests per route and client IP. When the limiter itself fails the
// request is let through.
func RateLimit(limiter cache.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.FullPath() + ":" + c.ClientIP()

		allowed, remaining, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.From(c.Request.Context()).Warn("rate limiter unavailable", "err", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Request was throttled. Try again later."})
			return
		}
		c.Next()
	}
}
