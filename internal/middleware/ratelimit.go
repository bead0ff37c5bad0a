package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openmusic/server/pkg/limiter"
	"github.com/openmusic/server/pkg/logger"
)

// RateLimit limits requests per client IP within a fixed window.
// On Redis failure the request is allowed through; availability over
// strict enforcement.
func RateLimit(rl *limiter.RateLimiter, limit int64, window time.Duration, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + c.FullPath() + ":" + c.ClientIP()

		allowed, err := rl.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			log.Warn("rate limit check failed",
				logger.String("request_id", GetRequestID(c)),
				logger.Error(err),
			)
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":  "fail",
				"message": "too many requests",
			})
			return
		}

		c.Next()
	}
}
