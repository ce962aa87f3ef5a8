package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnasIqbal56/Banking-App/pkg"
)

// RateLimit rejects requests with 429 once the shared limiter runs dry.
func RateLimit(limiter *pkg.DistributedLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, pkg.ErrorResponse{
				Code:    "APP_RATE_LIMITED",
				Message: pkg.ErrRateLimitExceeded.Error(),
			})
			return
		}
		c.Next()
	}
}
