package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter counts hits per key in fixed windows.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit allows limit requests per window for each caller of the route named
// name. Callers are identified by user ID when authenticated, else by client IP.
// When the limiter fails the request goes through.
func RateLimit(limiter Limiter, name string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limit <= 0 {
			c.Next()
			return
		}

		caller := "ip:" + c.ClientIP()
		if userID, err := GetUserIDFromContext(c); err == nil {
			caller = "user:" + userID.String()
		}

		allowed, err := limiter.Allow(c.Request.Context(), name+":"+caller, limit, window)
		if err != nil {
			log.Printf("RateLimit: limiter error on %s for %s: %v", name, caller, err)
			c.Next()
			return
		}
		if !allowed {
			log.Printf("RateLimit: %s exceeded %d requests per %s on %s", caller, limit, window, name)
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, try again later"})
			return
		}
		c.Next()
	}
}
