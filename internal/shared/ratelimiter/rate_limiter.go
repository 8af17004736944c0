// Package ratelimiter throttles password-guessing against the login endpoints.
package ratelimiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter counts attempts per key in a fixed window and rejects the excess.
// Keys are typically client IPs.
type Limiter struct {
	limit    int
	interval time.Duration

	mu      sync.Mutex
	counts  map[string]int
	resetAt time.Time
	now     func() time.Time
}

// NewLimiter creates a Limiter allowing limit attempts per key per interval.
func NewLimiter(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:    limit,
		interval: interval,
		counts:   make(map[string]int),
		now:      time.Now,
	}
}

// Allow reports whether another attempt from key fits in the current window.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.After(l.resetAt) {
		l.counts = make(map[string]int)
		l.resetAt = now.Add(l.interval)
	}

	l.counts[key]++
	return l.counts[key] <= l.limit
}

// Middleware rejects over-limit requests with 429 before the handler runs.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts, try again later"})
			return
		}
		c.Next()
	}
}
