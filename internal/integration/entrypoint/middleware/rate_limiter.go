// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts bounds enrollment attempts per client and window.
	defaultMaxAttempts = 5
	// defaultWindow is the fixed window the attempt budget refills on.
	defaultWindow = 1 * time.Minute

	// pruneThreshold is the entry count above which expired windows are
	// swept out of the map.
	pruneThreshold = 1024
)

// attemptWindow counts attempts from one client within the current window.
type attemptWindow struct {
	attempts int
	expires  time.Time
}

// RateLimiter enforces a per-client-IP attempt budget over a fixed window.
// Passphrase enrollment is the only brute-forceable surface, so the
// limiter guards that route alone.
type RateLimiter struct {
	mu          sync.Mutex
	windows     map[string]attemptWindow
	maxAttempts int
	window      time.Duration
}

// NewRateLimiter creates a rate limiter with the default attempt budget.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultMaxAttempts, defaultWindow)
}

// NewRateLimiterWithConfig creates a rate limiter with a custom budget.
// Test environments pass a high budget so scenario setup never trips it.
func NewRateLimiterWithConfig(maxAttempts int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		windows:     make(map[string]attemptWindow),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Middleware returns a Gin handler that rejects clients over their attempt
// budget with 429 and the rate-limited error code.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if key == "" {
			key = c.Request.RemoteAddr
		}

		if !rl.allow(key, time.Now()) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many enrollment attempts. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[key]
	if !ok || now.After(w.expires) {
		if len(rl.windows) > pruneThreshold {
			rl.prune(now)
		}
		rl.windows[key] = attemptWindow{attempts: 1, expires: now.Add(rl.window)}
		return true
	}

	if w.attempts >= rl.maxAttempts {
		return false
	}
	w.attempts++
	rl.windows[key] = w
	return true
}

// prune drops expired windows. Callers must hold mu.
func (rl *RateLimiter) prune(now time.Time) {
	for key, w := range rl.windows {
		if now.After(w.expires) {
			delete(rl.windows, key)
		}
	}
}
