package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Titan0-08/Fitness-Web/pkg/logger"
)

// IPRateLimiter manages rate limiters for each IP
type IPRateLimiter struct {
	ips   map[string]*rateLimiterEntry
	mu    sync.RWMutex
	r     rate.Limit
	burst int
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter creates a new IP-based rate limiter.
// r = requests per second, burst = max burst size.
func NewIPRateLimiter(r rate.Limit, burst int) *IPRateLimiter {
	rl := &IPRateLimiter{
		ips:   make(map[string]*rateLimiterEntry),
		r:     r,
		burst: burst,
	}

	go rl.cleanup()

	return rl
}

func (rl *IPRateLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)
		rl.mu.Lock()
		for ip, entry := range rl.ips {
			if time.Since(entry.lastSeen) > 3*time.Minute {
				delete(rl.ips, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// GetLimiter returns the rate limiter for the given IP
func (rl *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.ips[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.r, rl.burst)
		rl.ips[ip] = &rateLimiterEntry{
			limiter:  limiter,
			lastSeen: time.Now(),
		}
		return limiter
	}

	entry.lastSeen = time.Now()
	return entry.limiter
}

var (
	// Login exchange: 20 requests per minute per IP
	authLimiter = NewIPRateLimiter(rate.Limit(20.0/60.0), 10)

	// Everything else: 10 requests per second per IP
	generalLimiter = NewIPRateLimiter(rate.Limit(10.0), 20)
)

func rateLimitWith(rl *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.GetLimiter(c.ClientIP())
		if !limiter.Allow() {
			logger.Warn().
				Str("ip", c.ClientIP()).
				Str("path", c.Request.URL.Path).
				Msg("Rate limit exceeded")
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "Too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthRateLimit throttles the session login exchange.
func AuthRateLimit() gin.HandlerFunc {
	return rateLimitWith(authLimiter)
}

// GeneralRateLimit throttles all other API traffic.
func GeneralRateLimit() gin.HandlerFunc {
	return rateLimitWith(generalLimiter)
}
