package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"memory-mob/pkg/response"
)

// rateLimiter keeps one token bucket per client, evicting idle clients.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique sources
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

// Allow reports whether key may make another request now. A nil limiter allows everything.
func (rl *rateLimiter) Allow(key string) bool {
	if rl == nil {
		return true
	}
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// VoiceRateLimit limits provider-backed voice requests per client IP.
func (m Middleware) VoiceRateLimit() gin.HandlerFunc {
	return m.limit(m.voiceLimiter, "voice")
}

// WebhookRateLimit limits Telegram webhook deliveries per source IP.
func (m Middleware) WebhookRateLimit() gin.HandlerFunc {
	return m.limit(m.webhookLimiter, "webhook")
}

func (m Middleware) limit(rl *rateLimiter, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.Allow(ip) {
			m.l.Warnf(c.Request.Context(), "%s rate limit exceeded for %s", name, ip)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
