package middleware

import (
	"memory-mob/config"
	"memory-mob/pkg/log"
)

type Middleware struct {
	l              log.Logger
	voiceLimiter   *rateLimiter
	webhookLimiter *rateLimiter
	telegramSecret string
}

// New builds the shared middleware set. A zero rate disables that limiter.
func New(l log.Logger, rl config.RateLimitConfig, telegramSecret string) Middleware {
	return Middleware{
		l:              l,
		voiceLimiter:   newRateLimiter(rl.VoicePerMin),
		webhookLimiter: newRateLimiter(rl.WebhookPerMin),
		telegramSecret: telegramSecret,
	}
}
