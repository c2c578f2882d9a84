package middleware

import (
	"crypto/hmac"

	"github.com/gin-gonic/gin"

	"memory-mob/pkg/response"
	"memory-mob/pkg/telegram"
)

// TelegramSecret rejects webhook calls whose secret token header does not match
// the one registered with setWebhook. With no secret configured every call passes.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.telegramSecret == "" {
			c.Next()
			return
		}
		got := c.GetHeader(telegram.SecretTokenHeader)
		if !hmac.Equal([]byte(got), []byte(m.telegramSecret)) {
			m.l.Warnf(c.Request.Context(), "telegram webhook: invalid secret token from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
