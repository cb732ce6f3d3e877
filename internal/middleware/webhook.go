package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"chat-task-scheduler/pkg/response"
	"chat-task-scheduler/pkg/telegram"
)

// Webhook outcomes recorded by the guard.
const (
	OutcomeForbidden    = "forbidden"
	OutcomeUnauthorized = "unauthorized"
)

// TelegramWebhook rejects requests from outside the IP allowlist or without the
// configured secret token header. Without a validator every request passes.
func (m Middleware) TelegramWebhook() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.security == nil {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		if err := m.security.ValidateIPAddress(c.Request); err != nil {
			m.l.Warnf(ctx, "middleware.TelegramWebhook: %v", err)
			m.observe(OutcomeForbidden)
			response.Forbidden(c)
			return
		}

		if err := m.security.ValidateSecretToken(c.GetHeader(telegram.SecretTokenHeader)); err != nil {
			m.l.Warnf(ctx, "middleware.TelegramWebhook: %v from %s", err, c.ClientIP())
			m.observe(OutcomeUnauthorized)
			response.Unauthorized(c)
			return
		}

		c.Next()
	}
}

// Logger logs one line per request.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if m.l == nil {
			return
		}
		m.l.Infof(c.Request.Context(), "%s %s %d %s", c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

func (m Middleware) observe(outcome string) {
	if m.recorder != nil {
		m.recorder.ObserveWebhook(outcome)
	}
}
