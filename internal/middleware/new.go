package middleware

import (
	"chat-task-scheduler/internal/webhook"
	"chat-task-scheduler/pkg/log"
)

// WebhookRecorder counts rejected webhook requests.
type WebhookRecorder interface {
	ObserveWebhook(outcome string)
}

type Middleware struct {
	l        log.Logger
	security *webhook.SecurityValidator
	recorder WebhookRecorder
}

func New(l log.Logger, security *webhook.SecurityValidator, recorder WebhookRecorder) Middleware {
	return Middleware{
		l:        l,
		security: security,
		recorder: recorder,
	}
}
