package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"chat-task-scheduler/internal/router"
	"chat-task-scheduler/internal/schedule"
	"chat-task-scheduler/internal/task"
	"chat-task-scheduler/internal/webhook"
	pkgLog "chat-task-scheduler/pkg/log"
	pkgTelegram "chat-task-scheduler/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Recorder counts webhook outcomes.
type Recorder interface {
	ObserveWebhook(outcome string)
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	taskUC task.UseCase,
	scheduleUC schedule.UseCase,
	router router.Router,
	sender pkgTelegram.Sender,
	security *webhook.SecurityValidator,
	recorder Recorder,
) Handler {
	return newHandler(l, taskUC, scheduleUC, router, sender, security, recorder)
}

func newHandler(
	l pkgLog.Logger,
	taskUC task.UseCase,
	scheduleUC schedule.UseCase,
	router router.Router,
	sender pkgTelegram.Sender,
	security *webhook.SecurityValidator,
	recorder Recorder,
) *handler {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if security == nil {
		security = webhook.NewSecurityValidator(webhook.SecurityConfig{})
	}
	return &handler{
		l:              l,
		taskUC:         taskUC,
		scheduleUC:     scheduleUC,
		router:         router,
		sender:         sender,
		security:       security,
		recorder:       recorder,
		processTimeout: defaultProcessTimeout,
	}
}

type handler struct {
	l              pkgLog.Logger
	taskUC         task.UseCase
	scheduleUC     schedule.UseCase
	router         router.Router
	sender         pkgTelegram.Sender
	security       *webhook.SecurityValidator
	recorder       Recorder
	processTimeout time.Duration
}

type nopRecorder struct{}

func (nopRecorder) ObserveWebhook(string) {}
