package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	pkgResponse "chat-task-scheduler/pkg/response"
	pkgTelegram "chat-task-scheduler/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a background
// goroutine, since the LLM and calendar round trips can outlast Telegram's timeout.
// @Summary Telegram webhook
// @Description Receives Telegram updates. Requires X-Telegram-Bot-Api-Secret-Token when a secret is configured.
// @Tags telegram
// @Accept json
// @Produce json
// @Param update body pkgTelegram.Update true "Telegram update"
// @Success 200 {object} pkgResponse.Resp
// @Failure 400 {object} pkgResponse.Resp
// @Failure 401 {object} pkgResponse.Resp
// @Router /webhook/telegram [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		h.recorder.ObserveWebhook(outcomeBadRequest)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-text updates (stickers, edits, channel posts)
	msg := update.Message
	if msg == nil || msg.Chat == nil || msg.Text == "" {
		h.recorder.ObserveWebhook(outcomeIgnored)
		pkgResponse.OK(c, map[string]string{"status": outcomeIgnored})
		return
	}

	// Telegram retries non-2xx answers, so a throttled update is acknowledged and dropped.
	if err := h.security.CheckRateLimit(msg.Chat.ID); err != nil {
		h.l.Warnf(ctx, "telegram handler: %v", err)
		h.recorder.ObserveWebhook(outcomeRateLimited)
		pkgResponse.OK(c, map[string]string{"status": outcomeRateLimited})
		return
	}

	go func() {
		// Detach from the HTTP request context, which is cancelled after the response.
		bgCtx, cancel := context.WithTimeout(context.Background(), h.processTimeout)
		defer cancel()
		h.processMessage(bgCtx, msg)
	}()

	h.recorder.ObserveWebhook(outcomeAccepted)
	pkgResponse.OK(c, map[string]string{"status": outcomeAccepted})
}
