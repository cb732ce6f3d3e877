package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Sender is the slice of the Bot API the delivery layer needs.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Bot is the Telegram Bot API client.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL, and the secret Telegram should echo back, with Telegram.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secretToken string) error {
	return b.call(ctx, "setWebhook", SetWebhookRequest{
		URL:            webhookURL,
		SecretToken:    secretToken,
		AllowedUpdates: []string{"message"},
	})
}

// SendMessage sends plain text, split into several messages when it is too long.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	for _, chunk := range SplitMessage(text, MaxMessageLength) {
		if err := b.call(ctx, "sendMessage", SendMessageRequest{ChatID: chatID, Text: chunk}); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram %s: failed to marshal payload: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram %s: failed to create request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: request failed: %w", method, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("telegram %s: API error %d: %s", method, resp.StatusCode, string(raw))
	}
	if resp.StatusCode != http.StatusOK || !apiResp.OK {
		return fmt.Errorf("telegram %s failed (%d): %s", method, resp.StatusCode, apiResp.Description)
	}
	return nil
}

// SplitMessage cuts text into chunks of at most limit runes, preferring line breaks.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 || len([]rune(text)) <= limit {
		return []string{text}
	}

	var (
		chunks  []string
		current strings.Builder
		size    int
	)
	flush := func() {
		if size == 0 {
			return
		}
		if chunk := strings.TrimRight(current.String(), "\n"); chunk != "" {
			chunks = append(chunks, chunk)
		}
		current.Reset()
		size = 0
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		runes := []rune(line)
		for len(runes) > limit {
			flush()
			chunks = append(chunks, string(runes[:limit]))
			runes = runes[limit:]
		}
		if size+len(runes) > limit {
			flush()
		}
		current.WriteString(string(runes))
		size += len(runes)
	}
	flush()

	return chunks
}
