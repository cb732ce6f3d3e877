package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chat-task-scheduler/pkg/deepseek"
)

func TestNew(t *testing.T) {
	if _, err := deepseek.New(deepseek.Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
	c, err := deepseek.New(deepseek.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != deepseek.DefaultModel {
		t.Errorf("Model() = %q", c.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" || r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req deepseek.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch req.Messages[len(req.Messages)-1].Content {
		case "rate":
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": {"message": "slow down", "type": "rate_limit"}}`))
			return
		case "garbage":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`<html>bad gateway</html>`))
			return
		}

		_ = json.NewEncoder(w).Encode(deepseek.Response{
			ID:    "cmpl-1",
			Model: req.Model,
			Choices: []deepseek.Choice{
				{Message: deepseek.Message{Role: "assistant", Content: "hello " + req.Model}, FinishReason: "stop"},
			},
			Usage: deepseek.Usage{PromptTokens: 3, CompletionTokens: 2, TotalTokens: 5},
		})
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{APIKey: "secret", Model: "qwen-plus", BaseURL: ts.URL + "/v1/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("success uses configured model", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "hi"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "hello qwen-plus" || resp.Usage.TotalTokens != 5 {
			t.Errorf("unexpected response %+v", resp)
		}
	})

	t.Run("structured error", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "rate"}},
		})
		if err == nil || !strings.Contains(err.Error(), "slow down") {
			t.Fatalf("expected API error message, got %v", err)
		}
	})

	t.Run("unstructured error", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "garbage"}},
		})
		if err == nil || !strings.Contains(err.Error(), "502") {
			t.Fatalf("expected raw status error, got %v", err)
		}
	})
}

func TestResponseText(t *testing.T) {
	var nilResp *deepseek.Response
	if nilResp.Text() != "" {
		t.Error("expected empty text for nil response")
	}
	if (&deepseek.Response{}).Text() != "" {
		t.Error("expected empty text without choices")
	}
}
