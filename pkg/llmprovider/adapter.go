package llmprovider

import (
	"context"

	"chat-task-scheduler/pkg/deepseek"
	"chat-task-scheduler/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to the Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]gemini.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = gemini.Message{Role: m.Role, Text: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          msgs,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONMode:          req.JSONMode,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string { return "gemini" }

// Model returns model name
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// OpenAICompatAdapter adapts pkg/deepseek, which speaks the OpenAI chat
// completions protocol, so one client serves DeepSeek and Qwen alike.
type OpenAICompatAdapter struct {
	name   string
	client deepseek.IDeepSeek
}

// NewOpenAICompatAdapter creates an adapter reported under name.
func NewOpenAICompatAdapter(name string, client deepseek.IDeepSeek) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{name: name, client: client}
}

// GenerateContent implements Provider
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]deepseek.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		msgs = append(msgs, deepseek.Message{Role: "system", Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		role := m.Role
		if role == "model" {
			role = RoleAssistant
		}
		msgs = append(msgs, deepseek.Message{Role: role, Content: m.Text})
	}

	dsReq := &deepseek.Request{
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		dsReq.ResponseFormat = &deepseek.ResponseFormat{Type: "json_object"}
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text(),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAICompatAdapter) Name() string { return a.name }

// Model returns model name
func (a *OpenAICompatAdapter) Model() string { return a.client.Model() }
