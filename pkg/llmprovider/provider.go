package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "qwen", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Roles understood by every adapter.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request represents a normalized text generation request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	// JSONMode asks the provider for a bare JSON body.
	JSONMode bool
}

// Message represents a conversation message
type Message struct {
	Role string
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserPrompt builds a single-turn request.
func UserPrompt(system, prompt string) *Request {
	return &Request{
		SystemInstruction: system,
		Messages:          []Message{{Role: RoleUser, Text: prompt}},
	}
}

// TextGenerator is the prompt-in, text-out surface domain code depends on.
// *Manager implements it.
type TextGenerator interface {
	GenerateText(ctx context.Context, system, prompt string, jsonMode bool) (string, error)
}
