package deepseek

import "context"

// IDeepSeek is a client for DeepSeek or any other OpenAI-compatible chat completions API.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
