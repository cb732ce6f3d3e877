package router

import (
	"context"

	"chat-task-scheduler/pkg/llmprovider"
	"chat-task-scheduler/pkg/log"
)

// Router is the interface for intent routing
type Router interface {
	Classify(ctx context.Context, message string) RouterOutput
}

// SemanticRouter resolves slash commands directly and asks the LLM for everything else.
type SemanticRouter struct {
	llm llmprovider.TextGenerator
	l   log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter. A nil llm routes all free text to CONVERSATION.
func New(llm llmprovider.TextGenerator, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
