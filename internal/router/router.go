package router

import (
	"context"
	"encoding/json"
	"strings"
)

// Classify determines user intent from message. It never fails: any LLM problem
// routes the message to CONVERSATION.
func (r *SemanticRouter) Classify(ctx context.Context, message string) RouterOutput {
	if out, ok := ParseCommand(message); ok {
		return out
	}

	if r.llm == nil {
		return fallback(ReasonLLMError)
	}

	responseText, err := r.llm.GenerateText(ctx, PromptRouterSystem, PromptMessagePrefix+`"`+message+`"`, true)
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		return fallback(ReasonLLMError)
	}

	responseText = stripCodeFence(responseText)

	var output RouterOutput
	if err := json.Unmarshal([]byte(responseText), &output); err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return fallback(ReasonParsingError)
	}

	output.Intent = Intent(strings.ToUpper(strings.TrimSpace(string(output.Intent))))
	if !classifiable[output.Intent] {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ErrMsgUnknownIntent, output.Intent)
		return fallback(ReasonUnknownIntent)
	}

	r.l.Infof(ctx, "%s: Classified as %s (confidence: %d%%)", LogPrefixClassify, output.Intent, output.Confidence)
	return output
}

// ParseCommand recognises "/cmd arg1 arg2" and "/cmd@BotName ...".
func ParseCommand(message string) (RouterOutput, bool) {
	fields := strings.Fields(message)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return RouterOutput{}, false
	}

	name := strings.ToLower(fields[0])
	if at := strings.IndexByte(name, '@'); at > 0 {
		name = name[:at]
	}
	intent, ok := commands[name]
	if !ok {
		return RouterOutput{}, false
	}

	return RouterOutput{
		Intent:     intent,
		Confidence: CommandConfidence,
		Reasoning:  ReasonSlashCommand,
		Args:       fields[1:],
	}, true
}

func fallback(reason string) RouterOutput {
	return RouterOutput{
		Intent:     RouterFallbackIntent,
		Confidence: RouterFallbackConfidence,
		Reasoning:  reason,
	}
}

// stripCodeFence removes a ```json ... ``` wrapper if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
