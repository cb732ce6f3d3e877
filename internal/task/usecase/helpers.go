package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"chat-task-scheduler/internal/model"
	"chat-task-scheduler/pkg/datemath"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// decodeParsedTasks accepts either a JSON array or a single object.
func decodeParsedTasks(raw string) ([]parsedTask, error) {
	cleaned := sanitizeJSONResponse(raw)

	var tasks []parsedTask
	if err := json.Unmarshal([]byte(cleaned), &tasks); err == nil {
		return tasks, nil
	}

	var single parsedTask
	if err := json.Unmarshal([]byte(cleaned), &single); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return []parsedTask{single}, nil
}

// resolveDueDate turns the LLM's due date into YYYY-MM-DD. Empty stays empty.
func resolveDueDate(p *datemath.Parser, raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	d, err := p.Parse(raw, now)
	if err != nil {
		return ""
	}
	return d.Format(model.DateLayout)
}

func parseKind(s string) model.TaskKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "future", "investment", "long_term":
		return model.TaskKindFuture
	default:
		return model.TaskKindDaily
	}
}
