package task

import "chat-task-scheduler/internal/model"

// CreateInput is the input for task creation from chat text.
type CreateInput struct {
	RawText string // natural language, one or more tasks
}

// CreateOutput is the result of CreateFromText.
type CreateOutput struct {
	Tasks   []model.Task
	Skipped int // parsed entries rejected by validation
}

// ListInput filters List. An empty Kind lists every task.
type ListInput struct {
	Kind model.TaskKind
}
