package repository

import "chat-task-scheduler/internal/model"

// ListTasksOptions filters ListTasks. Zero-valued fields are ignored.
type ListTasksOptions struct {
	UserID string
	Kind   model.TaskKind
	IDs    []string
}
