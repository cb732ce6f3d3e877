package repository

import (
	"context"

	"chat-task-scheduler/internal/model"
)

// Repository is the task data store.
type Repository interface {
	// SaveTask inserts the task or replaces the stored row with the same ID.
	SaveTask(ctx context.Context, t model.Task) error
	// GetTask returns ErrNotFound when the user has no task with that ID.
	GetTask(ctx context.Context, userID, id string) (model.Task, error)
	// ListTasks returns matching tasks oldest first.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	DeleteTask(ctx context.Context, userID, id string) error
}
