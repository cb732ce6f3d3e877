package task

import (
	"context"

	"chat-task-scheduler/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// CreateFromText parses free chat text into one or more tasks and stores them.
	CreateFromText(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List returns the user's tasks in creation order, optionally filtered by kind.
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Task, error)

	// Get returns the tasks with the given IDs in the order requested. Unknown IDs are skipped.
	Get(ctx context.Context, sc model.Scope, ids []string) ([]model.Task, error)

	// Complete marks a task done by removing it from the list.
	Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// Promote converts future tasks to daily ones once they are on the calendar.
	Promote(ctx context.Context, sc model.Scope, ids []string) ([]model.Task, error)
}
