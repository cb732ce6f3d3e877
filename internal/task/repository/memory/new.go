// Package memory is the task store used when no database is configured.
package memory

import (
	"sync"

	"chat-task-scheduler/internal/model"
	"chat-task-scheduler/internal/task/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]model.Task
	order []string
}

// New creates an empty in-memory Repository.
func New() repository.Repository {
	return &implRepository{tasks: make(map[string]model.Task)}
}
