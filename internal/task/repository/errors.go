package repository

import "errors"

var (
	ErrNotFound       = errors.New("task not found")
	ErrFailedToSave   = errors.New("failed to save task")
	ErrFailedToGet    = errors.New("failed to get task")
	ErrFailedToList   = errors.New("failed to list tasks")
	ErrFailedToDelete = errors.New("failed to delete task")
)
