package usecase

import (
	"time"

	"chat-task-scheduler/internal/task"
	"chat-task-scheduler/internal/task/repository"
	"chat-task-scheduler/pkg/datemath"
	"chat-task-scheduler/pkg/llmprovider"
	pkgLog "chat-task-scheduler/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      llmprovider.TextGenerator
	repo     repository.Repository
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	llm llmprovider.TextGenerator,
	repo repository.Repository,
	dateMath *datemath.Parser,
) task.UseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		repo:     repo,
		dateMath: dateMath,
		now:      time.Now,
	}
}
