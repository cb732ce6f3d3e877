package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chat-task-scheduler/internal/model"
	"chat-task-scheduler/internal/task"
	"chat-task-scheduler/internal/task/repository"
)

// CreateFromText parses raw chat text with the LLM and stores every valid task.
func (uc *implUseCase) CreateFromText(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.CreateOutput{}, task.ErrEmptyInput
	}

	now := uc.now().In(uc.dateMath.Location())
	uc.l.Infof(ctx, "CreateFromText: user=%s input_length=%d", sc.UserID, len(input.RawText))

	raw, err := uc.llm.GenerateText(ctx, parsingSystemPrompt, buildParsingPrompt(input.RawText, now.Format(model.DateLayout)), true)
	if err != nil {
		uc.l.Errorf(ctx, "CreateFromText: LLM request failed: %v", err)
		return task.CreateOutput{}, fmt.Errorf("%w: %v", task.ErrParseFailed, err)
	}

	parsed, err := decodeParsedTasks(raw)
	if err != nil {
		uc.l.Errorf(ctx, "CreateFromText: bad LLM output %q: %v", raw, err)
		return task.CreateOutput{}, fmt.Errorf("%w: %v", task.ErrParseFailed, err)
	}

	var out task.CreateOutput
	for _, p := range parsed {
		t, err := model.NewTask(model.NewTaskInput{
			UserID:          sc.UserID,
			Name:            p.Name,
			DurationMinutes: p.DurationMinutes,
			Priority:        p.Priority,
			DueDate:         resolveDueDate(uc.dateMath, p.DueDate, now),
			Kind:            parseKind(p.Kind),
		})
		if err != nil {
			uc.l.Warnf(ctx, "CreateFromText: skipping %q: %v", p.Name, err)
			out.Skipped++
			continue
		}
		if err := uc.repo.SaveTask(ctx, t); err != nil {
			return out, err
		}
		out.Tasks = append(out.Tasks, t)
	}

	if len(out.Tasks) == 0 {
		return out, task.ErrNoTasksParsed
	}
	uc.l.Infof(ctx, "CreateFromText: created %d tasks (skipped %d)", len(out.Tasks), out.Skipped)
	return out, nil
}

// List returns the user's tasks oldest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) ([]model.Task, error) {
	return uc.repo.ListTasks(ctx, repository.ListTasksOptions{UserID: sc.UserID, Kind: input.Kind})
}

// Get returns tasks in the order of ids, skipping unknown ones.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, ids []string) ([]model.Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{UserID: sc.UserID, IDs: ids})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Task, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}
	out := make([]model.Task, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, t)
			continue
		}
		uc.l.Warnf(ctx, "Get: task %s not found for user=%s", id, sc.UserID)
	}
	return out, nil
}

// Complete removes the task and returns what was removed.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, sc.UserID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		return model.Task{}, err
	}
	if err := uc.repo.DeleteTask(ctx, sc.UserID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		return model.Task{}, err
	}
	return t, nil
}

// Promote turns the given future tasks into daily ones. Daily tasks are left alone.
func (uc *implUseCase) Promote(ctx context.Context, sc model.Scope, ids []string) ([]model.Task, error) {
	tasks, err := uc.Get(ctx, sc, ids)
	if err != nil {
		return nil, err
	}

	var promoted []model.Task
	for _, t := range tasks {
		if t.Kind != model.TaskKindFuture {
			continue
		}
		daily := t.AsDaily()
		if err := uc.repo.SaveTask(ctx, daily); err != nil {
			return promoted, err
		}
		promoted = append(promoted, daily)
	}
	if len(promoted) > 0 {
		uc.l.Infof(ctx, "Promote: %d future tasks moved to daily for user=%s", len(promoted), sc.UserID)
	}
	return promoted, nil
}
