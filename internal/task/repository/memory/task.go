package memory

import (
	"context"
	"slices"

	"chat-task-scheduler/internal/model"
	"chat-task-scheduler/internal/task/repository"
)

func (r *implRepository) SaveTask(ctx context.Context, t model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[t.ID]; !ok {
		r.order = append(r.order, t.ID)
	}
	r.tasks[t.ID] = t
	return nil
}

func (r *implRepository) GetTask(ctx context.Context, userID, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Task
	for _, id := range r.order {
		t := r.tasks[id]
		if opt.UserID != "" && t.UserID != opt.UserID {
			continue
		}
		if opt.Kind != "" && t.Kind != opt.Kind {
			continue
		}
		if len(opt.IDs) > 0 && !slices.Contains(opt.IDs, t.ID) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}
