package postgre

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"chat-task-scheduler/internal/model"
	repo "chat-task-scheduler/internal/task/repository"
)

const taskColumns = `id, user_id, name, duration_minutes, priority, due_date, kind, created_at`

// SaveTask upserts a task row keyed by ID.
func (r *implRepository) SaveTask(ctx context.Context, t model.Task) error {
	const query = `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			duration_minutes = EXCLUDED.duration_minutes,
			priority = EXCLUDED.priority,
			due_date = EXCLUDED.due_date,
			kind = EXCLUDED.kind`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.UserID, t.Name, t.DurationMinutes, string(t.Priority), t.DueDate, string(t.Kind), t.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveTask"), err)
		return repo.ErrFailedToSave
	}
	return nil
}

// GetTask returns a single task owned by userID.
func (r *implRepository) GetTask(ctx context.Context, userID, id string) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 AND id = $2`

	t, err := scanTask(r.pool.QueryRow(ctx, query, userID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns tasks matching opt, oldest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// DeleteTask removes a task owned by userID.
func (r *implRepository) DeleteTask(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM tasks WHERE user_id = $1 AND id = $2`

	tag, err := r.pool.Exec(ctx, query, userID, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (model.Task, error) {
	var (
		t        model.Task
		priority string
		kind     string
		due      *time.Time
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.DurationMinutes, &priority, &due, &kind, &t.CreatedAt); err != nil {
		return model.Task{}, err
	}
	t.Priority = model.ParsePriority(priority)
	t.Kind = model.TaskKind(kind)
	if due != nil {
		d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
		t.DueDate = &d
	}
	return t, nil
}
