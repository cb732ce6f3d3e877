package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority is the Eisenhower quadrant of a task.
type Priority string

const (
	PriorityUrgentImportant    Priority = "urgent_important"
	PriorityNotUrgentImportant Priority = "not_urgent_important"
	PriorityUrgentNotImportant Priority = "urgent_not_important"
	PriorityNormal             Priority = "normal"
)

// TaskKind separates tasks to do now from investment tasks scheduled later.
type TaskKind string

const (
	TaskKindDaily  TaskKind = "daily"
	TaskKindFuture TaskKind = "future"
)

// DateLayout is the wire format of a due date.
const DateLayout = "2006-01-02"

var (
	ErrEmptyTaskName   = errors.New("task name is empty")
	ErrInvalidDuration = errors.New("task duration must be positive")
)

// Task is an immutable task record. The scheduler only reads it.
type Task struct {
	ID              string
	UserID          string
	Name            string
	DurationMinutes int
	Priority        Priority
	DueDate         *time.Time // date only, midnight UTC
	Kind            TaskKind
	CreatedAt       time.Time
}

// NewTaskInput carries the structured fields produced by the parsing step.
type NewTaskInput struct {
	UserID          string
	Name            string
	DurationMinutes int
	Priority        string
	DueDate         string // YYYY-MM-DD, optional
	Kind            TaskKind
}

// NewTask validates the input and builds a Task with a fresh ID.
func NewTask(in NewTaskInput) (Task, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Task{}, ErrEmptyTaskName
	}
	if in.DurationMinutes <= 0 {
		return Task{}, ErrInvalidDuration
	}

	kind := in.Kind
	if kind != TaskKindFuture {
		kind = TaskKindDaily
	}

	t := Task{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		Name:            name,
		DurationMinutes: in.DurationMinutes,
		Priority:        ParsePriority(in.Priority),
		Kind:            kind,
		CreatedAt:       time.Now().UTC(),
	}

	if due := strings.TrimSpace(in.DueDate); due != "" {
		if d, err := time.Parse(DateLayout, due); err == nil {
			t.DueDate = &d
		}
	}

	return t, nil
}

// Duration returns the task length as a time.Duration.
func (t Task) Duration() time.Duration {
	return time.Duration(t.DurationMinutes) * time.Minute
}

// AsDaily returns a copy of the task converted to the daily kind.
func (t Task) AsDaily() Task {
	t.Kind = TaskKindDaily
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	return t
}

// DueDateString returns the due date as YYYY-MM-DD, or "" when unset.
func (t Task) DueDateString() string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.Format(DateLayout)
}

// ParsePriority maps loose priority spellings to a Priority. Unknown values are normal.
func ParsePriority(s string) Priority {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)

	switch key {
	case string(PriorityUrgentImportant), "p1", "1", "high", "critical":
		return PriorityUrgentImportant
	case string(PriorityNotUrgentImportant), "important", "p2", "2":
		return PriorityNotUrgentImportant
	case string(PriorityUrgentNotImportant), "urgent", "p3", "3":
		return PriorityUrgentNotImportant
	default:
		return PriorityNormal
	}
}
