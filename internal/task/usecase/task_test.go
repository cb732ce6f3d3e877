package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"chat-task-scheduler/internal/model"
	"chat-task-scheduler/internal/task"
)

var sc = model.Scope{UserID: "42", Username: "tester", ChatID: 42}

func TestCreateFromText(t *testing.T) {
	t.Run("parses fenced array and resolves dates", func(t *testing.T) {
		gen := &mockGenerator{text: "Here you go:\n```json\n[" +
			`{"name": "Draft report", "duration_minutes": 60, "due_date": "tomorrow", "priority": "p1", "kind": "daily"},` +
			`{"name": "Học tiếng Nhật", "duration_minutes": 45, "due_date": "", "priority": "important", "kind": "future"}` +
			"]\n```"}
		uc, repo := newTestUseCase(t, gen)

		out, err := uc.CreateFromText(context.Background(), sc, task.CreateInput{RawText: "draft report tomorrow, learn japanese"})
		if err != nil {
			t.Fatalf("CreateFromText() error = %v", err)
		}
		if len(out.Tasks) != 2 || out.Skipped != 0 {
			t.Fatalf("got %d tasks, %d skipped", len(out.Tasks), out.Skipped)
		}
		if !gen.jsonMode {
			t.Error("expected JSON mode request")
		}
		if !strings.Contains(gen.lastPrompt, "TODAY: 2026-10-19") {
			t.Errorf("prompt missing today's date: %q", gen.lastPrompt)
		}

		first := out.Tasks[0]
		if first.DueDateString() != "2026-10-20" {
			t.Errorf("due date = %q, want 2026-10-20", first.DueDateString())
		}
		if first.Priority != model.PriorityUrgentImportant {
			t.Errorf("priority = %s", first.Priority)
		}
		second := out.Tasks[1]
		if second.Kind != model.TaskKindFuture || second.DueDate != nil {
			t.Errorf("second task = %+v", second)
		}
		if second.UserID != "42" {
			t.Errorf("user id = %q", second.UserID)
		}

		stored, _ := uc.List(context.Background(), sc, task.ListInput{})
		if len(stored) != 2 {
			t.Errorf("stored %d tasks, want 2", len(stored))
		}
		_ = repo
	})

	t.Run("single object answer", func(t *testing.T) {
		gen := &mockGenerator{text: `{"name": "Team sync", "duration_minutes": 30}`}
		uc, _ := newTestUseCase(t, gen)

		out, err := uc.CreateFromText(context.Background(), sc, task.CreateInput{RawText: "team sync 30m"})
		if err != nil {
			t.Fatalf("CreateFromText() error = %v", err)
		}
		if len(out.Tasks) != 1 || out.Tasks[0].Kind != model.TaskKindDaily {
			t.Errorf("unexpected output %+v", out)
		}
	})

	t.Run("invalid entries are skipped", func(t *testing.T) {
		gen := &mockGenerator{text: `[{"name": "", "duration_minutes": 30}, {"name": "Sync", "duration_minutes": 0}, {"name": "Read", "duration_minutes": 20}]`}
		uc, _ := newTestUseCase(t, gen)

		out, err := uc.CreateFromText(context.Background(), sc, task.CreateInput{RawText: "x"})
		if err != nil {
			t.Fatalf("CreateFromText() error = %v", err)
		}
		if len(out.Tasks) != 1 || out.Skipped != 2 {
			t.Errorf("got %d tasks, %d skipped", len(out.Tasks), out.Skipped)
		}
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name    string
			gen     *mockGenerator
			input   string
			wantErr error
		}{
			{name: "empty input", gen: &mockGenerator{}, input: "  ", wantErr: task.ErrEmptyInput},
			{name: "llm failure", gen: &mockGenerator{err: errors.New("boom")}, input: "x", wantErr: task.ErrParseFailed},
			{name: "not json", gen: &mockGenerator{text: "sorry, I cannot"}, input: "x", wantErr: task.ErrParseFailed},
			{name: "empty array", gen: &mockGenerator{text: "[]"}, input: "x", wantErr: task.ErrNoTasksParsed},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc, _ := newTestUseCase(t, tt.gen)
				_, err := uc.CreateFromText(context.Background(), sc, task.CreateInput{RawText: tt.input})
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
			})
		}
	})
}

func seed(t *testing.T, uc *implUseCase, tasks ...model.Task) {
	t.Helper()
	for _, tk := range tasks {
		if err := uc.repo.SaveTask(context.Background(), tk); err != nil {
			t.Fatal(err)
		}
	}
}

func TestGetKeepsRequestedOrder(t *testing.T) {
	uc, _ := newTestUseCase(t, &mockGenerator{})
	seed(t, uc,
		model.Task{ID: "a", UserID: "42", Name: "A", DurationMinutes: 10},
		model.Task{ID: "b", UserID: "42", Name: "B", DurationMinutes: 10},
		model.Task{ID: "c", UserID: "7", Name: "C", DurationMinutes: 10},
	)

	got, err := uc.Get(context.Background(), sc, []string{"b", "missing", "c", "a"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("Get() = %+v", got)
	}
}

func TestComplete(t *testing.T) {
	uc, _ := newTestUseCase(t, &mockGenerator{})
	seed(t, uc, model.Task{ID: "a", UserID: "42", Name: "A", DurationMinutes: 10})

	done, err := uc.Complete(context.Background(), sc, "a")
	if err != nil || done.Name != "A" {
		t.Fatalf("Complete() = %+v, %v", done, err)
	}
	if _, err := uc.Complete(context.Background(), sc, "a"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("second Complete() error = %v, want ErrTaskNotFound", err)
	}
}

func TestPromote(t *testing.T) {
	uc, _ := newTestUseCase(t, &mockGenerator{})
	seed(t, uc,
		model.Task{ID: "f", UserID: "42", Name: "Learn Go", DurationMinutes: 60, Kind: model.TaskKindFuture},
		model.Task{ID: "d", UserID: "42", Name: "Sync", DurationMinutes: 30, Kind: model.TaskKindDaily},
	)

	promoted, err := uc.Promote(context.Background(), sc, []string{"f", "d"})
	if err != nil {
		t.Fatal(err)
	}
	if len(promoted) != 1 || promoted[0].ID != "f" || promoted[0].Kind != model.TaskKindDaily {
		t.Errorf("Promote() = %+v", promoted)
	}

	future, _ := uc.List(context.Background(), sc, task.ListInput{Kind: model.TaskKindFuture})
	if len(future) != 0 {
		t.Errorf("expected no future tasks left, got %d", len(future))
	}
}
