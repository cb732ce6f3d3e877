package usecase

import (
	"context"
	"testing"
	"time"

	"chat-task-scheduler/internal/task/repository"
	"chat-task-scheduler/internal/task/repository/memory"
	"chat-task-scheduler/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockGenerator returns a canned LLM answer and records the prompt.
type mockGenerator struct {
	text       string
	err        error
	lastPrompt string
	jsonMode   bool
}

func (m *mockGenerator) GenerateText(ctx context.Context, system, prompt string, jsonMode bool) (string, error) {
	m.lastPrompt = prompt
	m.jsonMode = jsonMode
	return m.text, m.err
}

// fixedNow is Monday 2026-10-19 09:00 in Asia/Ho_Chi_Minh.
func fixedNow() time.Time {
	return time.Date(2026, 10, 19, 2, 0, 0, 0, time.UTC)
}

func newTestUseCase(t *testing.T, gen *mockGenerator) (*implUseCase, repository.Repository) {
	t.Helper()
	dm, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}
	repo := memory.New()
	uc := New(&mockLogger{}, gen, repo, dm).(*implUseCase)
	uc.now = fixedNow
	return uc, repo
}
