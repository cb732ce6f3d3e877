package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"chat-task-scheduler/internal/model"
	"chat-task-scheduler/internal/planner"
	"chat-task-scheduler/internal/schedule"
	"chat-task-scheduler/internal/session"
	"chat-task-scheduler/pkg/datemath"
)

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

type mockCalendar struct {
	slots    []planner.Slot
	err      error
	days     []time.Time
	added    []planner.ProposedEvent
	failOn   string
	addCalls int
}

func (m *mockCalendar) FreeSlots(ctx context.Context, days []time.Time) ([]planner.Slot, error) {
	m.days = days
	return m.slots, m.err
}

func (m *mockCalendar) AddEvent(ctx context.Context, ev planner.ProposedEvent) (string, error) {
	m.addCalls++
	if ev.Title == m.failOn {
		return "", errors.New("calendar write failed")
	}
	m.added = append(m.added, ev)
	return "https://calendar.google.com/event?eid=" + ev.Title, nil
}

type mockGenerator struct {
	text  string
	err   error
	calls int
	input schedule.GenerateInput
}

func (m *mockGenerator) Generate(ctx context.Context, in schedule.GenerateInput) (string, error) {
	m.calls++
	m.input = in
	return m.text, m.err
}

type mockTasks struct {
	tasks    map[string]model.Task
	promoted []string
}

func (m *mockTasks) Get(ctx context.Context, sc model.Scope, ids []string) ([]model.Task, error) {
	var out []model.Task
	for _, id := range ids {
		if t, ok := m.tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTasks) Promote(ctx context.Context, sc model.Scope, ids []string) ([]model.Task, error) {
	m.promoted = append(m.promoted, ids...)
	var out []model.Task
	for _, id := range ids {
		out = append(out, m.tasks[id].AsDaily())
	}
	return out, nil
}

type mockRecorder struct {
	proposals         []string
	fallbackReasons   []string
	calendarFallbacks []string
}

func (m *mockRecorder) ObserveProposal(source string, weekScope bool, unassigned int) {
	m.proposals = append(m.proposals, source)
}
func (m *mockRecorder) ObserveFallback(reasons ...string) {
	m.fallbackReasons = append(m.fallbackReasons, reasons...)
}
func (m *mockRecorder) ObserveCalendarFallback(reason string) {
	m.calendarFallbacks = append(m.calendarFallbacks, reason)
}

var (
	sc = model.Scope{UserID: "42", ChatID: 42}

	teamSync    = model.Task{ID: "t1", UserID: "42", Name: "Team sync", DurationMinutes: 30, Priority: model.PriorityNormal, Kind: model.TaskKindDaily}
	draftReport = model.Task{ID: "t2", UserID: "42", Name: "Draft report", DurationMinutes: 60, Priority: model.PriorityNormal, Kind: model.TaskKindFuture}
)

type fixture struct {
	uc       *implUseCase
	calendar *mockCalendar
	gen      *mockGenerator
	tasks    *mockTasks
	recorder *mockRecorder
	sessions session.Store
	loc      *time.Location
}

// newFixture builds a use case whose clock reads Monday 2026-10-19 08:00 ICT.
func newFixture(t *testing.T, cal *mockCalendar, gen *mockGenerator) *fixture {
	t.Helper()
	dm, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatal(err)
	}
	f := &fixture{
		calendar: cal,
		gen:      gen,
		tasks:    &mockTasks{tasks: map[string]model.Task{teamSync.ID: teamSync, draftReport.ID: draftReport}},
		recorder: &mockRecorder{},
		sessions: session.New(10),
		loc:      dm.Location(),
	}

	var calendar schedule.Calendar
	if cal != nil {
		calendar = cal
	}
	var generator schedule.Generator
	if gen != nil {
		generator = gen
	}

	f.uc = New(&mockLogger{}, f.tasks, calendar, generator, f.sessions, dm, f.recorder, Config{
		DefaultStart:   planner.Clock{Hour: 9},
		DefaultEnd:     planner.Clock{Hour: 17},
		MinSlotMinutes: 15,
		ProposalTTL:    time.Hour,
	}).(*implUseCase)
	f.uc.now = func() time.Time { return time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC) }
	return f
}

func (f *fixture) at(day, hh, mm int) time.Time {
	return time.Date(2026, 10, 19+day, hh, mm, 0, 0, f.loc)
}
