package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"chat-task-scheduler/internal/schedule"
)

func TestApprove(t *testing.T) {
	f := newFixture(t, &mockCalendar{}, nil)
	if _, err := f.uc.Propose(context.Background(), sc, schedule.ProposeInput{TaskIDs: []string{"t1", "t2"}}); err != nil {
		t.Fatal(err)
	}

	out, err := f.uc.Approve(context.Background(), sc)
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	if len(out.Events) != 2 || len(out.Failed) != 0 {
		t.Fatalf("events = %d failed = %d", len(out.Events), len(out.Failed))
	}

	first := out.Events[0]
	if first.Title != "Team sync" || !first.Start.Equal(f.at(0, 9, 0)) || first.DurationMinutes != 30 {
		t.Errorf("first event = %+v", first.ProposedEvent)
	}
	second := out.Events[1]
	if second.Title != "Draft report" || !second.Start.Equal(f.at(0, 9, 30)) || second.DurationMinutes != 60 {
		t.Errorf("second event = %+v", second.ProposedEvent)
	}
	if first.Link == "" {
		t.Error("expected event link")
	}

	if len(out.Promoted) != 1 || out.Promoted[0].ID != draftReport.ID {
		t.Errorf("promoted = %+v", out.Promoted)
	}

	if _, err := f.uc.Approve(context.Background(), sc); !errors.Is(err, schedule.ErrNoPendingProposal) {
		t.Errorf("second Approve() error = %v, want ErrNoPendingProposal", err)
	}
}

func TestApprovePartialFailure(t *testing.T) {
	f := newFixture(t, &mockCalendar{failOn: "Draft report"}, nil)
	if _, err := f.uc.Propose(context.Background(), sc, schedule.ProposeInput{TaskIDs: []string{"t1", "t2"}}); err != nil {
		t.Fatal(err)
	}

	out, err := f.uc.Approve(context.Background(), sc)
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	if len(out.Events) != 1 || len(out.Failed) != 1 {
		t.Errorf("events = %d failed = %d", len(out.Events), len(out.Failed))
	}
	if len(f.tasks.promoted) != 0 {
		t.Errorf("a task without an event must not be promoted: %v", f.tasks.promoted)
	}
}

func TestApproveWithoutProposal(t *testing.T) {
	f := newFixture(t, &mockCalendar{}, nil)
	if _, err := f.uc.Approve(context.Background(), sc); !errors.Is(err, schedule.ErrNoPendingProposal) {
		t.Errorf("Approve() error = %v, want ErrNoPendingProposal", err)
	}
}

func TestApproveWithoutCalendar(t *testing.T) {
	f := newFixture(t, nil, nil)
	if _, err := f.uc.Propose(context.Background(), sc, schedule.ProposeInput{TaskIDs: []string{"t1"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.uc.Approve(context.Background(), sc); !errors.Is(err, schedule.ErrCalendarUnavailable) {
		t.Errorf("Approve() error = %v, want ErrCalendarUnavailable", err)
	}
}

func TestCancel(t *testing.T) {
	f := newFixture(t, &mockCalendar{}, nil)
	if _, err := f.uc.Propose(context.Background(), sc, schedule.ProposeInput{TaskIDs: []string{"t1"}}); err != nil {
		t.Fatal(err)
	}
	if err := f.uc.Cancel(context.Background(), sc); err != nil {
		t.Fatal(err)
	}
	if _, err := f.uc.Approve(context.Background(), sc); !errors.Is(err, schedule.ErrNoPendingProposal) {
		t.Errorf("Approve() after Cancel error = %v", err)
	}
	if f.calendar.addCalls != 0 {
		t.Error("cancelled proposal must not reach the calendar")
	}
}

func TestApproveWeekProposalKeepsGeneratedDays(t *testing.T) {
	f := newFixture(t, &mockCalendar{}, &mockGenerator{})
	f.gen.text = `📅 Lịch tuần tới
📅 10/27 (T3)
⏰ 09:00-09:30
📌 Team sync (30 phút)
📅 10/28 (T4)
⏰ 09:00-10:00
📌 Draft report (60 phút)`

	out, err := f.uc.Propose(context.Background(), sc, schedule.ProposeInput{TaskIDs: []string{"t1", "t2"}, WeekScope: true})
	if err != nil {
		t.Fatalf("Propose() error = %v", err)
	}
	if out.Source != schedule.SourceGenerative {
		t.Fatalf("source = %s reasons = %v\n%s", out.Source, out.FallbackReasons, out.Text)
	}

	approved, err := f.uc.Approve(context.Background(), sc)
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	if len(approved.Events) != 2 {
		t.Fatalf("events = %d, want 2", len(approved.Events))
	}

	tests := []struct {
		title string
		start time.Time
	}{
		{"Team sync", f.at(8, 9, 0)},
		{"Draft report", f.at(9, 9, 0)},
	}
	for i, tt := range tests {
		got := approved.Events[i]
		if got.Title != tt.title || !got.Start.Equal(tt.start) {
			t.Errorf("event %d = %s at %v, want %s at %v", i, got.Title, got.Start, tt.title, tt.start)
		}
	}
}
