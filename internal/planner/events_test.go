package planner_test

import (
	"testing"
	"time"

	"chat-task-scheduler/internal/model"
	"chat-task-scheduler/internal/planner"
)

func TestParseEvents_RoundTrip(t *testing.T) {
	tasks := []model.Task{
		task("1", "Plan sprint", 120, model.PriorityNotUrgentImportant),
		task("2", "Review PRs", 60, model.PriorityUrgentNotImportant),
		task("3", "Team sync", 30, model.PriorityUrgentImportant),
	}
	slots := []planner.Slot{
		slot(t, at(0, 9, 0), at(0, 10, 0)),
		slot(t, at(1, 14, 0), at(1, 17, 0)),
	}

	for _, week := range []bool{false, true} {
		res := planner.Allocate(tasks, slots)
		if !week {
			// Today scope only covers a single day.
			res = planner.Allocate(tasks, slots[:1])
		}
		text := planner.Render(planner.RenderInput{
			Assignments: res.Assignments,
			Unassigned:  res.Unassigned,
			WeekScope:   week,
			Location:    testLoc,
		})

		events := planner.ParseEvents(text, at(0, 0, 0), testLoc)

		if len(events) != len(res.Assignments) {
			t.Fatalf("week=%v: got %d events, want %d", week, len(events), len(res.Assignments))
		}
		byTitle := make(map[string]planner.ProposedEvent, len(events))
		for _, e := range events {
			byTitle[e.Title] = e
		}
		for _, a := range res.Assignments {
			e, ok := byTitle[a.Task.Name]
			if !ok {
				t.Errorf("week=%v: no event for %q", week, a.Task.Name)
				continue
			}
			if !e.Start.Equal(a.Start) || !e.End().Equal(a.End) {
				t.Errorf("week=%v: %q at %s-%s, want %s-%s", week, a.Task.Name, e.Start, e.End(), a.Start, a.End)
			}
		}
	}
}

func TestParseEvents_YearRollover(t *testing.T) {
	base := time.Date(2026, 12, 30, 8, 0, 0, 0, testLoc)
	text := "📆 01/02 (T7)\n⏰ 09:00–10:00\n📌 ⚪ New year review (60 phút)"

	events := planner.ParseEvents(text, base, testLoc)

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	want := time.Date(2027, 1, 2, 9, 0, 0, 0, testLoc)
	if !events[0].Start.Equal(want) {
		t.Errorf("start = %s, want %s", events[0].Start, want)
	}
	if events[0].Title != "New year review" {
		t.Errorf("title = %q", events[0].Title)
	}
}

func TestParseEvents_MissingTitle(t *testing.T) {
	events := planner.ParseEvents("⏰ 09:00–10:00\n⏰ 10:00–09:00", at(0, 0, 0), testLoc)

	if len(events) != 1 {
		t.Fatalf("expected inverted range dropped, got %d events", len(events))
	}
	if events[0].Title != "Task" || events[0].DurationMinutes != 60 {
		t.Errorf("unexpected event %+v", events[0])
	}
}
