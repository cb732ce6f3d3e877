package planner_test

import (
	"reflect"
	"testing"

	"chat-task-scheduler/internal/model"
	"chat-task-scheduler/internal/planner"
)

func TestAllocate_InputOrderScenario(t *testing.T) {
	tasks := []model.Task{
		task("1", "Team sync", 30, model.PriorityUrgentImportant),
		task("2", "Draft report", 60, model.PriorityNormal),
	}
	slots := []planner.Slot{slot(t, at(0, 9, 0), at(0, 12, 0))}

	res := planner.Allocate(tasks, slots)

	if len(res.Unassigned) != 0 {
		t.Fatalf("expected no unassigned tasks, got %d", len(res.Unassigned))
	}
	if len(res.Assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(res.Assignments))
	}

	want := []struct {
		name       string
		start, end string
	}{
		{"Team sync", "09:00", "09:30"},
		{"Draft report", "09:30", "10:30"},
	}
	for i, w := range want {
		a := res.Assignments[i]
		if a.Task.Name != w.name || a.Start.Format("15:04") != w.start || a.End.Format("15:04") != w.end {
			t.Errorf("assignment %d = %s %s-%s, want %s %s-%s",
				i, a.Task.Name, a.Start.Format("15:04"), a.End.Format("15:04"), w.name, w.start, w.end)
		}
	}
}

func TestAllocate_FirstFit(t *testing.T) {
	tasks := []model.Task{task("1", "Deep work", 90, model.PriorityNormal)}
	slots := []planner.Slot{
		slot(t, at(0, 9, 0), at(0, 10, 0)),
		slot(t, at(0, 11, 0), at(0, 13, 0)),
	}

	res := planner.Allocate(tasks, slots)

	if len(res.Assignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(res.Assignments))
	}
	if got := res.Assignments[0].Start; !got.Equal(at(0, 11, 0)) {
		t.Errorf("expected start 11:00, got %s", got.Format("15:04"))
	}
	if got := res.Assignments[0].End; !got.Equal(at(0, 12, 30)) {
		t.Errorf("expected end 12:30, got %s", got.Format("15:04"))
	}
}

func TestAllocate_LaterTaskBackfillsEarlierSlot(t *testing.T) {
	tasks := []model.Task{
		task("1", "Deep work", 90, model.PriorityNormal),
		task("2", "Email", 30, model.PriorityNormal),
	}
	slots := []planner.Slot{
		slot(t, at(0, 9, 0), at(0, 10, 0)),
		slot(t, at(0, 11, 0), at(0, 13, 0)),
	}

	res := planner.Allocate(tasks, slots)

	if len(res.Assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(res.Assignments))
	}
	if !res.Assignments[1].Start.Equal(at(0, 9, 0)) {
		t.Errorf("expected Email at 09:00, got %s", res.Assignments[1].Start.Format("15:04"))
	}
}

func TestAllocate_AllUnassigned(t *testing.T) {
	tk := task("1", "Write proposal", 60, model.PriorityNormal)
	slots := []planner.Slot{slot(t, at(0, 10, 0), at(0, 10, 10))}

	res := planner.Allocate([]model.Task{tk}, slots)

	if len(res.Assignments) != 0 {
		t.Fatalf("expected no assignments, got %d", len(res.Assignments))
	}
	if len(res.Unassigned) != 1 || res.Unassigned[0].ID != tk.ID {
		t.Fatalf("expected the task to be unassigned, got %+v", res.Unassigned)
	}
}

func TestAllocate_IgnoresShortSlots(t *testing.T) {
	tasks := []model.Task{task("1", "Quick call", 10, model.PriorityNormal)}
	slots := []planner.Slot{
		slot(t, at(0, 9, 0), at(0, 9, 10)),
		slot(t, at(0, 11, 0), at(0, 11, 30)),
	}

	res := planner.Allocate(tasks, slots)

	if len(res.Assignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(res.Assignments))
	}
	if got := res.Assignments[0].Start; !got.Equal(at(0, 11, 0)) {
		t.Errorf("expected the 10-minute slot to be skipped, got start %s", got.Format("15:04"))
	}
}

func TestAllocate_EmptySlots(t *testing.T) {
	tasks := []model.Task{
		task("1", "A", 30, model.PriorityNormal),
		task("2", "B", 45, model.PriorityNormal),
	}

	res := planner.Allocate(tasks, nil)

	if len(res.Assignments) != 0 || len(res.Unassigned) != 2 {
		t.Fatalf("expected everything unassigned, got %d assigned / %d unassigned",
			len(res.Assignments), len(res.Unassigned))
	}
}

func TestAllocate_NonPositiveDurationSkipped(t *testing.T) {
	tasks := []model.Task{
		task("1", "Broken", 0, model.PriorityNormal),
		task("2", "Negative", -10, model.PriorityNormal),
		task("3", "Fine", 15, model.PriorityNormal),
	}
	slots := []planner.Slot{slot(t, at(0, 9, 0), at(0, 17, 0))}

	res := planner.Allocate(tasks, slots)

	if len(res.Assignments) != 1 || res.Assignments[0].Task.ID != "3" {
		t.Fatalf("expected only task 3 to be assigned, got %+v", res.Assignments)
	}
	if len(res.Unassigned) != 2 {
		t.Fatalf("expected 2 unassigned, got %d", len(res.Unassigned))
	}
}

func TestAllocate_DoesNotMutateSlots(t *testing.T) {
	slots := []planner.Slot{slot(t, at(0, 9, 0), at(0, 12, 0))}
	before := slots[0]

	planner.Allocate([]model.Task{task("1", "A", 60, model.PriorityNormal)}, slots)

	if slots[0] != before {
		t.Errorf("input slot changed: %+v -> %+v", before, slots[0])
	}
}

func TestAllocate_Properties(t *testing.T) {
	tasks := []model.Task{
		task("1", "A", 45, model.PriorityNormal),
		task("2", "B", 120, model.PriorityUrgentImportant),
		task("3", "C", 30, model.PriorityNotUrgentImportant),
		task("4", "D", 240, model.PriorityNormal),
		task("5", "E", 15, model.PriorityUrgentNotImportant),
		task("6", "F", 60, model.PriorityNormal),
		task("7", "G", 0, model.PriorityNormal),
		task("8", "H", 500, model.PriorityNormal),
	}
	slots := []planner.Slot{
		slot(t, at(0, 9, 0), at(0, 10, 0)),
		slot(t, at(0, 10, 30), at(0, 12, 0)),
		slot(t, at(0, 13, 0), at(0, 17, 0)),
		slot(t, at(1, 9, 0), at(1, 11, 0)),
	}

	res := planner.Allocate(tasks, slots)

	t.Run("partition", func(t *testing.T) {
		seen := make(map[string]int)
		for _, a := range res.Assignments {
			seen[a.Task.ID]++
		}
		for _, u := range res.Unassigned {
			seen[u.ID]++
		}
		if len(seen) != len(tasks) {
			t.Fatalf("expected %d distinct tasks, got %d", len(tasks), len(seen))
		}
		for id, n := range seen {
			if n != 1 {
				t.Errorf("task %s appears %d times", id, n)
			}
		}
	})

	t.Run("no overlap", func(t *testing.T) {
		for i := range res.Assignments {
			for j := i + 1; j < len(res.Assignments); j++ {
				a, b := res.Assignments[i], res.Assignments[j]
				if a.Start.Before(b.End) && b.Start.Before(a.End) {
					t.Errorf("%s [%s-%s) overlaps %s [%s-%s)", a.Task.Name, a.Start, a.End, b.Task.Name, b.Start, b.End)
				}
			}
		}
	})

	t.Run("containment", func(t *testing.T) {
		for _, a := range res.Assignments {
			contained := false
			for _, s := range slots {
				if s.Covers(a.Start, a.End) {
					contained = true
					break
				}
			}
			if !contained {
				t.Errorf("%s [%s-%s) is outside every input slot", a.Task.Name, a.Start, a.End)
			}
			if got := int(a.End.Sub(a.Start).Minutes()); got != a.Task.DurationMinutes {
				t.Errorf("%s assigned %d minutes, want %d", a.Task.Name, got, a.Task.DurationMinutes)
			}
		}
	})

	t.Run("determinism", func(t *testing.T) {
		again := planner.Allocate(tasks, slots)
		if !reflect.DeepEqual(res, again) {
			t.Error("Allocate returned different results for identical input")
		}
	})
}
