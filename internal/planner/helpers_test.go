package planner_test

import (
	"testing"
	"time"

	"chat-task-scheduler/internal/model"
	"chat-task-scheduler/internal/planner"
)

var testLoc = time.FixedZone("ICT", 7*60*60)

// at returns 2026-10-19 (a Monday) at hh:mm in testLoc, shifted by dayOffset days.
func at(dayOffset, hh, mm int) time.Time {
	return time.Date(2026, 10, 19+dayOffset, hh, mm, 0, 0, testLoc)
}

func slot(t *testing.T, start, end time.Time) planner.Slot {
	t.Helper()
	s, err := planner.NewSlot(start, end)
	if err != nil {
		t.Fatalf("NewSlot: %v", err)
	}
	return s
}

func task(id, name string, minutes int, p model.Priority) model.Task {
	return model.Task{ID: id, Name: name, DurationMinutes: minutes, Priority: p, Kind: model.TaskKindDaily}
}
