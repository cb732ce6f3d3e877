package planner

import (
	"time"

	"chat-task-scheduler/internal/model"
)

// Assignment binds a task to a concrete interval.
type Assignment struct {
	Task  model.Task
	Start time.Time
	End   time.Time
}

// Result is the outcome of one allocation pass. Assignments and Unassigned together
// hold every input task exactly once.
type Result struct {
	Assignments []Assignment
	Unassigned  []model.Task
}

// Allocate places tasks first-fit, in input order, into slots that must already be
// sorted by start time. Each task goes to the first slot with enough room left and
// that slot's start moves forward by the task's duration. Tasks are never split.
// Tasks with a non-positive duration, or that fit nowhere, end up in Unassigned.
// Slots shorter than DefaultMinSlotMinutes are ignored.
//
// Slots are copied; the caller's slice is left untouched.
func Allocate(tasks []model.Task, slots []Slot) Result {
	remaining := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.Minutes() >= DefaultMinSlotMinutes {
			remaining = append(remaining, s)
		}
	}

	res := Result{
		Assignments: make([]Assignment, 0, len(tasks)),
		Unassigned:  make([]model.Task, 0),
	}

	for _, t := range tasks {
		if t.DurationMinutes <= 0 {
			res.Unassigned = append(res.Unassigned, t)
			continue
		}

		need := t.Duration()
		placed := false
		for i := range remaining {
			if remaining[i].End.Sub(remaining[i].Start) < need {
				continue
			}
			start := remaining[i].Start
			end := start.Add(need)
			res.Assignments = append(res.Assignments, Assignment{Task: t, Start: start, End: end})
			remaining[i].Start = end
			placed = true
			break
		}

		if !placed {
			res.Unassigned = append(res.Unassigned, t)
		}
	}

	return res
}
