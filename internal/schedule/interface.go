package schedule

import (
	"context"
	"time"

	"chat-task-scheduler/internal/model"
	"chat-task-scheduler/internal/planner"
)

// UseCase proposes schedules and turns approved proposals into calendar events.
type UseCase interface {
	// Propose places the selected tasks into free time and stores the result as the
	// user's pending proposal.
	Propose(ctx context.Context, sc model.Scope, input ProposeInput) (ProposeOutput, error)

	// Approve writes the pending proposal to the calendar and clears it.
	Approve(ctx context.Context, sc model.Scope) (ApproveOutput, error)

	// Cancel drops the pending proposal.
	Cancel(ctx context.Context, sc model.Scope) error
}

// Calendar supplies free time and receives approved events.
type Calendar interface {
	// FreeSlots returns free intervals inside working hours for each day.
	FreeSlots(ctx context.Context, days []time.Time) ([]planner.Slot, error)
	// AddEvent creates one event and returns its link.
	AddEvent(ctx context.Context, ev planner.ProposedEvent) (string, error)
}

// Generator drafts a proposal in free text.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) (string, error)
}

// TaskReader is the part of the task domain the scheduler needs.
type TaskReader interface {
	Get(ctx context.Context, sc model.Scope, ids []string) ([]model.Task, error)
	Promote(ctx context.Context, sc model.Scope, ids []string) ([]model.Task, error)
}

// Recorder receives scheduling metrics.
type Recorder interface {
	ObserveProposal(source string, weekScope bool, unassigned int)
	ObserveFallback(reasons ...string)
	ObserveCalendarFallback(reason string)
}
