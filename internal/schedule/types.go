package schedule

import (
	"time"

	"chat-task-scheduler/internal/model"
	"chat-task-scheduler/internal/planner"
)

// Proposal sources.
const (
	SourceGenerative    = "generative"
	SourceDeterministic = "deterministic"
	SourceNone          = "none"
)

// Reasons recorded when the generative draft is not used.
const (
	ReasonGeneratorError       = "generator_error"
	ReasonGeneratorUnavailable = "generator_unavailable"
)

// Calendar fallback reasons.
const (
	CalendarReasonError       = "error"
	CalendarReasonEmpty       = "empty"
	CalendarReasonUnavailable = "unavailable"
)

// ProposeInput selects the tasks to place. Tasks wins over TaskIDs when both are set.
// A zero BaseDate means today, or next Monday in week scope.
type ProposeInput struct {
	TaskIDs   []string
	Tasks     []model.Task
	WeekScope bool
	BaseDate  time.Time
}

// ProposeOutput is the proposal shown to the user.
type ProposeOutput struct {
	Text            string
	Source          string
	Unassigned      []model.Task
	FallbackReasons []string
}

// GenerateInput is what the generator sees.
type GenerateInput struct {
	Tasks     []model.Task
	Slots     []planner.Slot
	WeekScope bool
	WeekLabel string
	Location  *time.Location
}

// ApprovedEvent is a proposal block written to the calendar.
type ApprovedEvent struct {
	planner.ProposedEvent
	Link string
}

// ApproveOutput reports what Approve did.
type ApproveOutput struct {
	Events   []ApprovedEvent
	Failed   []planner.ProposedEvent
	Promoted []model.Task
}
