package usecase

import (
	"time"

	"chat-task-scheduler/internal/planner"
	"chat-task-scheduler/internal/schedule"
	"chat-task-scheduler/internal/session"
	"chat-task-scheduler/pkg/datemath"
	pkgLog "chat-task-scheduler/pkg/log"
)

// Session keys holding the pending proposal.
const (
	keyProposal = "pending_proposal"
	keyTaskIDs  = "pending_task_ids"
	keyBaseDate = "pending_base_date"
)

// Config holds the scheduling knobs that come from configuration.
type Config struct {
	DefaultStart   planner.Clock
	DefaultEnd     planner.Clock
	MinSlotMinutes int
	ProposalTTL    time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	tasks     schedule.TaskReader
	calendar  schedule.Calendar
	generator schedule.Generator
	formatter planner.Formatter
	sessions  session.Store
	dateMath  *datemath.Parser
	recorder  schedule.Recorder
	cfg       Config
	now       func() time.Time
}

// New creates the schedule UseCase. calendar, generator and recorder may be nil:
// a nil calendar means default working windows, a nil generator means every
// proposal is built deterministically.
func New(
	l pkgLog.Logger,
	tasks schedule.TaskReader,
	calendar schedule.Calendar,
	generator schedule.Generator,
	sessions session.Store,
	dateMath *datemath.Parser,
	recorder schedule.Recorder,
	cfg Config,
) schedule.UseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &implUseCase{
		l:         l,
		tasks:     tasks,
		calendar:  calendar,
		generator: generator,
		formatter: planner.NewFormatter(),
		sessions:  sessions,
		dateMath:  dateMath,
		recorder:  recorder,
		cfg:       cfg,
		now:       time.Now,
	}
}

type nopRecorder struct{}

func (nopRecorder) ObserveProposal(string, bool, int) {}
func (nopRecorder) ObserveFallback(...string)         {}
func (nopRecorder) ObserveCalendarFallback(string)    {}
