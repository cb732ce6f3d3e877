package usecase

import (
	"context"
	"strings"
	"time"

	"chat-task-scheduler/internal/model"
	"chat-task-scheduler/internal/planner"
	"chat-task-scheduler/internal/schedule"
	"chat-task-scheduler/pkg/datemath"
)

// Propose runs the calendar, generator, validation and fallback steps in order.
func (uc *implUseCase) Propose(ctx context.Context, sc model.Scope, input schedule.ProposeInput) (schedule.ProposeOutput, error) {
	tasks := input.Tasks
	if len(tasks) == 0 && len(input.TaskIDs) > 0 {
		var err error
		tasks, err = uc.tasks.Get(ctx, sc, input.TaskIDs)
		if err != nil {
			return schedule.ProposeOutput{}, err
		}
	}
	if len(tasks) == 0 {
		return schedule.ProposeOutput{Text: schedule.NoTasksMessage, Source: schedule.SourceNone}, nil
	}

	loc := uc.dateMath.Location()
	base := uc.baseDate(input)
	n := 1
	if input.WeekScope {
		n = datemath.DaysPerWeek
	}
	days := uc.dateMath.Days(base, n)
	slots := uc.freeSlots(ctx, days)

	uc.l.Infof(ctx, "Propose: user=%s tasks=%d slots=%d week=%t base=%s",
		sc.UserID, len(tasks), len(slots), input.WeekScope, base.Format(model.DateLayout))

	out, ok := uc.generate(ctx, tasks, slots, days, input.WeekScope)
	if !ok {
		reasons := out.FallbackReasons
		result := planner.Allocate(tasks, slots)
		out = schedule.ProposeOutput{
			Text: uc.formatter.Render(planner.RenderInput{
				Assignments: result.Assignments,
				Unassigned:  result.Unassigned,
				WeekScope:   input.WeekScope,
				Location:    loc,
			}),
			Source:          schedule.SourceDeterministic,
			Unassigned:      result.Unassigned,
			FallbackReasons: reasons,
		}
		uc.recorder.ObserveFallback(reasons...)
		uc.l.Infof(ctx, "Propose: deterministic fallback reasons=%v unassigned=%d", reasons, len(result.Unassigned))
	}

	uc.recorder.ObserveProposal(out.Source, input.WeekScope, len(out.Unassigned))
	uc.savePending(sc, out.Text, tasks, base)
	return out, nil
}

// generate returns the normalised generative proposal and true when it passes
// validation. On false, FallbackReasons explains why.
func (uc *implUseCase) generate(ctx context.Context, tasks []model.Task, slots []planner.Slot, days []time.Time, weekScope bool) (schedule.ProposeOutput, bool) {
	if uc.generator == nil {
		return schedule.ProposeOutput{FallbackReasons: []string{schedule.ReasonGeneratorUnavailable}}, false
	}

	raw, err := uc.generator.Generate(ctx, schedule.GenerateInput{
		Tasks:     tasks,
		Slots:     slots,
		WeekScope: weekScope,
		WeekLabel: schedule.WeekLabel(days, weekScope),
		Location:  uc.dateMath.Location(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "Propose: generator failed: %v", err)
		return schedule.ProposeOutput{FallbackReasons: []string{schedule.ReasonGeneratorError}}, false
	}

	text := uc.formatter.Normalize(raw, planner.NormalizeInput{Tasks: tasks, WeekScope: weekScope, BaseDate: days[0]})
	if violations := planner.ValidateScope(text, tasks, weekScope); len(violations) > 0 {
		reasons := make([]string, len(violations))
		for i, v := range violations {
			reasons[i] = string(v)
		}
		uc.l.Warnf(ctx, "Propose: generative proposal rejected: %v", reasons)
		return schedule.ProposeOutput{FallbackReasons: reasons}, false
	}

	return schedule.ProposeOutput{
		Text:       text,
		Source:     schedule.SourceGenerative,
		Unassigned: unscheduled(text, tasks, days[0], uc.dateMath.Location()),
	}, true
}

// freeSlots asks the calendar for free time and falls back to the default window.
func (uc *implUseCase) freeSlots(ctx context.Context, days []time.Time) []planner.Slot {
	loc := uc.dateMath.Location()
	reason := ""

	if uc.calendar == nil {
		reason = schedule.CalendarReasonUnavailable
	} else {
		slots, err := uc.calendar.FreeSlots(ctx, days)
		if err != nil {
			uc.l.Warnf(ctx, "Propose: calendar free slots failed, using default window: %v", err)
			reason = schedule.CalendarReasonError
		} else if usable := planner.NormalizeSlots(slots, loc, uc.cfg.MinSlotMinutes); len(usable) > 0 {
			return usable
		} else {
			// Nothing left once slots shorter than the minimum are dropped.
			reason = schedule.CalendarReasonEmpty
		}
	}

	uc.recorder.ObserveCalendarFallback(reason)
	return planner.NormalizeSlots(planner.DefaultSlots(days, loc, uc.cfg.DefaultStart, uc.cfg.DefaultEnd), loc, uc.cfg.MinSlotMinutes)
}

// baseDate is the first day of the proposal.
func (uc *implUseCase) baseDate(input schedule.ProposeInput) time.Time {
	if !input.BaseDate.IsZero() {
		return uc.dateMath.StartOfDay(input.BaseDate)
	}
	now := uc.now()
	if input.WeekScope {
		return uc.dateMath.NextWeekStart(now)
	}
	return uc.dateMath.StartOfDay(now)
}

func (uc *implUseCase) savePending(sc model.Scope, text string, tasks []model.Task, base time.Time) {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	ttl := uc.cfg.ProposalTTL
	uc.sessions.Set(sc.ChatID, keyProposal, text, ttl)
	uc.sessions.Set(sc.ChatID, keyTaskIDs, strings.Join(ids, ","), ttl)
	uc.sessions.Set(sc.ChatID, keyBaseDate, base.Format(model.DateLayout), ttl)
}

// unscheduled lists tasks that no time block of text carries.
func unscheduled(text string, tasks []model.Task, base time.Time, loc *time.Location) []model.Task {
	placed := make(map[string]bool)
	for _, ev := range planner.ParseEvents(text, base, loc) {
		placed[nameKey(ev.Title)] = true
	}
	var out []model.Task
	for _, t := range tasks {
		if !placed[nameKey(t.Name)] {
			out = append(out, t)
		}
	}
	return out
}

func nameKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
