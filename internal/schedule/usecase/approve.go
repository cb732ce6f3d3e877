package usecase

import (
	"context"
	"strings"
	"time"

	"chat-task-scheduler/internal/model"
	"chat-task-scheduler/internal/planner"
	"chat-task-scheduler/internal/schedule"
)

// Approve writes every block of the pending proposal to the calendar, promotes the
// future tasks that got a block, and clears the pending state.
func (uc *implUseCase) Approve(ctx context.Context, sc model.Scope) (schedule.ApproveOutput, error) {
	text, ok := uc.sessions.Get(sc.ChatID, keyProposal)
	if !ok {
		return schedule.ApproveOutput{}, schedule.ErrNoPendingProposal
	}
	if uc.calendar == nil {
		return schedule.ApproveOutput{}, schedule.ErrCalendarUnavailable
	}

	loc := uc.dateMath.Location()
	base := uc.dateMath.StartOfDay(uc.now())
	if raw, ok := uc.sessions.Get(sc.ChatID, keyBaseDate); ok {
		if d, err := time.ParseInLocation(model.DateLayout, raw, loc); err == nil {
			base = d
		}
	}

	events := planner.ParseEvents(text, base, loc)
	if len(events) == 0 {
		uc.clearPending(sc)
		return schedule.ApproveOutput{}, schedule.ErrEmptyProposal
	}

	var out schedule.ApproveOutput
	placed := make(map[string]bool, len(events))
	for _, ev := range events {
		link, err := uc.calendar.AddEvent(ctx, ev)
		if err != nil {
			uc.l.Warnf(ctx, "Approve: add event %q failed: %v", ev.Title, err)
			out.Failed = append(out.Failed, ev)
			continue
		}
		out.Events = append(out.Events, schedule.ApprovedEvent{ProposedEvent: ev, Link: link})
		placed[nameKey(ev.Title)] = true
	}

	promoted, err := uc.promoteScheduled(ctx, sc, placed)
	if err != nil {
		uc.l.Warnf(ctx, "Approve: promote tasks failed: %v", err)
	}
	out.Promoted = promoted

	uc.clearPending(sc)
	uc.l.Infof(ctx, "Approve: user=%s created=%d failed=%d promoted=%d",
		sc.UserID, len(out.Events), len(out.Failed), len(out.Promoted))
	return out, nil
}

// Cancel drops the pending proposal. Cancelling with nothing pending is not an error.
func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope) error {
	uc.clearPending(sc)
	uc.l.Infof(ctx, "Cancel: user=%s", sc.UserID)
	return nil
}

func (uc *implUseCase) promoteScheduled(ctx context.Context, sc model.Scope, placed map[string]bool) ([]model.Task, error) {
	raw, ok := uc.sessions.Get(sc.ChatID, keyTaskIDs)
	if !ok || raw == "" || len(placed) == 0 {
		return nil, nil
	}

	tasks, err := uc.tasks.Get(ctx, sc, strings.Split(raw, ","))
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, t := range tasks {
		if t.Kind == model.TaskKindFuture && placed[nameKey(t.Name)] {
			ids = append(ids, t.ID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return uc.tasks.Promote(ctx, sc, ids)
}

func (uc *implUseCase) clearPending(sc model.Scope) {
	uc.sessions.Delete(sc.ChatID, keyProposal, keyTaskIDs, keyBaseDate)
}
