package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"chat-task-scheduler/internal/model"
	"chat-task-scheduler/internal/router"
	"chat-task-scheduler/internal/schedule"
	"chat-task-scheduler/internal/task"
	pkgTelegram "chat-task-scheduler/pkg/telegram"
)

// processMessage routes one message and replies. Failures are reported to the user.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) {
	sc := scopeOf(msg)
	route := h.router.Classify(ctx, msg.Text)
	h.l.Infof(ctx, "telegram handler: user=%s intent=%s", sc.UserID, route.Intent)

	reply, err := h.dispatch(ctx, sc, route, msg.Text)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: %s failed for user=%s: %v", route.Intent, sc.UserID, err)
		reply = errorMessage(err)
	}
	if reply == "" {
		return
	}
	if err := h.sender.SendMessage(ctx, sc.ChatID, reply); err != nil {
		h.l.Errorf(ctx, "telegram handler: send reply failed: %v", err)
	}
}

func (h *handler) dispatch(ctx context.Context, sc model.Scope, route router.RouterOutput, text string) (string, error) {
	switch route.Intent {
	case router.IntentHelp:
		return msgHelp, nil
	case router.IntentAddTask:
		return h.addTasks(ctx, sc, text, route)
	case router.IntentListTasks:
		return h.listTasks(ctx, sc)
	case router.IntentProposeToday:
		return h.propose(ctx, sc, route.Args, false)
	case router.IntentProposeWeek:
		return h.propose(ctx, sc, route.Args, true)
	case router.IntentApprove:
		return h.approve(ctx, sc)
	case router.IntentCancel:
		if err := h.scheduleUC.Cancel(ctx, sc); err != nil {
			return "", err
		}
		return msgCancelled, nil
	case router.IntentCompleteTask:
		return h.complete(ctx, sc, route.Args)
	default:
		return msgConversation, nil
	}
}

func (h *handler) addTasks(ctx context.Context, sc model.Scope, text string, route router.RouterOutput) (string, error) {
	// "/add ..." carries the description after the command.
	if route.Reasoning == router.ReasonSlashCommand {
		text = joinArgs(route.Args)
	}
	h.ack(ctx, sc)

	out, err := h.taskUC.CreateFromText(ctx, sc, task.CreateInput{RawText: text})
	if err != nil {
		return "", err
	}
	return formatCreated(out), nil
}

func (h *handler) listTasks(ctx context.Context, sc model.Scope) (string, error) {
	tasks, err := h.taskUC.List(ctx, sc, task.ListInput{})
	if err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return msgNoTasks, nil
	}
	return formatTaskList(tasks), nil
}

// propose schedules the tasks picked by 1-based index, or the default selection
// when no index is given: daily tasks for a day, every task for a week.
func (h *handler) propose(ctx context.Context, sc model.Scope, args []string, weekScope bool) (string, error) {
	all, err := h.taskUC.List(ctx, sc, task.ListInput{})
	if err != nil {
		return "", err
	}

	var selected []model.Task
	if len(args) > 0 {
		selected, err = pickByIndex(all, args)
		if err != nil {
			return "", err
		}
	} else {
		for _, t := range all {
			if weekScope || t.Kind == model.TaskKindDaily {
				selected = append(selected, t)
			}
		}
	}

	h.ack(ctx, sc)
	out, err := h.scheduleUC.Propose(ctx, sc, schedule.ProposeInput{Tasks: selected, WeekScope: weekScope})
	if err != nil {
		return "", err
	}
	return out.Text, nil
}

func (h *handler) approve(ctx context.Context, sc model.Scope) (string, error) {
	out, err := h.scheduleUC.Approve(ctx, sc)
	if err != nil {
		return "", err
	}
	return formatApproved(out), nil
}

func (h *handler) complete(ctx context.Context, sc model.Scope, args []string) (string, error) {
	if len(args) != 1 {
		return msgDoneUsage, nil
	}
	all, err := h.taskUC.List(ctx, sc, task.ListInput{})
	if err != nil {
		return "", err
	}
	picked, err := pickByIndex(all, args)
	if err != nil {
		return "", err
	}
	done, err := h.taskUC.Complete(ctx, sc, picked[0].ID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Đã hoàn thành: %s", done.Name), nil
}

func (h *handler) ack(ctx context.Context, sc model.Scope) {
	if err := h.sender.SendMessage(ctx, sc.ChatID, msgProcessing); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send ack message: %v", err)
	}
}

// pickByIndex selects tasks by 1-based positions, keeping the order given.
func pickByIndex(tasks []model.Task, args []string) ([]model.Task, error) {
	picked := make([]model.Task, 0, len(args))
	seen := make(map[int]bool, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 1 || n > len(tasks) {
			return nil, fmt.Errorf("%w: %q", errInvalidIndex, a)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		picked = append(picked, tasks[n-1])
	}
	return picked, nil
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{ChatID: msg.Chat.ID, UserID: strconv.FormatInt(msg.Chat.ID, 10)}
	if msg.From != nil {
		sc.UserID = strconv.FormatInt(msg.From.ID, 10)
		sc.Username = msg.From.Username
	}
	return sc
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
