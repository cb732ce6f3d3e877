package telegram

import (
	"fmt"
	"strings"

	"chat-task-scheduler/internal/model"
	"chat-task-scheduler/internal/planner"
	"chat-task-scheduler/internal/schedule"
	"chat-task-scheduler/internal/task"
)

var kindLabels = map[model.TaskKind]string{
	model.TaskKindDaily:  "hằng ngày",
	model.TaskKindFuture: "đầu tư",
}

func formatTaskLine(i int, t model.Task) string {
	line := fmt.Sprintf("%d. %s %s (%d %s, %s)", i+1, planner.PriorityIcon(t.Priority), t.Name, t.DurationMinutes, planner.DurationUnit, kindLabels[t.Kind])
	if due := t.DueDateString(); due != "" {
		line += " - hạn " + due
	}
	return line
}

func formatTaskList(tasks []model.Task) string {
	var sb strings.Builder
	sb.WriteString("📋 Danh sách công việc:\n")
	for i, t := range tasks {
		sb.WriteString(formatTaskLine(i, t))
		sb.WriteString("\n")
	}
	sb.WriteString("\nGõ /plan 1 2 để xếp lịch hôm nay cho các việc đã chọn.")
	return sb.String()
}

func formatCreated(out task.CreateOutput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "✅ Đã thêm %d công việc:\n", len(out.Tasks))
	for i, t := range out.Tasks {
		sb.WriteString(formatTaskLine(i, t))
		sb.WriteString("\n")
	}
	if out.Skipped > 0 {
		fmt.Fprintf(&sb, "⚠️ Bỏ qua %d mục không hợp lệ.\n", out.Skipped)
	}
	sb.WriteString("\nGõ /plan để xếp lịch hôm nay.")
	return sb.String()
}

func formatApproved(out schedule.ApproveOutput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 Đã thêm %d sự kiện vào Google Calendar:\n", len(out.Events))
	for _, ev := range out.Events {
		fmt.Fprintf(&sb, "%s %s %s\n", planner.TimeLine(ev.Start, ev.End()), ev.Start.Format("01/02"), ev.Title)
		if ev.Link != "" {
			fmt.Fprintf(&sb, "   %s\n", ev.Link)
		}
	}
	if len(out.Failed) > 0 {
		fmt.Fprintf(&sb, "⚠️ Không thêm được %d sự kiện:\n", len(out.Failed))
		for _, ev := range out.Failed {
			fmt.Fprintf(&sb, "• %s\n", ev.Title)
		}
	}
	if len(out.Promoted) > 0 {
		fmt.Fprintf(&sb, "🔁 %d việc đầu tư đã chuyển sang hằng ngày.\n", len(out.Promoted))
	}
	return strings.TrimRight(sb.String(), "\n")
}
