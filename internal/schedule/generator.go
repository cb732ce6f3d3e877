package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chat-task-scheduler/internal/planner"
	"chat-task-scheduler/pkg/llmprovider"
)

const generatorSystemPrompt = `Bạn là trợ lý xếp lịch làm việc. Hãy xếp các công việc vào các khoảng thời gian trống đã cho.

QUY TẮC:
1. Chỉ dùng các khoảng thời gian trống được liệt kê. Không chồng lấn, không chia nhỏ công việc.
2. Giữ thứ tự công việc như danh sách. Công việc không vừa khoảng nào thì đưa vào mục "⚠️ Chưa xếp được:".
3. Giữ nguyên tên công việc và biểu tượng ưu tiên.
4. Trả lời ĐÚNG định dạng sau, không thêm markdown:

%s
──────────
%s⏰ HH:MM–HH:MM
📌 <biểu tượng> <tên công việc> (<N> phút)
──────────

⚠️ Chưa xếp được:
• <tên công việc> (<N> phút)

💡 Lý do:
<một câu giải thích>

%s

5. Nếu không thể xếp lịch, chỉ trả về %s.`

type llmGenerator struct {
	llm llmprovider.TextGenerator
}

// NewGenerator drafts proposals with an LLM.
func NewGenerator(llm llmprovider.TextGenerator) Generator {
	return &llmGenerator{llm: llm}
}

func (g *llmGenerator) Generate(ctx context.Context, in GenerateInput) (string, error) {
	dayLine := ""
	if in.WeekScope {
		dayLine = "📆 MM/DD (T2)\n──────────\n"
	}
	system := fmt.Sprintf(generatorSystemPrompt, planner.Header(in.WeekScope), dayLine, planner.CallToAction, planner.ErrorMarker)

	text, err := g.llm.GenerateText(ctx, system, buildGeneratorPrompt(in), false)
	if err != nil {
		return "", err
	}
	return text, nil
}

func buildGeneratorPrompt(in GenerateInput) string {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	var sb strings.Builder
	sb.WriteString("PHẠM VI: ")
	sb.WriteString(in.WeekLabel)
	sb.WriteString("\n\nCÔNG VIỆC:\n")
	for i, t := range in.Tasks {
		fmt.Fprintf(&sb, "%d. %s %s (%d %s)", i+1, planner.PriorityIcon(t.Priority), t.Name, t.DurationMinutes, planner.DurationUnit)
		if due := t.DueDateString(); due != "" {
			fmt.Fprintf(&sb, " hạn %s", due)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nKHOẢNG TRỐNG:\n")
	for _, s := range in.Slots {
		start, end := s.Start.In(loc), s.End.In(loc)
		fmt.Fprintf(&sb, "- %s %s\n", planner.DayHeader(start), planner.TimeLine(start, end))
	}
	return sb.String()
}

// WeekLabel describes the proposal range in the day-header date style,
// e.g. "ngày 10/19" or "tuần 10/19–10/25".
func WeekLabel(days []time.Time, weekScope bool) string {
	if len(days) == 0 {
		return ""
	}
	first := days[0]
	if !weekScope {
		return fmt.Sprintf("ngày %02d/%02d", int(first.Month()), first.Day())
	}
	last := days[len(days)-1]
	return fmt.Sprintf("tuần %02d/%02d%s%02d/%02d", int(first.Month()), first.Day(), planner.RangeDash, int(last.Month()), last.Day())
}
