package usecase

import "fmt"

const parsingSystemPrompt = `You are a task parsing assistant. Extract structured tasks from the user's message.

RULES:
1. Extract every individual task mentioned.
2. For each task return:
   - name: short, clear task name (required)
   - duration_minutes: integer minutes (minimum 15, default 60)
   - due_date: "YYYY-MM-DD" when a date is mentioned, a relative phrase such as "tomorrow" or "next friday" when you cannot resolve it, or "" when no date is mentioned
   - priority: exactly one of "urgent_important", "not_urgent_important", "urgent_not_important", "normal" (default "normal")
   - kind: "daily" for work to do now, "future" for long-term investment tasks such as learning or side projects (default "daily")
3. Keep the user's language for task names.
4. Return ONLY a JSON array. No markdown, no code fences, no explanation.

EXAMPLE INPUT:
"Viết báo cáo quý 2 tiếng trước thứ 6, gọi khách hàng 30 phút gấp, học tiếng Nhật 1 tiếng"

EXAMPLE OUTPUT:
[
  {"name": "Viết báo cáo quý", "duration_minutes": 120, "due_date": "2026-10-23", "priority": "not_urgent_important", "kind": "daily"},
  {"name": "Gọi khách hàng", "duration_minutes": 30, "due_date": "", "priority": "urgent_important", "kind": "daily"},
  {"name": "Học tiếng Nhật", "duration_minutes": 60, "due_date": "", "priority": "normal", "kind": "future"}
]`

// buildParsingPrompt adds the current date so relative phrases can be resolved.
func buildParsingPrompt(rawText, today string) string {
	return fmt.Sprintf("TODAY: %s\n\nMESSAGE:\n%s", today, rawText)
}
