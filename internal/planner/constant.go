package planner

import "chat-task-scheduler/internal/model"

// Proposal text markers. Render emits them, Validate and ParseEvents read them back.
const (
	HeaderPrefix     = "📅"
	HeaderToday      = "📅 Đề xuất lịch làm việc hôm nay"
	HeaderWeek       = "📅 Đề xuất lịch làm việc tuần tới"
	Separator        = "──────────"
	DayMarker        = "📆"
	TimeMarker       = "⏰"
	TaskMarker       = "📌"
	UnassignedMarker = "⚠️ Chưa xếp được:"
	UnassignedBullet = "•"
	RationaleMarker  = "💡 Lý do:"
	CTAMarker        = "👉"
	CallToAction     = "👉 Gõ /approve để thêm vào Google Calendar, hoặc /cancel để huỷ và chỉnh sửa."

	// ErrorMarker is what the generator is told to emit when it cannot build any schedule.
	ErrorMarker = "[[NO_SCHEDULE]]"

	DeterministicRationale = "Phân bổ tự động dựa trên thời gian trống."
	GenerativeRationale    = "Sắp xếp theo thứ tự công việc và thời gian trống trong lịch."

	DurationUnit = "phút"
	RangeDash    = "–"
	ClockLayout  = "15:04"
)

// DefaultMinSlotMinutes is the shortest free slot worth offering.
const DefaultMinSlotMinutes = 15

// DisallowedIcon is stripped from generated task lines.
const DisallowedIcon = "🟢"

const defaultIcon = "⚪"

var priorityIcons = map[model.Priority]string{
	model.PriorityUrgentImportant:    "🔴",
	model.PriorityNotUrgentImportant: "🟡",
	model.PriorityUrgentNotImportant: "🔵",
	model.PriorityNormal:             defaultIcon,
}

// allIcons lists every icon the normaliser strips before re-applying exactly one.
var allIcons = []string{"🔴", "🟡", "🔵", defaultIcon, DisallowedIcon}

var weekdayAbbr = [...]string{"CN", "T2", "T3", "T4", "T5", "T6", "T7"}

// PriorityIcon returns the single icon for p.
func PriorityIcon(p model.Priority) string {
	if icon, ok := priorityIcons[p]; ok {
		return icon
	}
	return defaultIcon
}
