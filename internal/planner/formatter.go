package planner

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"chat-task-scheduler/internal/model"
)

// Formatter turns an allocation, or a generator's raw text, into proposal text.
// Callers depend only on this interface plus Validate; the repair rules behind
// Normalize can change without touching Allocate.
type Formatter interface {
	Render(in RenderInput) string
	Normalize(raw string, in NormalizeInput) string
}

// RenderInput is the deterministic path's input.
type RenderInput struct {
	Assignments []Assignment
	Unassigned  []model.Task
	WeekScope   bool
	Location    *time.Location
}

// NormalizeInput is the raw-text path's input.
type NormalizeInput struct {
	Tasks     []model.Task
	WeekScope bool
	// BaseDate is the first proposal day; it dates MM/DD headers. Zero means today.
	BaseDate time.Time
}

type textFormatter struct{}

// NewFormatter returns the default Formatter.
func NewFormatter() Formatter {
	return textFormatter{}
}

func (textFormatter) Render(in RenderInput) string { return Render(in) }

func (textFormatter) Normalize(raw string, in NormalizeInput) string { return Normalize(raw, in) }

// Header returns the proposal title for the scope.
func Header(weekScope bool) string {
	if weekScope {
		return HeaderWeek
	}
	return HeaderToday
}

// Render builds the proposal text straight from an allocation.
func Render(in RenderInput) string {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	blocks := make([]Assignment, len(in.Assignments))
	copy(blocks, in.Assignments)
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Start.Before(blocks[j].Start)
	})

	var sb strings.Builder
	sb.WriteString(Header(in.WeekScope))
	sb.WriteString("\n")
	sb.WriteString(Separator)
	sb.WriteString("\n")

	var currentDay time.Time
	for _, a := range blocks {
		start, end := a.Start.In(loc), a.End.In(loc)

		if in.WeekScope {
			y, m, d := start.Date()
			day := time.Date(y, m, d, 0, 0, 0, 0, loc)
			if !day.Equal(currentDay) {
				currentDay = day
				sb.WriteString(DayHeader(day))
				sb.WriteString("\n")
				sb.WriteString(Separator)
				sb.WriteString("\n")
			}
		}

		sb.WriteString(TimeLine(start, end))
		sb.WriteString("\n")
		sb.WriteString(TaskLine(a.Task))
		sb.WriteString("\n")
		sb.WriteString(Separator)
		sb.WriteString("\n")
	}

	if len(in.Unassigned) > 0 {
		sb.WriteString("\n")
		sb.WriteString(UnassignedMarker)
		sb.WriteString("\n")
		for _, t := range in.Unassigned {
			sb.WriteString(fmt.Sprintf("%s %s (%d %s)\n", UnassignedBullet, t.Name, t.DurationMinutes, DurationUnit))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(RationaleMarker)
	sb.WriteString("\n")
	sb.WriteString(DeterministicRationale)
	sb.WriteString("\n\n")
	sb.WriteString(CallToAction)

	return sb.String()
}

// DayHeader renders "📆 MM/DD (T2)".
func DayHeader(day time.Time) string {
	return fmt.Sprintf("%s %02d/%02d (%s)", DayMarker, int(day.Month()), day.Day(), weekdayAbbr[day.Weekday()])
}

// TimeLine renders "⏰ HH:MM–HH:MM".
func TimeLine(start, end time.Time) string {
	return fmt.Sprintf("%s %s%s%s", TimeMarker, start.Format(ClockLayout), RangeDash, end.Format(ClockLayout))
}

// TaskLine renders "📌 <icon> <name> (<N> phút)".
func TaskLine(t model.Task) string {
	return taskLine(PriorityIcon(t.Priority), t.Name, t.DurationMinutes)
}

func taskLine(icon, name string, minutes int) string {
	return fmt.Sprintf("%s %s %s (%d %s)", TaskMarker, icon, name, minutes, DurationUnit)
}
