package planner

import (
	"strings"

	"chat-task-scheduler/internal/model"
)

// Violation names one reason a proposal was rejected.
type Violation string

const (
	ViolationEmpty           Violation = "empty_proposal"
	ViolationNoTimeLine      Violation = "missing_time_line"
	ViolationNoTaskLine      Violation = "missing_task_line"
	ViolationUnassignedOnly  Violation = "unassigned_without_task_lines"
	ViolationMissingTask     Violation = "missing_task_name"
	ViolationGeneratorGaveUp Violation = "error_marker"
	ViolationUndatedBlock    Violation = "time_line_without_day_header"
)

// Validate checks a candidate proposal against the tasks it had to cover and returns
// every violation found. An empty result means the proposal is usable.
func Validate(text string, tasks []model.Task) []Violation {
	if strings.TrimSpace(text) == "" {
		return []Violation{ViolationEmpty}
	}

	var (
		violations    []Violation
		hasTimeLine   bool
		hasTaskLine   bool
		hasUnassigned bool
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, TimeMarker):
			hasTimeLine = true
		case strings.HasPrefix(line, TaskMarker):
			hasTaskLine = true
		case strings.HasPrefix(line, UnassignedMarker):
			hasUnassigned = true
		}
	}

	if !hasTimeLine {
		violations = append(violations, ViolationNoTimeLine)
	}
	if !hasTaskLine {
		violations = append(violations, ViolationNoTaskLine)
	}
	if hasUnassigned && !hasTaskLine {
		violations = append(violations, ViolationUnassignedOnly)
	}

	flat := compact(text)
	for _, t := range tasks {
		if !strings.Contains(flat, compact(t.Name)) {
			violations = append(violations, ViolationMissingTask)
			break
		}
	}

	if strings.Contains(text, ErrorMarker) {
		violations = append(violations, ViolationGeneratorGaveUp)
	}

	return violations
}

// ValidateScope is Validate plus, for week proposals, a check that every time line
// sits under a day header. Undated blocks would otherwise land on the first day.
func ValidateScope(text string, tasks []model.Task, weekScope bool) []Violation {
	violations := Validate(text, tasks)
	if weekScope && hasUndatedBlock(text) {
		violations = append(violations, ViolationUndatedBlock)
	}
	return violations
}

func hasUndatedBlock(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, DayMarker):
			return false
		case strings.HasPrefix(line, TimeMarker):
			return true
		}
	}
	return false
}

// NeedsFallback reports whether the proposal must be rebuilt deterministically.
func NeedsFallback(text string, tasks []model.Task) bool {
	return len(Validate(text, tasks)) > 0
}

// MissingTasks lists the tasks whose names do not appear in text.
func MissingTasks(text string, tasks []model.Task) []model.Task {
	flat := compact(text)
	var missing []model.Task
	for _, t := range tasks {
		if !strings.Contains(flat, compact(t.Name)) {
			missing = append(missing, t)
		}
	}
	return missing
}
