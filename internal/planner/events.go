package planner

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var dayHeaderRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})`)

// ProposedEvent is one calendar event recovered from an approved proposal.
type ProposedEvent struct {
	Title           string
	Start           time.Time
	DurationMinutes int
}

// End returns Start + duration.
func (e ProposedEvent) End() time.Time {
	return e.Start.Add(time.Duration(e.DurationMinutes) * time.Minute)
}

// ParseEvents reads time lines back out of a proposal. Time lines are placed on
// base's date until a day header switches the date; the year comes from base and
// rolls forward when a header's month is earlier than base's month.
// The task line following a time line supplies the title.
func ParseEvents(text string, base time.Time, loc *time.Location) []ProposedEvent {
	if loc == nil {
		loc = time.UTC
	}
	base = base.In(loc)
	day := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, loc)

	var (
		events  []ProposedEvent
		pending *ProposedEvent
	)

	flush := func() {
		if pending != nil {
			if pending.Title == "" {
				pending.Title = "Task"
			}
			events = append(events, *pending)
			pending = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, DayMarker):
			flush()
			if m := dayHeaderRe.FindStringSubmatch(line); m != nil {
				month, _ := strconv.Atoi(m[1])
				dom, _ := strconv.Atoi(m[2])
				year := base.Year()
				if time.Month(month) < base.Month() {
					year++
				}
				day = time.Date(year, time.Month(month), dom, 0, 0, 0, 0, loc)
			}

		case strings.HasPrefix(line, TimeMarker):
			flush()
			m := timeRangeRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			start := clockOn(day, m[1], m[2], loc)
			end := clockOn(day, m[3], m[4], loc)
			if !end.After(start) {
				continue
			}
			pending = &ProposedEvent{
				Start:           start,
				DurationMinutes: int(end.Sub(start) / time.Minute),
			}

		case strings.HasPrefix(line, TaskMarker) && pending != nil && pending.Title == "":
			pending.Title = taskTitle(line)
		}
	}
	flush()

	return events
}

func clockOn(day time.Time, h, m string, loc *time.Location) time.Time {
	hour, _ := strconv.Atoi(h)
	minute, _ := strconv.Atoi(m)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
}

// taskTitle extracts the bare task name from a task line.
func taskTitle(line string) string {
	body := strings.TrimSpace(strings.TrimPrefix(line, TaskMarker))
	if m := taskDurationRe.FindStringSubmatch(body); m != nil {
		body = m[1]
	}
	name, _ := stripIcons(body)
	return strings.TrimSpace(name)
}
