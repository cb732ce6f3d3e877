package planner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"chat-task-scheduler/internal/model"
)

var (
	// 9:00 - 10:30, 09：00〜10：30, ⏰ 9:00—10:30 Draft report (60分)
	timeRangeRe = regexp.MustCompile(`^(?:[-*•]\s*)?(?:⏰\s*)?(\d{1,2})\s*[:：]\s*(\d{2})\s*[-–—~〜～]\s*(\d{1,2})\s*[:：]\s*(\d{2})\s*(.*)$`)

	// Draft report (60分), - Draft report（60 phút）, 📌 🔴 Draft report (60 min)
	taskDurationRe = regexp.MustCompile(`^(?:📌\s*)*(?:[-*•]\s*|\d+[.)]\s*)?(.+?)\s*[（(]\s*(\d+)\s*(?:分|phút|phut|mins|min|minutes|m)\s*[)）]\s*$`)

	// 📅 10/27 (T3), ### Thứ 4 10/28, 📆 T5 10/29:, 10/30
	dayLineRe = regexp.MustCompile(`(?i)^(?:📅|📆|🗓️?|#+|[-*•])?\s*(?:(?:thứ\s*[2-7]|t[2-7]|cn|chủ\s*nhật|ngày)\s*[,:-]?\s*)?(\d{1,2})/(\d{1,2})(?:/\d{2,4})?\s*(?:[(（][^)）]*[)）])?\s*:?$`)

	separatorRe = regexp.MustCompile(`^[-─━=_~*]{3,}$`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
)

type section int

const (
	sectionBody section = iota
	sectionUnassigned
	sectionRationale
	sectionSkip
)

// Normalize repairs a generator's free-form proposal into the canonical layout:
// one header, single separators, canonical day, time and task lines, one priority
// icon per task, first rationale and call-to-action kept, both appended when missing.
func Normalize(raw string, in NormalizeInput) string {
	base := in.BaseDate
	if base.IsZero() {
		base = time.Now()
	}
	byName := make(map[string]model.Task, len(in.Tasks))
	for _, t := range in.Tasks {
		byName[compact(t.Name)] = t
	}

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "**", "")

	out := []string{Header(in.WeekScope)}
	var cta string
	seenRationale := false
	state := sectionBody

	emit := func(line string) {
		if line == Separator && len(out) > 0 && out[len(out)-1] == Separator {
			return
		}
		out = append(out, line)
	}

	for _, rawLine := range strings.Split(raw, "\n") {
		line := strings.TrimSpace(rawLine)

		switch {
		case line == "":
			skipping := state == sectionSkip
			state = sectionBody
			if !skipping {
				emit("")
			}
			continue

		case state != sectionRationale && isDayLine(line):
			state = sectionBody
			emit(canonicalDayHeader(line, base))
			continue

		case strings.HasPrefix(line, HeaderPrefix) || strings.HasPrefix(line, "#"):
			// Header lines are rebuilt; markdown headings are dropped with them.
			continue

		case strings.HasPrefix(line, CTAMarker):
			if cta == "" {
				cta = line
			}
			state = sectionBody
			continue

		case strings.HasPrefix(line, "💡"):
			if seenRationale {
				state = sectionSkip
				continue
			}
			seenRationale = true
			state = sectionRationale
			emit(line)
			continue

		case strings.HasPrefix(line, "⚠"):
			state = sectionUnassigned
			emit(UnassignedMarker)
			continue
		}

		if separatorRe.MatchString(line) {
			if state == sectionSkip {
				state = sectionBody
			}
			emit(Separator)
			continue
		}

		if state == sectionSkip {
			continue
		}

		if state == sectionRationale {
			emit(line)
			continue
		}

		if m := timeRangeRe.FindStringSubmatch(line); m != nil {
			state = sectionBody
			emit(canonicalTimeLine(m[1], m[2], m[3], m[4]))
			if rest := strings.TrimSpace(m[5]); rest != "" {
				if task, ok := normalizeTaskLine(rest, byName); ok {
					emit(task)
				} else {
					emit(rest)
				}
			}
			continue
		}

		if strings.HasPrefix(line, DayMarker) {
			state = sectionBody
			emit(line)
			continue
		}

		if state == sectionUnassigned {
			emit(unassignedLine(line))
			continue
		}

		if task, ok := normalizeTaskLine(line, byName); ok {
			emit(task)
			continue
		}

		if strings.HasPrefix(line, TaskMarker) {
			emit(fixIcons(line, byName))
			continue
		}

		emit(stripDuplicateIcons(line))
	}

	if !seenRationale {
		emit("")
		emit(RationaleMarker)
		emit(GenerativeRationale)
	}
	if cta == "" {
		cta = CallToAction
	}
	emit("")
	emit(cta)

	text := strings.Join(out, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func isDayLine(line string) bool {
	_, _, ok := parseDayLine(line)
	return ok
}

// parseDayLine reads MM/DD from a day line, accepting DD/MM when only that reading
// is a valid date.
func parseDayLine(line string) (time.Month, int, bool) {
	m := dayLineRe.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}
	month, _ := strconv.Atoi(m[1])
	dom, _ := strconv.Atoi(m[2])
	if month > 12 && dom <= 12 {
		month, dom = dom, month
	}
	if month < 1 || month > 12 || dom < 1 || dom > 31 {
		return 0, 0, false
	}
	return time.Month(month), dom, true
}

// canonicalDayHeader rewrites a recognised day line as DayHeader. The year follows
// ParseEvents: base's year, rolled forward when the month is before base's month.
func canonicalDayHeader(line string, base time.Time) string {
	month, dom, _ := parseDayLine(line)
	year := base.Year()
	if month < base.Month() {
		year++
	}
	return DayHeader(time.Date(year, month, dom, 0, 0, 0, 0, time.UTC))
}

func canonicalTimeLine(h1, m1, h2, m2 string) string {
	return fmt.Sprintf("%s %s:%s%s%s:%s", TimeMarker, pad2(h1), m1, RangeDash, pad2(h2), m2)
}

func pad2(s string) string {
	n, err := strconv.Atoi(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%02d", n)
}

// normalizeTaskLine rewrites "name (N分)" style lines into the canonical task line.
func normalizeTaskLine(line string, byName map[string]model.Task) (string, bool) {
	m := taskDurationRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil || minutes <= 0 {
		return "", false
	}

	name, found := stripIcons(m[1])
	name = strings.TrimSpace(strings.TrimLeft(name, "-*•|: "+TaskMarker))
	if name == "" {
		return "", false
	}

	icon := pickIcon(name, found, byName)
	return taskLine(icon, name, minutes), true
}

// fixIcons leaves a canonical-marker line as is apart from its icons.
func fixIcons(line string, byName map[string]model.Task) string {
	name, found := stripIcons(line)
	name = strings.TrimSpace(strings.TrimLeft(name, TaskMarker+" "))
	return fmt.Sprintf("%s %s %s", TaskMarker, pickIcon(name, found, byName), name)
}

func pickIcon(name string, found []string, byName map[string]model.Task) string {
	if t, ok := byName[compact(name)]; ok {
		return PriorityIcon(t.Priority)
	}
	for _, icon := range found {
		if icon != DisallowedIcon {
			return icon
		}
	}
	return defaultIcon
}

// stripIcons removes every priority icon and returns the ones it saw, in order.
func stripIcons(s string) (string, []string) {
	var found []string
	for {
		idx, icon := -1, ""
		for _, candidate := range allIcons {
			if i := strings.Index(s, candidate); i >= 0 && (idx < 0 || i < idx) {
				idx, icon = i, candidate
			}
		}
		if idx < 0 {
			break
		}
		found = append(found, icon)
		s = s[:idx] + s[idx+len(icon):]
	}
	return strings.Join(strings.Fields(s), " "), found
}

// stripDuplicateIcons drops the disallowed icon and collapses repeated icon runs.
func stripDuplicateIcons(line string) string {
	line = strings.ReplaceAll(line, DisallowedIcon, "")
	for _, icon := range allIcons {
		double := icon + icon
		for strings.Contains(line, double) {
			line = strings.ReplaceAll(line, double, icon)
		}
	}
	return strings.Join(strings.Fields(line), " ")
}

func unassignedLine(line string) string {
	name, _ := stripIcons(line)
	name = strings.TrimSpace(strings.TrimLeft(name, "-*•📌 "))
	if m := taskDurationRe.FindStringSubmatch(name); m != nil {
		return fmt.Sprintf("%s %s (%s %s)", UnassignedBullet, strings.TrimSpace(m[1]), m[2], DurationUnit)
	}
	return fmt.Sprintf("%s %s", UnassignedBullet, name)
}

// compact removes all whitespace; task names are compared this way.
func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
