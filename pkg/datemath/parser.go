package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the absolute date format accepted alongside relative phrases.
const DateLayout = "2006-01-02"

var inDurationRe = regexp.MustCompile(`^(?:in|sau)\s+(\d+)\s+(day|days|week|weeks|month|months|ngày|tuần|tháng)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
	"thứ 2":     time.Monday,
	"thứ 3":     time.Tuesday,
	"thứ 4":     time.Wednesday,
	"thứ 5":     time.Thursday,
	"thứ 6":     time.Friday,
	"thứ 7":     time.Saturday,
	"chủ nhật":  time.Sunday,
}

// Parser converts relative date phrases to absolute dates in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone, e.g. "Asia/Ho_Chi_Minh".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse resolves a relative phrase ("today", "ngày mai", "in 3 days", "next friday",
// "2026-10-20") against base and returns midnight of the resulting day.
// Unknown phrases resolve to base's day.
func (p *Parser) Parse(relative string, base time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.Join(strings.Fields(relative), " "))

	switch relative {
	case "", "today", "hôm nay":
		return p.StartOfDay(base), nil
	case "tomorrow", "ngày mai", "mai":
		return p.StartOfDay(base.AddDate(0, 0, 1)), nil
	case "yesterday", "hôm qua":
		return p.StartOfDay(base.AddDate(0, 0, -1)), nil
	case "next week", "tuần sau", "tuần tới":
		return p.NextWeekStart(base), nil
	}

	if d, err := time.ParseInLocation(DateLayout, relative, p.location); err == nil {
		return d, nil
	}

	if strings.HasPrefix(relative, "in ") || strings.HasPrefix(relative, "sau ") {
		return p.parseInDuration(relative, base)
	}

	for _, prefix := range []string{"next ", "tới "} {
		if strings.HasPrefix(relative, prefix) {
			return p.parseNextWeekday(strings.TrimPrefix(relative, prefix), base)
		}
	}
	if strings.HasSuffix(relative, " tới") || strings.HasSuffix(relative, " tuần sau") {
		name := strings.TrimSuffix(strings.TrimSuffix(relative, " tới"), " tuần sau")
		return p.parseNextWeekday(name, base)
	}

	return p.StartOfDay(base), nil
}

func (p *Parser) parseInDuration(relative string, base time.Time) (time.Time, error) {
	m := inDurationRe.FindStringSubmatch(relative)
	if m == nil {
		return base, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(m[1])
	switch unit := m[2]; {
	case strings.HasPrefix(unit, "day"), unit == "ngày":
		return p.StartOfDay(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"), unit == "tuần":
		return p.StartOfDay(base.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(base.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday returns the first given weekday strictly after base.
func (p *Parser) parseNextWeekday(name string, base time.Time) (time.Time, error) {
	target, ok := weekdays[name]
	if !ok {
		return base, fmt.Errorf("unknown weekday: %q", name)
	}

	daysUntil := int(target - base.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.StartOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 of the day starting at startOfDay.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
