package planner

import (
	"fmt"
	"sort"
	"time"
)

// Slot is a contiguous free interval. Start and End share one timezone.
type Slot struct {
	Start time.Time
	End   time.Time
}

// NewSlot returns a slot, rejecting empty or inverted intervals.
func NewSlot(start, end time.Time) (Slot, error) {
	if !end.After(start) {
		return Slot{}, fmt.Errorf("%w: %s - %s", ErrInvalidSlot, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Slot{Start: start, End: end}, nil
}

// Duration returns End - Start.
func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Minutes returns the whole minutes in the slot.
func (s Slot) Minutes() int {
	return int(s.Duration() / time.Minute)
}

// Day returns midnight of the slot's start date in its own location.
func (s Slot) Day() time.Time {
	y, m, d := s.Start.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.Start.Location())
}

// Covers reports whether [start, end) lies fully inside the slot.
func (s Slot) Covers(start, end time.Time) bool {
	return !start.Before(s.Start) && !end.After(s.End)
}

// NormalizeSlots moves slots into loc, drops inverted slots and slots shorter than
// minMinutes, and sorts the rest by start time.
func NormalizeSlots(slots []Slot, loc *time.Location, minMinutes int) []Slot {
	if loc == nil {
		loc = time.UTC
	}
	minDur := time.Duration(minMinutes) * time.Minute

	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if !s.End.After(s.Start) || s.Duration() < minDur {
			continue
		}
		out = append(out, Slot{Start: s.Start.In(loc), End: s.End.In(loc)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// FreeWindows subtracts busy intervals from window and returns the free gaps that are
// at least minMinutes long, in ascending order.
func FreeWindows(window Slot, busy []Slot, minMinutes int) []Slot {
	if !window.End.After(window.Start) {
		return nil
	}

	sorted := make([]Slot, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	minDur := time.Duration(minMinutes) * time.Minute
	var free []Slot
	cursor := window.Start

	for _, b := range sorted {
		if !b.End.After(cursor) {
			continue
		}
		if !b.Start.Before(window.End) {
			break
		}
		if b.Start.After(cursor) && b.Start.Sub(cursor) >= minDur {
			free = append(free, Slot{Start: cursor, End: b.Start})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
		if !cursor.Before(window.End) {
			return free
		}
	}

	if window.End.Sub(cursor) >= minDur {
		free = append(free, Slot{Start: cursor, End: window.End})
	}
	return free
}

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM".
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// On returns the clock time on the calendar day of day, in loc.
func (c Clock) On(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.In(loc).Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, loc)
}

// Before reports whether c is earlier in the day than o.
func (c Clock) Before(o Clock) bool {
	return c.Hour*60+c.Minute < o.Hour*60+o.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// DefaultSlots builds one synthetic [start, end) window per day.
func DefaultSlots(days []time.Time, loc *time.Location, start, end Clock) []Slot {
	if loc == nil {
		loc = time.UTC
	}
	slots := make([]Slot, 0, len(days))
	for _, day := range days {
		s, e := start.On(day, loc), end.On(day, loc)
		if e.After(s) {
			slots = append(slots, Slot{Start: s, End: e})
		}
	}
	return slots
}
