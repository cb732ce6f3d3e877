package schedule

import (
	"context"
	"fmt"
	"time"

	"chat-task-scheduler/internal/planner"
	"chat-task-scheduler/pkg/gcalendar"
)

// CalendarAPI is the subset of *gcalendar.Client the scheduler calls.
type CalendarAPI interface {
	FreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) ([]gcalendar.BusyPeriod, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// CalendarConfig bounds the free time the scheduler may use.
type CalendarConfig struct {
	CalendarID     string
	Location       *time.Location
	WorkdayStart   planner.Clock
	WorkdayEnd     planner.Clock
	MinSlotMinutes int
}

type googleCalendar struct {
	api CalendarAPI
	cfg CalendarConfig
	now func() time.Time
}

// NewCalendar adapts a Google Calendar client to the Calendar interface.
func NewCalendar(api CalendarAPI, cfg CalendarConfig) Calendar {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = gcalendar.PrimaryCalendarID
	}
	return &googleCalendar{api: api, cfg: cfg, now: time.Now}
}

// FreeSlots asks for busy periods across all days at once and subtracts them from
// each day's working window. Today's window starts no earlier than now.
func (c *googleCalendar) FreeSlots(ctx context.Context, days []time.Time) ([]planner.Slot, error) {
	if len(days) == 0 {
		return nil, nil
	}

	windows := c.windows(days)
	if len(windows) == 0 {
		return nil, nil
	}

	busy, err := c.api.FreeBusy(ctx, gcalendar.FreeBusyRequest{
		CalendarID: c.cfg.CalendarID,
		TimeMin:    windows[0].Start,
		TimeMax:    windows[len(windows)-1].End,
		Timezone:   c.cfg.Location.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("query free/busy: %w", err)
	}

	busySlots := make([]planner.Slot, 0, len(busy))
	for _, b := range busy {
		busySlots = append(busySlots, planner.Slot{Start: b.Start, End: b.End})
	}

	var free []planner.Slot
	for _, w := range windows {
		free = append(free, planner.FreeWindows(w, busySlots, c.cfg.MinSlotMinutes)...)
	}
	return free, nil
}

func (c *googleCalendar) windows(days []time.Time) []planner.Slot {
	loc := c.cfg.Location
	now := c.now().In(loc)
	// Start today's window on the next whole minute.
	nowCeil := now.Truncate(time.Minute)
	if nowCeil.Before(now) {
		nowCeil = nowCeil.Add(time.Minute)
	}

	out := make([]planner.Slot, 0, len(days))
	for _, day := range days {
		start := c.cfg.WorkdayStart.On(day, loc)
		end := c.cfg.WorkdayEnd.On(day, loc)
		if start.Before(nowCeil) {
			start = nowCeil
		}
		if end.After(start) {
			out = append(out, planner.Slot{Start: start, End: end})
		}
	}
	return out
}

// AddEvent inserts one proposal block.
func (c *googleCalendar) AddEvent(ctx context.Context, ev planner.ProposedEvent) (string, error) {
	created, err := c.api.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: c.cfg.CalendarID,
		Summary:    ev.Title,
		StartTime:  ev.Start,
		EndTime:    ev.End(),
		Timezone:   c.cfg.Location.String(),
	})
	if err != nil {
		return "", fmt.Errorf("create event %q: %w", ev.Title, err)
	}
	return created.HtmlLink, nil
}
