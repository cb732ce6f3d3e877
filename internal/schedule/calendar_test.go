package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"chat-task-scheduler/internal/planner"
	"chat-task-scheduler/pkg/gcalendar"
)

type mockCalendarAPI struct {
	busy      []gcalendar.BusyPeriod
	err       error
	lastQuery gcalendar.FreeBusyRequest
	created   []gcalendar.CreateEventRequest
}

func (m *mockCalendarAPI) FreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) ([]gcalendar.BusyPeriod, error) {
	m.lastQuery = req
	return m.busy, m.err
}

func (m *mockCalendarAPI) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "ev1", HtmlLink: "https://calendar.google.com/event?eid=ev1"}, nil
}

var ict = time.FixedZone("ICT", 7*3600)

func newTestCalendar(api CalendarAPI, now time.Time) *googleCalendar {
	c := NewCalendar(api, CalendarConfig{
		Location:       ict,
		WorkdayStart:   planner.Clock{Hour: 8},
		WorkdayEnd:     planner.Clock{Hour: 18},
		MinSlotMinutes: 15,
	}).(*googleCalendar)
	c.now = func() time.Time { return now }
	return c
}

func TestFreeSlots(t *testing.T) {
	today := time.Date(2026, 10, 19, 0, 0, 0, 0, ict)
	tomorrow := today.AddDate(0, 0, 1)
	api := &mockCalendarAPI{busy: []gcalendar.BusyPeriod{
		{Start: time.Date(2026, 10, 19, 11, 0, 0, 0, ict), End: time.Date(2026, 10, 19, 12, 0, 0, 0, ict)},
		{Start: time.Date(2026, 10, 20, 17, 50, 0, 0, ict), End: time.Date(2026, 10, 20, 19, 0, 0, 0, ict)},
	}}
	c := newTestCalendar(api, time.Date(2026, 10, 19, 10, 20, 30, 0, ict))

	got, err := c.FreeSlots(context.Background(), []time.Time{today, tomorrow})
	if err != nil {
		t.Fatalf("FreeSlots() error = %v", err)
	}

	want := []planner.Slot{
		{Start: time.Date(2026, 10, 19, 10, 21, 0, 0, ict), End: time.Date(2026, 10, 19, 11, 0, 0, 0, ict)},
		{Start: time.Date(2026, 10, 19, 12, 0, 0, 0, ict), End: time.Date(2026, 10, 19, 18, 0, 0, 0, ict)},
		{Start: time.Date(2026, 10, 20, 8, 0, 0, 0, ict), End: time.Date(2026, 10, 20, 17, 50, 0, 0, ict)},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d slots, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Start.Equal(want[i].Start) || !got[i].End.Equal(want[i].End) {
			t.Errorf("slot[%d] = %v–%v, want %v–%v", i, got[i].Start, got[i].End, want[i].Start, want[i].End)
		}
	}

	if !api.lastQuery.TimeMin.Equal(want[0].Start) {
		t.Errorf("TimeMin = %v, want %v", api.lastQuery.TimeMin, want[0].Start)
	}
	if !api.lastQuery.TimeMax.Equal(time.Date(2026, 10, 20, 18, 0, 0, 0, ict)) {
		t.Errorf("TimeMax = %v", api.lastQuery.TimeMax)
	}
	if api.lastQuery.CalendarID != gcalendar.PrimaryCalendarID {
		t.Errorf("CalendarID = %q", api.lastQuery.CalendarID)
	}
}

func TestFreeSlotsPastDaysAndErrors(t *testing.T) {
	t.Run("day already over", func(t *testing.T) {
		api := &mockCalendarAPI{}
		c := newTestCalendar(api, time.Date(2026, 10, 19, 19, 0, 0, 0, ict))
		got, err := c.FreeSlots(context.Background(), []time.Time{time.Date(2026, 10, 19, 0, 0, 0, 0, ict)})
		if err != nil || len(got) != 0 {
			t.Errorf("FreeSlots() = %v, %v", got, err)
		}
	})

	t.Run("api error", func(t *testing.T) {
		api := &mockCalendarAPI{err: errors.New("quota")}
		c := newTestCalendar(api, time.Date(2026, 10, 19, 7, 0, 0, 0, ict))
		if _, err := c.FreeSlots(context.Background(), []time.Time{time.Date(2026, 10, 19, 0, 0, 0, 0, ict)}); err == nil {
			t.Error("expected error")
		}
	})
}

func TestAddEvent(t *testing.T) {
	api := &mockCalendarAPI{}
	c := newTestCalendar(api, time.Now())

	start := time.Date(2026, 10, 19, 9, 0, 0, 0, ict)
	link, err := c.AddEvent(context.Background(), planner.ProposedEvent{Title: "Team sync", Start: start, DurationMinutes: 30})
	if err != nil {
		t.Fatalf("AddEvent() error = %v", err)
	}
	if link == "" {
		t.Error("expected event link")
	}
	if len(api.created) != 1 {
		t.Fatalf("created %d events", len(api.created))
	}
	req := api.created[0]
	if req.Summary != "Team sync" || !req.EndTime.Equal(start.Add(30*time.Minute)) {
		t.Errorf("unexpected request %+v", req)
	}
}
