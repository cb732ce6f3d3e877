package planner_test

import (
	"errors"
	"testing"
	"time"

	"chat-task-scheduler/internal/planner"
)

func TestNewSlot(t *testing.T) {
	if _, err := planner.NewSlot(at(0, 10, 0), at(0, 10, 0)); !errors.Is(err, planner.ErrInvalidSlot) {
		t.Errorf("expected ErrInvalidSlot for empty slot, got %v", err)
	}
	if _, err := planner.NewSlot(at(0, 11, 0), at(0, 10, 0)); !errors.Is(err, planner.ErrInvalidSlot) {
		t.Errorf("expected ErrInvalidSlot for inverted slot, got %v", err)
	}
	s, err := planner.NewSlot(at(0, 9, 0), at(0, 10, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Minutes() != 90 {
		t.Errorf("Minutes() = %d, want 90", s.Minutes())
	}
}

func TestNormalizeSlots(t *testing.T) {
	utc := func(hh, mm int) time.Time { return at(0, hh, mm).UTC() }
	in := []planner.Slot{
		{Start: utc(13, 0), End: utc(14, 0)},
		{Start: utc(9, 0), End: utc(9, 10)}, // too short
		{Start: utc(10, 0), End: utc(9, 0)}, // inverted
		{Start: utc(8, 0), End: utc(8, 15)}, // exactly the minimum
	}

	got := planner.NormalizeSlots(in, testLoc, planner.DefaultMinSlotMinutes)

	if len(got) != 2 {
		t.Fatalf("expected 2 slots, got %d: %+v", len(got), got)
	}
	if !got[0].Start.Equal(at(0, 8, 0)) || !got[1].Start.Equal(at(0, 13, 0)) {
		t.Errorf("slots not sorted ascending: %+v", got)
	}
	if got[0].Start.Location() != testLoc {
		t.Errorf("expected slots in %s, got %s", testLoc, got[0].Start.Location())
	}
}

func TestFreeWindows(t *testing.T) {
	window := planner.Slot{Start: at(0, 9, 0), End: at(0, 17, 0)}

	tests := []struct {
		name string
		busy []planner.Slot
		want []planner.Slot
	}{
		{
			name: "no busy time",
			want: []planner.Slot{window},
		},
		{
			name: "meetings split the day",
			busy: []planner.Slot{
				{Start: at(0, 13, 0), End: at(0, 14, 0)},
				{Start: at(0, 10, 0), End: at(0, 11, 0)},
			},
			want: []planner.Slot{
				{Start: at(0, 9, 0), End: at(0, 10, 0)},
				{Start: at(0, 11, 0), End: at(0, 13, 0)},
				{Start: at(0, 14, 0), End: at(0, 17, 0)},
			},
		},
		{
			name: "overlapping and out-of-window busy",
			busy: []planner.Slot{
				{Start: at(0, 7, 0), End: at(0, 9, 30)},
				{Start: at(0, 12, 0), End: at(0, 13, 0)},
				{Start: at(0, 12, 30), End: at(0, 13, 30)},
				{Start: at(0, 16, 50), End: at(0, 18, 0)},
			},
			want: []planner.Slot{
				{Start: at(0, 9, 30), End: at(0, 12, 0)},
				{Start: at(0, 13, 30), End: at(0, 16, 50)},
			},
		},
		{
			name: "short gap dropped",
			busy: []planner.Slot{
				{Start: at(0, 9, 0), End: at(0, 12, 0)},
				{Start: at(0, 12, 10), End: at(0, 17, 0)},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planner.FreeWindows(window, tt.busy, planner.DefaultMinSlotMinutes)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d windows, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if !got[i].Start.Equal(tt.want[i].Start) || !got[i].End.Equal(tt.want[i].End) {
					t.Errorf("window %d = %s-%s, want %s-%s", i,
						got[i].Start.Format("15:04"), got[i].End.Format("15:04"),
						tt.want[i].Start.Format("15:04"), tt.want[i].End.Format("15:04"))
				}
			}
		})
	}
}

func TestDefaultSlots(t *testing.T) {
	start, _ := planner.ParseClock("09:00")
	end, _ := planner.ParseClock("17:00")
	days := []time.Time{at(0, 0, 0), at(1, 0, 0)}

	got := planner.DefaultSlots(days, testLoc, start, end)

	if len(got) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(got))
	}
	if !got[1].Start.Equal(at(1, 9, 0)) || !got[1].End.Equal(at(1, 17, 0)) {
		t.Errorf("unexpected second slot %+v", got[1])
	}
}

func TestParseClock(t *testing.T) {
	c, err := planner.ParseClock("09:30")
	if err != nil || c.Hour != 9 || c.Minute != 30 {
		t.Fatalf("ParseClock(09:30) = %+v, %v", c, err)
	}
	if c.String() != "09:30" {
		t.Errorf("String() = %q", c.String())
	}
	if _, err := planner.ParseClock("9h30"); !errors.Is(err, planner.ErrInvalidClock) {
		t.Errorf("expected ErrInvalidClock, got %v", err)
	}
}
