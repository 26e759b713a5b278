package daykeep

import (
	"testing"
	"time"
)

func entryOn(id int64, day Date, r *Recurrence) CalendarEntry {
	return CalendarEntry{ID: id, Title: "entry", StartTime: day.StartNanos(), Recurrence: r}
}

func TestScheduledDaysOneOff(t *testing.T) {
	day := NewDate(2026, time.March, 10)
	rng := NewRange(NewDate(2026, time.March, 1), NewDate(2026, time.March, 31))

	days := ScheduledDays([]CalendarEntry{entryOn(1, day, nil)}, rng)

	if !days.Has(day) {
		t.Errorf("one-off entry day %v missing from the set", day)
	}
	if len(days) != 1 {
		t.Errorf("got %d days, want 1: %v", len(days), days.Sorted())
	}
}

// The start day of an entry is always present, even when it falls
// outside the requested range.
func TestScheduledDaysBaseDayOutsideRange(t *testing.T) {
	day := NewDate(2025, time.December, 25)
	rng := NewRange(NewDate(2026, time.March, 1), NewDate(2026, time.March, 31))

	days := ScheduledDays([]CalendarEntry{entryOn(1, day, nil)}, rng)

	if !days.Has(day) {
		t.Errorf("entry start day must be included even outside the range")
	}
}

func TestScheduledDaysRecurring(t *testing.T) {
	weekly := Weekly
	start := NewDate(2026, time.March, 2)
	rng := NewRange(NewDate(2026, time.March, 1), NewDate(2026, time.March, 16))

	days := ScheduledDays([]CalendarEntry{entryOn(1, start, &weekly)}, rng)

	want := []Date{
		NewDate(2026, time.March, 2),
		NewDate(2026, time.March, 9),
		NewDate(2026, time.March, 16),
	}
	assertDays(t, days.Sorted(), want)
}

// Overlapping entries collapse into one day per calendar day.
func TestScheduledDaysDeduplicated(t *testing.T) {
	daily := Daily
	day := NewDate(2026, time.March, 10)
	rng := NewRange(day, day)

	days := ScheduledDays([]CalendarEntry{
		entryOn(1, day, nil),
		entryOn(2, day, nil),
		entryOn(3, day, &daily),
	}, rng)

	if len(days) != 1 {
		t.Errorf("got %d days, want 1: %v", len(days), days.Sorted())
	}
}

func TestScheduledDaysDefaultWindow(t *testing.T) {
	daily := Daily
	start := Today().Add(-scheduledWindowDays - 10)

	days := ScheduledDays([]CalendarEntry{entryOn(1, start, &daily)}, Range{})

	if !days.Has(start) {
		t.Errorf("entry start day must be included even before the window")
	}
	if days.Has(start.Add(1)) {
		t.Errorf("occurrences before the window must be filtered out")
	}
	if !days.Has(Today()) {
		t.Errorf("a daily rule must cover today inside the default window")
	}
}
