package daykeep

import (
	"sort"
	"time"
)

// CalendarEntry is a scheduled event, possibly recurring, possibly
// mirroring a task. Instants are nanosecond unix timestamps.
type CalendarEntry struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	StartTime   int64       `json:"startTime"`
	EndTime     *int64      `json:"endTime,omitempty"`
	Recurrence  *Recurrence `json:"recurrence,omitempty"`
	TaskID      *int64      `json:"taskId,omitempty"`
}

// Start returns the entry's start instant.
func (e CalendarEntry) Start() time.Time { return time.Unix(0, e.StartTime) }

// StartDay returns the local calendar day of the entry's start.
func (e CalendarEntry) StartDay() Date { return DayOf(e.StartTime) }

// IsRecurring reports whether the entry has a repeat rule.
func (e CalendarEntry) IsRecurring() bool { return e.Recurrence != nil }

// IsTaskLinked reports whether the entry mirrors a task.
func (e CalendarEntry) IsTaskLinked() bool { return e.TaskID != nil }

// DaySet is an unordered, deduplicated set of calendar days.
type DaySet map[Date]struct{}

func (s DaySet) Add(d Date)      { s[d] = struct{}{} }
func (s DaySet) Has(d Date) bool { _, ok := s[d]; return ok }

// Sorted returns the days of the set in chronological order.
func (s DaySet) Sorted() []Date {
	days := make([]Date, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// scheduledWindowDays is the half-width of the default indicator window.
const scheduledWindowDays = 365

// ScheduledDays returns the set of days that have at least one scheduled
// occurrence, for rendering presence dots on calendar grids.
//
// A zero rng defaults to a rolling two-year window centered on today.
// Each entry's own start day is always included, even outside the window;
// only the recurrence expansion is range-filtered.
func ScheduledDays(entries []CalendarEntry, rng Range) DaySet {
	if rng.IsZero() {
		today := Today()
		rng = Range{From: today.Add(-scheduledWindowDays), To: today.Add(scheduledWindowDays)}
	}

	days := make(DaySet)
	for _, e := range entries {
		days.Add(e.StartDay())
		if e.Recurrence != nil {
			for _, d := range ExpandOccurrences(e.StartTime, *e.Recurrence, rng) {
				days.Add(d)
			}
		}
	}
	return days
}
