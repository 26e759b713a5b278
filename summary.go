package daykeep

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// SummaryMode selects how a dashboard section condenses its records.
type SummaryMode int

const (
	// ModeStats shows counters.
	ModeStats SummaryMode = iota
	// ModeRecent shows fewer counters plus the latest record.
	ModeRecent
)

func (m SummaryMode) String() string {
	if m == ModeRecent {
		return "recent"
	}
	return "stats"
}

// ParseSummaryMode parses "stats" or "recent".
func ParseSummaryMode(s string) (SummaryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stats":
		return ModeStats, nil
	case "recent":
		return ModeRecent, nil
	default:
		return ModeStats, fmt.Errorf("unknown summary mode %q", s)
	}
}

func (m SummaryMode) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

func (m *SummaryMode) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := ParseSummaryMode(str)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Stat is one labeled figure of a section summary.
type Stat struct {
	Label string
	Value string
}

// SummaryResult is the condensed view of one dashboard section.
type SummaryResult struct {
	Stats     []Stat
	Secondary string
	Empty     bool
}

// TasksSummary condenses the task list for the dashboard.
func TasksSummary(tasks []Task, mode SummaryMode, now time.Time) SummaryResult {
	if len(tasks) == 0 {
		return SummaryResult{Empty: true}
	}

	completed := 0
	overdue := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
		if t.Overdue(now) {
			overdue++
		}
	}

	if mode == ModeStats {
		stats := []Stat{
			{"Total", fmt.Sprint(len(tasks))},
			{"Completed", fmt.Sprint(completed)},
			{"Pending", fmt.Sprint(len(tasks) - completed)},
		}
		if overdue > 0 {
			stats = append(stats, Stat{"Overdue", fmt.Sprint(overdue)})
		}
		return SummaryResult{Stats: stats}
	}

	latest := tasks[0]
	for _, t := range tasks[1:] {
		if t.CreatedAt > latest.CreatedAt {
			latest = t
		}
	}
	return SummaryResult{
		Stats: []Stat{
			{"Total", fmt.Sprint(len(tasks))},
			{"Completed", fmt.Sprint(completed)},
		},
		Secondary: "Latest: " + latest.Description,
	}
}

// GoalsSummary condenses the goal list for the dashboard.
func GoalsSummary(goals []Goal, mode SummaryMode) SummaryResult {
	if len(goals) == 0 {
		return SummaryResult{Empty: true}
	}

	var sum int64
	completed := 0
	for _, g := range goals {
		sum += g.Progress
		if g.Completed() {
			completed++
		}
	}
	avg := fmt.Sprintf("%d%%", (sum+int64(len(goals))/2)/int64(len(goals)))

	if mode == ModeStats {
		return SummaryResult{Stats: []Stat{
			{"Total", fmt.Sprint(len(goals))},
			{"Completed", fmt.Sprint(completed)},
			{"Avg Progress", avg},
		}}
	}

	latest := goals[len(goals)-1]
	return SummaryResult{
		Stats: []Stat{
			{"Total", fmt.Sprint(len(goals))},
			{"Avg Progress", avg},
		},
		Secondary: "Latest: " + latest.Title,
	}
}

// CalendarSummary condenses the calendar for the dashboard: how many
// entries start today, how many are still ahead.
func CalendarSummary(entries []CalendarEntry, mode SummaryMode, now time.Time) SummaryResult {
	if len(entries) == 0 {
		return SummaryResult{Empty: true}
	}

	today := DateOf(now)
	nowNanos := now.UnixNano()
	var upcoming []CalendarEntry
	todayCount := 0
	for _, e := range entries {
		if e.StartTime > nowNanos {
			upcoming = append(upcoming, e)
		}
		if e.StartDay() == today {
			todayCount++
		}
	}

	if mode == ModeStats {
		return SummaryResult{Stats: []Stat{
			{"Total", fmt.Sprint(len(entries))},
			{"Today", fmt.Sprint(todayCount)},
			{"Upcoming", fmt.Sprint(len(upcoming))},
		}}
	}

	secondary := "No upcoming events"
	if len(upcoming) > 0 {
		sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].StartTime < upcoming[j].StartTime })
		next := upcoming[0]
		secondary = fmt.Sprintf("Next: %s on %s", next.Title, next.StartDay())
	}
	return SummaryResult{
		Stats: []Stat{
			{"Total", fmt.Sprint(len(entries))},
			{"Upcoming", fmt.Sprint(len(upcoming))},
		},
		Secondary: secondary,
	}
}

// BudgetSummary condenses the current month's budget lines.
func BudgetSummary(items []BudgetItem, mode SummaryMode, now time.Time) SummaryResult {
	if len(items) == 0 {
		return SummaryResult{Empty: true}
	}

	var income, expenses Money
	monthCount := 0
	for _, item := range items {
		day := item.Day()
		if day.Year() != now.Year() || day.Month() != now.Month() {
			continue
		}
		monthCount++
		switch item.Type {
		case Income:
			income = income.Add(item.Amount())
		case Expense:
			expenses = expenses.Add(item.Amount())
		}
	}
	net := income.Sub(expenses)

	if mode == ModeStats {
		return SummaryResult{Stats: []Stat{
			{"Income", income.String()},
			{"Expenses", expenses.String()},
			{"Net", net.String()},
		}}
	}

	latest := items[0]
	for _, item := range items[1:] {
		if item.Date > latest.Date {
			latest = item
		}
	}
	return SummaryResult{
		Stats: []Stat{
			{"This Month", fmt.Sprint(monthCount)},
			{"Net", net.String()},
		},
		Secondary: fmt.Sprintf("Latest: %s (%s)", latest.Description, latest.Amount()),
	}
}
