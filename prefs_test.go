package daykeep

import (
	"path/filepath"
	"testing"
)

func TestPreferencesDefaults(t *testing.T) {
	p := NewPreferences(MemKV{})

	if p.CalendarView() != ViewMonth {
		t.Errorf("default calendar view = %v, want month", p.CalendarView())
	}
	if p.BudgetPeriod() != PeriodMonth {
		t.Errorf("default budget period = %v, want month", p.BudgetPeriod())
	}
	dash := p.Dashboard()
	if !dash.Tasks.Enabled || !dash.Budget.Enabled {
		t.Errorf("all dashboard sections must default to enabled: %+v", dash)
	}
	if dash.Calendar.Mode != ModeStats {
		t.Errorf("default mode = %v, want stats", dash.Calendar.Mode)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	kv := MemKV{}
	p := NewPreferences(kv)

	if err := p.SetCalendarView(ViewWeek); err != nil {
		t.Fatal(err)
	}
	if err := p.SetBudgetPeriod(PeriodAll); err != nil {
		t.Fatal(err)
	}
	dash := p.Dashboard()
	dash.Goals.Enabled = false
	dash.Tasks.Mode = ModeRecent
	if err := p.SetDashboard(dash); err != nil {
		t.Fatal(err)
	}

	// A fresh Preferences over the same store sees the same values.
	q := NewPreferences(kv)
	if q.CalendarView() != ViewWeek {
		t.Errorf("calendar view = %v, want week", q.CalendarView())
	}
	if q.BudgetPeriod() != PeriodAll {
		t.Errorf("budget period = %v, want all", q.BudgetPeriod())
	}
	got := q.Dashboard()
	if got.Goals.Enabled {
		t.Errorf("goals section must stay disabled")
	}
	if got.Tasks.Mode != ModeRecent {
		t.Errorf("tasks mode = %v, want recent", got.Tasks.Mode)
	}
}

// Corrupt stored values fall back to the defaults instead of failing.
func TestPreferencesCorruptValues(t *testing.T) {
	kv := MemKV{
		"calendar-view-preference":      "sideways",
		"budget-summary-period":         "decade",
		"dashboard-summary-preferences": "{not json",
	}
	p := NewPreferences(kv)

	if p.CalendarView() != ViewMonth {
		t.Errorf("corrupt calendar view must default to month")
	}
	if p.BudgetPeriod() != PeriodMonth {
		t.Errorf("corrupt budget period must default to month")
	}
	if dash := p.Dashboard(); !dash.Tasks.Enabled {
		t.Errorf("corrupt dashboard prefs must default to all enabled")
	}
}

func TestFileKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	kv, err := OpenFileKV(path)
	if err != nil {
		t.Fatalf("OpenFileKV on a missing file: %v", err)
	}
	if err := kv.Set("calendar-view-preference", "year"); err != nil {
		t.Fatal(err)
	}

	reopened, err := OpenFileKV(path)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := reopened.Get("calendar-view-preference"); !ok || v != "year" {
		t.Errorf("Get = (%q, %v), want (year, true)", v, ok)
	}
	if NewPreferences(reopened).CalendarView() != ViewYear {
		t.Errorf("reopened preferences must see the stored view")
	}
}
