package daykeep

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// View preferences persist through an injected key-value store rather
// than ambient global state; any storage with string keys and values can
// back them.

// KVStore is the persistence boundary for preferences.
type KVStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// FileKV is a KVStore backed by a single JSON file. Every Set writes
// through.
type FileKV struct {
	path   string
	values map[string]string
}

// OpenFileKV loads (or initializes) a JSON-file key-value store.
func OpenFileKV(path string) (*FileKV, error) {
	kv := &FileKV{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return kv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preferences file %q: %w", path, err)
	}
	if err := json.Unmarshal(data, &kv.values); err != nil {
		return nil, fmt.Errorf("parse preferences file %q: %w", path, err)
	}
	return kv, nil
}

func (kv *FileKV) Get(key string) (string, bool) {
	v, ok := kv.values[key]
	return v, ok
}

func (kv *FileKV) Set(key, value string) error {
	kv.values[key] = value
	data, err := json.MarshalIndent(kv.values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(kv.path, data, 0644)
}

// MemKV is an in-memory KVStore, handy for tests.
type MemKV map[string]string

func (kv MemKV) Get(key string) (string, bool) { v, ok := kv[key]; return v, ok }
func (kv MemKV) Set(key, value string) error   { kv[key] = value; return nil }

// CalendarView selects the calendar grid granularity.
type CalendarView int

const (
	ViewMonth CalendarView = iota
	ViewWeek
	ViewYear
)

func (v CalendarView) String() string {
	switch v {
	case ViewWeek:
		return "week"
	case ViewYear:
		return "year"
	default:
		return "month"
	}
}

// ParseCalendarView parses "month", "week" or "year".
func ParseCalendarView(s string) (CalendarView, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month":
		return ViewMonth, nil
	case "week":
		return ViewWeek, nil
	case "year":
		return ViewYear, nil
	default:
		return ViewMonth, fmt.Errorf("unknown calendar view %q", s)
	}
}

// BudgetPeriod selects the budget summary window.
type BudgetPeriod int

const (
	PeriodMonth BudgetPeriod = iota
	PeriodAll
)

func (p BudgetPeriod) String() string {
	if p == PeriodAll {
		return "all"
	}
	return "month"
}

// ParseBudgetPeriod parses "month" or "all".
func ParseBudgetPeriod(s string) (BudgetPeriod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month":
		return PeriodMonth, nil
	case "all":
		return PeriodAll, nil
	default:
		return PeriodMonth, fmt.Errorf("unknown budget period %q", s)
	}
}

// SectionPref is the dashboard preference of one section.
type SectionPref struct {
	Enabled bool        `json:"enabled"`
	Mode    SummaryMode `json:"mode"`
}

// DashboardPrefs holds the per-section dashboard preferences.
type DashboardPrefs struct {
	Tasks    SectionPref `json:"tasks"`
	Goals    SectionPref `json:"goals"`
	Calendar SectionPref `json:"calendar"`
	Budget   SectionPref `json:"budget"`
}

// DefaultDashboardPrefs enables every section in stats mode.
func DefaultDashboardPrefs() DashboardPrefs {
	on := SectionPref{Enabled: true, Mode: ModeStats}
	return DashboardPrefs{Tasks: on, Goals: on, Calendar: on, Budget: on}
}

const (
	keyCalendarView  = "calendar-view-preference"
	keyBudgetPeriod  = "budget-summary-period"
	keyDashboardPref = "dashboard-summary-preferences"
)

// Preferences gives typed access to the stored view preferences. Corrupt
// or missing values fall back to the defaults.
type Preferences struct {
	kv KVStore
}

// NewPreferences wraps a KVStore with typed accessors.
func NewPreferences(kv KVStore) *Preferences { return &Preferences{kv: kv} }

// CalendarView returns the stored calendar view, default month.
func (p *Preferences) CalendarView() CalendarView {
	if raw, ok := p.kv.Get(keyCalendarView); ok {
		if v, err := ParseCalendarView(raw); err == nil {
			return v
		}
	}
	return ViewMonth
}

func (p *Preferences) SetCalendarView(v CalendarView) error {
	return p.kv.Set(keyCalendarView, v.String())
}

// BudgetPeriod returns the stored budget summary period, default month.
func (p *Preferences) BudgetPeriod() BudgetPeriod {
	if raw, ok := p.kv.Get(keyBudgetPeriod); ok {
		if v, err := ParseBudgetPeriod(raw); err == nil {
			return v
		}
	}
	return PeriodMonth
}

func (p *Preferences) SetBudgetPeriod(v BudgetPeriod) error {
	return p.kv.Set(keyBudgetPeriod, v.String())
}

// Dashboard returns the stored dashboard preferences, default all
// sections enabled in stats mode.
func (p *Preferences) Dashboard() DashboardPrefs {
	prefs := DefaultDashboardPrefs()
	if raw, ok := p.kv.Get(keyDashboardPref); ok {
		if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
			return DefaultDashboardPrefs()
		}
	}
	return prefs
}

func (p *Preferences) SetDashboard(prefs DashboardPrefs) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return p.kv.Set(keyDashboardPref, string(data))
}
