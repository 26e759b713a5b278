package daykeep

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreIDsAreNeverReused(t *testing.T) {
	s := NewStore()
	task := s.CreateTask("one", nil, DailyTask())
	goal := s.CreateGoal("two", "", nil)

	if task.ID == goal.ID {
		t.Fatalf("ids must be unique across entity kinds, both got %d", task.ID)
	}

	if !s.DeleteTask(task.ID) {
		t.Fatal("DeleteTask failed")
	}
	next := s.CreateGoal("three", "", nil)
	if next.ID == task.ID {
		t.Errorf("deleted id %d was reused", task.ID)
	}
}

func TestStoreToggleTask(t *testing.T) {
	s := NewStore()
	task := s.CreateTask("flip me", nil, WeekendTask())

	got, ok := s.ToggleTask(task.ID)
	if !ok || !got.Completed {
		t.Errorf("ToggleTask = (%+v, %v), want completed", got, ok)
	}
	got, _ = s.ToggleTask(task.ID)
	if got.Completed {
		t.Errorf("second toggle must flip back to pending")
	}

	if _, ok := s.ToggleTask(999); ok {
		t.Errorf("toggling an unknown id must fail")
	}
}

func TestStoreCreateTaskEntry(t *testing.T) {
	s := NewStore()
	due := NewDate(2026, time.September, 15).StartNanos()

	task, entry := s.CreateTaskEntry("Water the plants", "", due, nil, nil, DayOfWeekTask(time.Monday))

	if entry.TaskID == nil || *entry.TaskID != task.ID {
		t.Fatalf("entry must link back to the task: %+v", entry)
	}
	if entry.StartTime != due {
		t.Errorf("entry start = %d, want the task due date %d", entry.StartTime, due)
	}
	if entry.Title != task.Description {
		t.Errorf("entry title = %q, want %q", entry.Title, task.Description)
	}
}

func TestStoreGoalProgress(t *testing.T) {
	s := NewStore()
	g := s.CreateGoal("read 12 books", "", nil)

	if g.Completed() {
		t.Errorf("fresh goal must not be completed")
	}
	g, ok := s.UpdateGoalProgress(g.ID, 100)
	if !ok || !g.Completed() {
		t.Errorf("goal at 100%% must be completed: %+v", g)
	}
}

func TestStoreCryptoNormalizesSymbol(t *testing.T) {
	s := NewStore()
	e := s.CreateCryptoEntry(" btc ", MicroFromUnits(1), 100, 100)
	if e.Symbol != "BTC" {
		t.Errorf("Symbol = %q, want BTC", e.Symbol)
	}
	if e.CreatedAt == 0 || e.UpdatedAt == 0 {
		t.Errorf("timestamps must be stamped on creation: %+v", e)
	}
}

func TestStoreSetCurrentPrice(t *testing.T) {
	s := NewStore()
	s.now = func() time.Time { return time.Unix(0, 1000) }
	e := s.CreateCryptoEntry("ETH", MicroFromUnits(2), 100000, 100000)

	s.now = func() time.Time { return time.Unix(0, 2000) }
	updated, ok := s.SetCurrentPrice(e.ID, 150000)
	if !ok {
		t.Fatal("SetCurrentPrice failed")
	}
	if updated.CurrentPriceCents != 150000 {
		t.Errorf("CurrentPriceCents = %d, want 150000", updated.CurrentPriceCents)
	}
	if updated.PurchasePriceCents != 100000 {
		t.Errorf("PurchasePriceCents must not change")
	}
	if updated.UpdatedAt != 2000 {
		t.Errorf("UpdatedAt = %d, want 2000", updated.UpdatedAt)
	}
	if updated.CreatedAt != 1000 {
		t.Errorf("CreatedAt must not change, got %d", updated.CreatedAt)
	}
}

func TestStoreListsSortedByID(t *testing.T) {
	s := NewStore()
	for i := 0; i < 5; i++ {
		s.CreateGoal("g", "", nil)
	}
	goals := s.Goals()
	for i := 1; i < len(goals); i++ {
		if goals[i-1].ID >= goals[i].ID {
			t.Fatalf("goals out of order: %v then %v", goals[i-1].ID, goals[i].ID)
		}
	}
}

// populated returns a store with one record of each kind.
func populated(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	due := NewDate(2026, time.September, 15).StartNanos()
	weekly := Weekly

	s.CreateTask("water plants", &due, DayOfWeekTask(time.Monday))
	s.CreateGoal("read 12 books", "one a month", &due)
	s.CreateEntry("team sync", "", due, nil, &weekly, nil)
	s.CreateBudgetItem(1250, "lunch", due, Expense)
	s.CreateCryptoEntry("BTC", MicroFromUnits(0.5), 6000000, 6500000)
	s.SetProfileName("Alex")
	return s
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := populated(t)

	var buf bytes.Buffer
	if err := EncodeStore(&buf, s); err != nil {
		t.Fatalf("EncodeStore: %v", err)
	}

	decoded, err := DecodeStore(&buf)
	if err != nil {
		t.Fatalf("DecodeStore: %v", err)
	}

	if got, want := decoded.Tasks(), s.Tasks(); len(got) != len(want) {
		t.Fatalf("tasks: got %d, want %d", len(got), len(want))
	} else {
		for i := range want {
			if got[i].ID != want[i].ID || got[i].Description != want[i].Description || got[i].Type != want[i].Type {
				t.Errorf("task[%d] = %+v, want %+v", i, got[i], want[i])
			}
		}
	}
	if got, want := decoded.Goals(), s.Goals(); len(got) != 1 ||
		got[0].ID != want[0].ID || got[0].Title != want[0].Title ||
		got[0].Progress != want[0].Progress ||
		(got[0].TargetDate == nil) != (want[0].TargetDate == nil) {
		t.Errorf("goals: got %+v, want %+v", got, want)
	}
	if got := decoded.Entries(); len(got) != 1 || got[0].Recurrence == nil || *got[0].Recurrence != Weekly {
		t.Errorf("entries: %+v", got)
	}
	if got, want := decoded.BudgetItems(), s.BudgetItems(); len(got) != 1 || got[0] != want[0] {
		t.Errorf("budget: got %+v, want %+v", got, want)
	}
	if got, want := decoded.CryptoEntries(), s.CryptoEntries(); len(got) != 1 || got[0] != want[0] {
		t.Errorf("crypto: got %+v, want %+v", got, want)
	}
	if decoded.ProfileName() != "Alex" {
		t.Errorf("profile = %q, want Alex", decoded.ProfileName())
	}

	// Decoded ids must not collide with existing ones.
	next := decoded.CreateTask("fresh", nil, DailyTask())
	for _, task := range s.Tasks() {
		if next.ID == task.ID {
			t.Errorf("decoded store reissued id %d", next.ID)
		}
	}
}

func TestSaveLoadStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daykeep.jsonl")

	s := populated(t)
	if err := SaveStore(path, s); err != nil {
		t.Fatalf("SaveStore: %v", err)
	}

	loaded, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	if len(loaded.Tasks()) != 1 || len(loaded.CryptoEntries()) != 1 {
		t.Errorf("loaded store incomplete: %d tasks, %d crypto", len(loaded.Tasks()), len(loaded.CryptoEntries()))
	}
}

// A missing ledger file is not an error, it is an empty tracker.
func TestLoadStoreMissingFile(t *testing.T) {
	s, err := LoadStore(filepath.Join(t.TempDir(), "absent.jsonl"))
	if err != nil {
		t.Fatalf("LoadStore on a missing file: %v", err)
	}
	if len(s.Tasks()) != 0 {
		t.Errorf("missing file must yield an empty store")
	}
}
