package daykeep

import (
	"sort"
	"time"
)

// Store holds every tracked entity in memory and exposes the CRUD surface
// the views consume. Records are keyed by opaque sequential numeric ids;
// the store never computes anything, derived projections live in the pure
// functions of this package.
type Store struct {
	now    func() time.Time
	nextID int64

	tasks   map[int64]Task
	goals   map[int64]Goal
	entries map[int64]CalendarEntry
	budget  map[int64]BudgetItem
	crypto  map[int64]CryptoEntry
	profile string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		now:     time.Now,
		nextID:  1,
		tasks:   make(map[int64]Task),
		goals:   make(map[int64]Goal),
		entries: make(map[int64]CalendarEntry),
		budget:  make(map[int64]BudgetItem),
		crypto:  make(map[int64]CryptoEntry),
	}
}

func (s *Store) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// claimID records an externally assigned id (decoding a snapshot) so the
// allocator never reuses it.
func (s *Store) claimID(id int64) {
	if id >= s.nextID {
		s.nextID = id + 1
	}
}

// Tasks

// CreateTask adds a task and returns it.
func (s *Store) CreateTask(description string, dueDate *int64, typ TaskType) Task {
	t := Task{
		ID:          s.allocID(),
		Description: description,
		DueDate:     dueDate,
		Type:        typ,
		CreatedAt:   s.now().UnixNano(),
	}
	s.tasks[t.ID] = t
	return t
}

// UpdateTask rewrites a task's mutable fields. It returns false if the id
// is unknown.
func (s *Store) UpdateTask(id int64, description string, dueDate *int64, typ TaskType) (Task, bool) {
	t, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}
	t.Description = description
	t.DueDate = dueDate
	t.Type = typ
	s.tasks[id] = t
	return t, true
}

// ToggleTask flips a task's completion state.
func (s *Store) ToggleTask(id int64) (Task, bool) {
	t, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}
	t.Completed = !t.Completed
	s.tasks[id] = t
	return t, true
}

// DeleteTask removes a task. It returns false if the id is unknown.
func (s *Store) DeleteTask(id int64) bool {
	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

// Tasks returns all tasks ordered by id.
func (s *Store) Tasks() []Task {
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Goals

// CreateGoal adds a goal with zero progress.
func (s *Store) CreateGoal(title, description string, targetDate *int64) Goal {
	g := Goal{
		ID:          s.allocID(),
		Title:       title,
		Description: description,
		TargetDate:  targetDate,
	}
	s.goals[g.ID] = g
	return g
}

// UpdateGoal rewrites a goal's descriptive fields, progress untouched.
func (s *Store) UpdateGoal(id int64, title, description string, targetDate *int64) (Goal, bool) {
	g, ok := s.goals[id]
	if !ok {
		return Goal{}, false
	}
	g.Title = title
	g.Description = description
	g.TargetDate = targetDate
	s.goals[id] = g
	return g, true
}

// UpdateGoalProgress sets a goal's progress gauge.
func (s *Store) UpdateGoalProgress(id int64, progress int64) (Goal, bool) {
	g, ok := s.goals[id]
	if !ok {
		return Goal{}, false
	}
	g.Progress = progress
	s.goals[id] = g
	return g, true
}

// DeleteGoal removes a goal.
func (s *Store) DeleteGoal(id int64) bool {
	if _, ok := s.goals[id]; !ok {
		return false
	}
	delete(s.goals, id)
	return true
}

// Goals returns all goals ordered by id.
func (s *Store) Goals() []Goal {
	out := make([]Goal, 0, len(s.goals))
	for _, g := range s.goals {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Calendar

// CreateEntry adds a calendar entry.
func (s *Store) CreateEntry(title, description string, startTime int64, endTime *int64, recurrence *Recurrence, taskID *int64) CalendarEntry {
	e := CalendarEntry{
		ID:          s.allocID(),
		Title:       title,
		Description: description,
		StartTime:   startTime,
		EndTime:     endTime,
		Recurrence:  recurrence,
		TaskID:      taskID,
	}
	s.entries[e.ID] = e
	return e
}

// CreateTaskEntry creates a task and a calendar entry mirroring it, linked
// through the entry's TaskID.
func (s *Store) CreateTaskEntry(title, description string, startTime int64, endTime *int64, recurrence *Recurrence, typ TaskType) (Task, CalendarEntry) {
	due := startTime
	task := s.CreateTask(title, &due, typ)
	entry := s.CreateEntry(title, description, startTime, endTime, recurrence, &task.ID)
	return task, entry
}

// UpdateEntry rewrites a calendar entry's mutable fields.
func (s *Store) UpdateEntry(id int64, title, description string, startTime int64, endTime *int64, recurrence *Recurrence, taskID *int64) (CalendarEntry, bool) {
	e, ok := s.entries[id]
	if !ok {
		return CalendarEntry{}, false
	}
	e.Title = title
	e.Description = description
	e.StartTime = startTime
	e.EndTime = endTime
	e.Recurrence = recurrence
	e.TaskID = taskID
	s.entries[id] = e
	return e, true
}

// DeleteEntry removes a calendar entry.
func (s *Store) DeleteEntry(id int64) bool {
	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	return true
}

// Entries returns all calendar entries ordered by id.
func (s *Store) Entries() []CalendarEntry {
	out := make([]CalendarEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RecurringEntries returns the entries that carry a repeat rule.
func (s *Store) RecurringEntries() []CalendarEntry {
	var out []CalendarEntry
	for _, e := range s.Entries() {
		if e.IsRecurring() {
			out = append(out, e)
		}
	}
	return out
}

// Budget

// CreateBudgetItem adds a budget line.
func (s *Store) CreateBudgetItem(amountCents int64, description string, date int64, typ BudgetItemType) BudgetItem {
	b := BudgetItem{
		ID:          s.allocID(),
		Date:        date,
		Description: description,
		Type:        typ,
		AmountCents: amountCents,
	}
	s.budget[b.ID] = b
	return b
}

// UpdateBudgetItem rewrites a budget line.
func (s *Store) UpdateBudgetItem(id, amountCents int64, description string, date int64, typ BudgetItemType) (BudgetItem, bool) {
	b, ok := s.budget[id]
	if !ok {
		return BudgetItem{}, false
	}
	b.AmountCents = amountCents
	b.Description = description
	b.Date = date
	b.Type = typ
	s.budget[id] = b
	return b, true
}

// DeleteBudgetItem removes a budget line.
func (s *Store) DeleteBudgetItem(id int64) bool {
	if _, ok := s.budget[id]; !ok {
		return false
	}
	delete(s.budget, id)
	return true
}

// BudgetItems returns all budget lines ordered by id.
func (s *Store) BudgetItems() []BudgetItem {
	out := make([]BudgetItem, 0, len(s.budget))
	for _, b := range s.budget {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Crypto

// CreateCryptoEntry adds a crypto holding.
func (s *Store) CreateCryptoEntry(symbol string, amount, purchasePriceCents, currentPriceCents int64) CryptoEntry {
	now := s.now().UnixNano()
	e := CryptoEntry{
		ID:                 s.allocID(),
		Symbol:             NormalizeSymbol(symbol),
		Amount:             amount,
		PurchasePriceCents: purchasePriceCents,
		CurrentPriceCents:  currentPriceCents,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.crypto[e.ID] = e
	return e
}

// UpdateCryptoEntry rewrites a holding's figures and stamps UpdatedAt.
func (s *Store) UpdateCryptoEntry(id, amount, purchasePriceCents, currentPriceCents int64) (CryptoEntry, bool) {
	e, ok := s.crypto[id]
	if !ok {
		return CryptoEntry{}, false
	}
	e.Amount = amount
	e.PurchasePriceCents = purchasePriceCents
	e.CurrentPriceCents = currentPriceCents
	e.UpdatedAt = s.now().UnixNano()
	s.crypto[id] = e
	return e, true
}

// SetCurrentPrice updates only the stored current price of a holding.
func (s *Store) SetCurrentPrice(id, currentPriceCents int64) (CryptoEntry, bool) {
	e, ok := s.crypto[id]
	if !ok {
		return CryptoEntry{}, false
	}
	e.CurrentPriceCents = currentPriceCents
	e.UpdatedAt = s.now().UnixNano()
	s.crypto[id] = e
	return e, true
}

// DeleteCryptoEntry removes a holding.
func (s *Store) DeleteCryptoEntry(id int64) bool {
	if _, ok := s.crypto[id]; !ok {
		return false
	}
	delete(s.crypto, id)
	return true
}

// CryptoEntries returns all holdings ordered by id.
func (s *Store) CryptoEntries() []CryptoEntry {
	out := make([]CryptoEntry, 0, len(s.crypto))
	for _, e := range s.crypto {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Profile

// ProfileName returns the stored user profile name, empty if unset.
func (s *Store) ProfileName() string { return s.profile }

// SetProfileName stores the user profile name.
func (s *Store) SetProfileName(name string) { s.profile = name }
