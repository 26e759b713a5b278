package daykeep

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteSchema creates the snapshot tables. All columns mirror the JSONL
// record fields; nullable columns are optionals.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	completed INTEGER NOT NULL,
	due_date INTEGER,
	task_type TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS goals (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	progress INTEGER NOT NULL,
	target_date INTEGER
);
CREATE TABLE IF NOT EXISTS calendar_entries (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	start_time INTEGER NOT NULL,
	end_time INTEGER,
	recurrence TEXT,
	task_id INTEGER
);
CREATE TABLE IF NOT EXISTS budget_items (
	id INTEGER PRIMARY KEY,
	date INTEGER NOT NULL,
	description TEXT NOT NULL,
	item_type TEXT NOT NULL,
	amount_cents INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS crypto_entries (
	id INTEGER PRIMARY KEY,
	symbol TEXT NOT NULL,
	amount INTEGER NOT NULL,
	purchase_price_cents INTEGER NOT NULL,
	current_price_cents INTEGER NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS profile (
	name TEXT NOT NULL
);
`

// OpenSQLiteStore loads a store snapshot from a sqlite database, creating
// the schema on first use.
func OpenSQLiteStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("could not create schema: %w", err)
	}

	s := NewStore()
	for _, load := range []func(*sql.DB, *Store) error{
		loadTasks, loadGoals, loadEntries, loadBudget, loadCrypto, loadProfile,
	} {
		if err := load(db, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func loadTasks(db *sql.DB, s *Store) error {
	rows, err := db.Query(`SELECT id, description, completed, due_date, task_type, created_at FROM tasks`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var t Task
		var completed int
		var due sql.NullInt64
		var typ string
		if err := rows.Scan(&t.ID, &t.Description, &completed, &due, &typ, &t.CreatedAt); err != nil {
			return err
		}
		t.Completed = completed != 0
		if due.Valid {
			t.DueDate = &due.Int64
		}
		if t.Type, err = ParseTaskType(typ); err != nil {
			return err
		}
		s.tasks[t.ID] = t
		s.claimID(t.ID)
	}
	return rows.Err()
}

func loadGoals(db *sql.DB, s *Store) error {
	rows, err := db.Query(`SELECT id, title, description, progress, target_date FROM goals`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var g Goal
		var target sql.NullInt64
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &g.Progress, &target); err != nil {
			return err
		}
		if target.Valid {
			g.TargetDate = &target.Int64
		}
		s.goals[g.ID] = g
		s.claimID(g.ID)
	}
	return rows.Err()
}

func loadEntries(db *sql.DB, s *Store) error {
	rows, err := db.Query(`SELECT id, title, description, start_time, end_time, recurrence, task_id FROM calendar_entries`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var e CalendarEntry
		var end, taskID sql.NullInt64
		var rec sql.NullString
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.StartTime, &end, &rec, &taskID); err != nil {
			return err
		}
		if end.Valid {
			e.EndTime = &end.Int64
		}
		if taskID.Valid {
			e.TaskID = &taskID.Int64
		}
		if rec.Valid {
			r, err := ParseRecurrence(rec.String)
			if err != nil {
				return err
			}
			e.Recurrence = &r
		}
		s.entries[e.ID] = e
		s.claimID(e.ID)
	}
	return rows.Err()
}

func loadBudget(db *sql.DB, s *Store) error {
	rows, err := db.Query(`SELECT id, date, description, item_type, amount_cents FROM budget_items`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var b BudgetItem
		var typ string
		if err := rows.Scan(&b.ID, &b.Date, &b.Description, &typ, &b.AmountCents); err != nil {
			return err
		}
		if b.Type, err = ParseBudgetItemType(typ); err != nil {
			return err
		}
		s.budget[b.ID] = b
		s.claimID(b.ID)
	}
	return rows.Err()
}

func loadCrypto(db *sql.DB, s *Store) error {
	rows, err := db.Query(`SELECT id, symbol, amount, purchase_price_cents, current_price_cents, created_at, updated_at FROM crypto_entries`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var e CryptoEntry
		if err := rows.Scan(&e.ID, &e.Symbol, &e.Amount, &e.PurchasePriceCents, &e.CurrentPriceCents, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return err
		}
		s.crypto[e.ID] = e
		s.claimID(e.ID)
	}
	return rows.Err()
}

func loadProfile(db *sql.DB, s *Store) error {
	err := db.QueryRow(`SELECT name FROM profile LIMIT 1`).Scan(&s.profile)
	if err == sql.ErrNoRows {
		return nil
	}
	return err
}

// SaveSQLiteStore rewrites the sqlite snapshot with the store's content.
func SaveSQLiteStore(path string, s *Store) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("could not create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"tasks", "goals", "calendar_entries", "budget_items", "crypto_entries", "profile"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	for _, t := range s.Tasks() {
		completed := 0
		if t.Completed {
			completed = 1
		}
		if _, err := tx.Exec(
			`INSERT INTO tasks (id, description, completed, due_date, task_type, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, t.Description, completed, nullInt(t.DueDate), t.Type.String(), t.CreatedAt,
		); err != nil {
			return err
		}
	}
	for _, g := range s.Goals() {
		if _, err := tx.Exec(
			`INSERT INTO goals (id, title, description, progress, target_date) VALUES (?, ?, ?, ?, ?)`,
			g.ID, g.Title, g.Description, g.Progress, nullInt(g.TargetDate),
		); err != nil {
			return err
		}
	}
	for _, e := range s.Entries() {
		var rec any
		if e.Recurrence != nil {
			rec = e.Recurrence.String()
		}
		if _, err := tx.Exec(
			`INSERT INTO calendar_entries (id, title, description, start_time, end_time, recurrence, task_id) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Title, e.Description, e.StartTime, nullInt(e.EndTime), rec, nullInt(e.TaskID),
		); err != nil {
			return err
		}
	}
	for _, b := range s.BudgetItems() {
		if _, err := tx.Exec(
			`INSERT INTO budget_items (id, date, description, item_type, amount_cents) VALUES (?, ?, ?, ?, ?)`,
			b.ID, b.Date, b.Description, b.Type.String(), b.AmountCents,
		); err != nil {
			return err
		}
	}
	for _, e := range s.CryptoEntries() {
		if _, err := tx.Exec(
			`INSERT INTO crypto_entries (id, symbol, amount, purchase_price_cents, current_price_cents, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Symbol, e.Amount, e.PurchasePriceCents, e.CurrentPriceCents, e.CreatedAt, e.UpdatedAt,
		); err != nil {
			return err
		}
	}
	if s.profile != "" {
		if _, err := tx.Exec(`INSERT INTO profile (name) VALUES (?)`, s.profile); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func nullInt(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
