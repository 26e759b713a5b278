package daykeep

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// The store persists as JSONL: one record per line, each carrying a
// "kind" discriminator so lines stay self-describing and the file remains
// hand-editable and diff-friendly.

const (
	kindTask     = "task"
	kindGoal     = "goal"
	kindCalendar = "calendar"
	kindBudget   = "budget"
	kindCrypto   = "crypto"
	kindProfile  = "profile"
)

type taskRecord struct {
	Kind string `json:"kind"`
	Task
}

type goalRecord struct {
	Kind string `json:"kind"`
	Goal
}

type calendarRecord struct {
	Kind string `json:"kind"`
	CalendarEntry
}

type budgetRecord struct {
	Kind string `json:"kind"`
	BudgetItem
}

type cryptoRecord struct {
	Kind string `json:"kind"`
	CryptoEntry
}

type profileRecord struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// EncodeStore writes every record of the store as JSONL, grouped by kind
// and ordered by id, so the output is deterministic.
func EncodeStore(w io.Writer, s *Store) error {
	enc := json.NewEncoder(w)
	for _, t := range s.Tasks() {
		if err := enc.Encode(taskRecord{kindTask, t}); err != nil {
			return err
		}
	}
	for _, g := range s.Goals() {
		if err := enc.Encode(goalRecord{kindGoal, g}); err != nil {
			return err
		}
	}
	for _, e := range s.Entries() {
		if err := enc.Encode(calendarRecord{kindCalendar, e}); err != nil {
			return err
		}
	}
	for _, b := range s.BudgetItems() {
		if err := enc.Encode(budgetRecord{kindBudget, b}); err != nil {
			return err
		}
	}
	for _, c := range s.CryptoEntries() {
		if err := enc.Encode(cryptoRecord{kindCrypto, c}); err != nil {
			return err
		}
	}
	if s.profile != "" {
		if err := enc.Encode(profileRecord{kindProfile, s.profile}); err != nil {
			return err
		}
	}
	return nil
}

// DecodeStore reads a JSONL stream, decodes each line by its kind, and
// rebuilds the store, preserving record ids.
func DecodeStore(r io.Reader) (*Store, error) {
	s := NewStore()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // skip empty lines
		}

		var identifier struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify kind in line %q: %w", string(line), err)
		}

		switch identifier.Kind {
		case kindTask:
			var rec taskRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, err
			}
			s.tasks[rec.Task.ID] = rec.Task
			s.claimID(rec.Task.ID)
		case kindGoal:
			var rec goalRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, err
			}
			s.goals[rec.Goal.ID] = rec.Goal
			s.claimID(rec.Goal.ID)
		case kindCalendar:
			var rec calendarRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, err
			}
			s.entries[rec.CalendarEntry.ID] = rec.CalendarEntry
			s.claimID(rec.CalendarEntry.ID)
		case kindBudget:
			var rec budgetRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, err
			}
			s.budget[rec.BudgetItem.ID] = rec.BudgetItem
			s.claimID(rec.BudgetItem.ID)
		case kindCrypto:
			var rec cryptoRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, err
			}
			s.crypto[rec.CryptoEntry.ID] = rec.CryptoEntry
			s.claimID(rec.CryptoEntry.ID)
		case kindProfile:
			var rec profileRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, err
			}
			s.profile = rec.Name
		default:
			return nil, fmt.Errorf("unknown record kind %q", identifier.Kind)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadStore reads a store snapshot from path. A missing file is an empty
// store, not an error.
func LoadStore(path string) (*Store, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open store file %q: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeStore(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode store file %q: %w", path, err)
	}
	return s, nil
}

// SaveStore writes a store snapshot to path.
func SaveStore(path string, s *Store) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create store file %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := EncodeStore(w, s); err != nil {
		return fmt.Errorf("could not encode store file %q: %w", path, err)
	}
	return w.Flush()
}
