package daykeep

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Recurrence is the repeat rule of a calendar entry.
type Recurrence int

const (
	Daily Recurrence = iota
	Weekly
	Monthly
	Yearly
)

func (r Recurrence) String() string {
	switch r {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return fmt.Sprintf("recurrence(%d)", int(r))
	}
}

// ParseRecurrence parses a recurrence rule name.
func ParseRecurrence(s string) (Recurrence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown recurrence %q", s)
	}
}

func (r Recurrence) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Recurrence) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := ParseRecurrence(str)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// step advances an instant by one recurrence interval, preserving the
// time of day. Month and year steps use calendar arithmetic: overflowing
// days normalize forward, they are not clamped to the last valid day.
// An out-of-range rule value does not advance at all.
func (r Recurrence) step(t time.Time) time.Time {
	switch r {
	case Daily:
		return t.AddDate(0, 0, 1)
	case Weekly:
		return t.AddDate(0, 0, 7)
	case Monthly:
		return t.AddDate(0, 1, 0)
	case Yearly:
		return t.AddDate(1, 0, 0)
	default:
		return t
	}
}

// Horizon bounds recurrence expansion to this much elapsed time past the
// entry's start instant, whatever the requested range. It is a guard
// against runaway loops, not a feature: occurrences past the horizon are
// silently dropped. Overridable for callers that need a wider window.
var Horizon = 2 * 365 * Day

// ExpandOccurrences walks a recurrence rule from the entry's start instant
// and returns the day keys of every occurrence inside rng, both bounds
// included. The walk stops past rng.To, past the Horizon, or on a step
// that fails to advance.
func ExpandOccurrences(startNanos int64, r Recurrence, rng Range) []Date {
	base := time.Unix(0, startNanos)

	var days []Date
	for cur := base; ; {
		day := DateOf(cur)
		if day.After(rng.To) {
			break
		}
		if !day.Before(rng.From) {
			days = append(days, day)
		}

		next := r.step(cur)
		if !next.After(cur) {
			break // unknown rule: no advancement
		}
		cur = next
		if cur.Sub(base) > Horizon {
			break
		}
	}
	return days
}
