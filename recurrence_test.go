package daykeep

import (
	"testing"
	"time"
)

func TestParseRecurrence(t *testing.T) {
	tests := []struct {
		input    string
		expected Recurrence
		err      bool
	}{
		{"daily", Daily, false},
		{"Weekly", Weekly, false},
		{"MONTHLY", Monthly, false},
		{"yearly", Yearly, false},
		{"fortnightly", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseRecurrence(tt.input)
		if tt.err != (err != nil) {
			t.Errorf("ParseRecurrence(%q) error = %v, want error %v", tt.input, err, tt.err)
			continue
		}
		if !tt.err && got != tt.expected {
			t.Errorf("ParseRecurrence(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func occurrences(t *testing.T, start Date, r Recurrence, from, to Date) []Date {
	t.Helper()
	return ExpandOccurrences(start.StartNanos(), r, NewRange(from, to))
}

func TestExpandDaily(t *testing.T) {
	got := occurrences(t, NewDate(2024, time.January, 1), Daily,
		NewDate(2024, time.January, 1), NewDate(2024, time.January, 5))

	want := []Date{
		NewDate(2024, time.January, 1),
		NewDate(2024, time.January, 2),
		NewDate(2024, time.January, 3),
		NewDate(2024, time.January, 4),
		NewDate(2024, time.January, 5),
	}
	assertDays(t, got, want)
}

func TestExpandWeekly(t *testing.T) {
	got := occurrences(t, NewDate(2024, time.January, 1), Weekly,
		NewDate(2024, time.January, 1), NewDate(2024, time.January, 20))

	want := []Date{
		NewDate(2024, time.January, 1),
		NewDate(2024, time.January, 8),
		NewDate(2024, time.January, 15),
	}
	assertDays(t, got, want)
}

// A monthly rule anchored on the 31st drifts through short months, it
// does not clamp to month ends.
func TestExpandMonthlyRollover(t *testing.T) {
	got := occurrences(t, NewDate(2024, time.January, 31), Monthly,
		NewDate(2024, time.January, 1), NewDate(2024, time.April, 30))

	want := []Date{
		NewDate(2024, time.January, 31),
		NewDate(2024, time.March, 2),
		NewDate(2024, time.April, 2),
	}
	assertDays(t, got, want)
}

func TestExpandYearly(t *testing.T) {
	got := occurrences(t, NewDate(2024, time.June, 15), Yearly,
		NewDate(2024, time.January, 1), NewDate(2026, time.December, 31))

	want := []Date{
		NewDate(2024, time.June, 15),
		NewDate(2025, time.June, 15),
		NewDate(2026, time.June, 15),
	}
	assertDays(t, got, want)
}

// Occurrences before the range are skipped but stepping continues
// through them to reach the range.
func TestExpandStartsBeforeRange(t *testing.T) {
	got := occurrences(t, NewDate(2024, time.January, 1), Weekly,
		NewDate(2024, time.February, 1), NewDate(2024, time.February, 15))

	want := []Date{
		NewDate(2024, time.February, 5),
		NewDate(2024, time.February, 12),
	}
	assertDays(t, got, want)
}

func TestExpandHorizon(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	// A range far wider than the expansion horizon.
	got := occurrences(t, start, Daily, start, start.Add(4*365))

	// Expansion stops once the cursor runs past the horizon.
	limit := DateOf(time.Unix(0, start.StartNanos()).Add(Horizon))
	last := got[len(got)-1]
	if last.After(limit) {
		t.Errorf("last occurrence %v is beyond the expansion horizon %v", last, limit)
	}
	if len(got) < 2*365 {
		t.Errorf("expected about two years of daily occurrences, got %d", len(got))
	}
}

// An unknown rule must not loop forever: when stepping does not advance,
// only the base day is returned.
func TestExpandUnknownRule(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	got := occurrences(t, start, Recurrence(42), start, start.Add(30))

	assertDays(t, got, []Date{start})
}

func assertDays(t *testing.T, got, want []Date) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d days %v, want %d days %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
