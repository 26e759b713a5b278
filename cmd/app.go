// Package cmd implements the CLI application to manage a personal tracker.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/omaret/daykeep"
)

// Register the subcommands.
// A main package calls Register() to declare them, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addTaskCmd{}, "tasks")
	c.Register(&tasksCmd{}, "tasks")
	c.Register(&toggleTaskCmd{}, "tasks")
	c.Register(&rmTaskCmd{}, "tasks")

	c.Register(&addGoalCmd{}, "goals")
	c.Register(&goalsCmd{}, "goals")
	c.Register(&progressCmd{}, "goals")
	c.Register(&rmGoalCmd{}, "goals")

	c.Register(&addEntryCmd{}, "calendar")
	c.Register(&calendarCmd{}, "calendar")
	c.Register(&rmEntryCmd{}, "calendar")

	c.Register(&addBudgetCmd{}, "budget")
	c.Register(&budgetCmd{}, "budget")
	c.Register(&rmBudgetCmd{}, "budget")

	c.Register(&addCryptoCmd{}, "crypto")
	c.Register(&cryptoCmd{}, "crypto")
	c.Register(&rmCryptoCmd{}, "crypto")
	c.Register(&plCmd{}, "crypto")
	c.Register(&updateCmd{}, "crypto")
	c.Register(&marketCmd{}, "crypto")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&viewCmd{}, "reports")
	c.Register(&profileCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "", "Path to the data folder (overrides the config file)")
var configFile = flag.String("config", "daykeep.yaml", "Path to the configuration file")

func loadConfig() (daykeep.Config, error) {
	c, err := daykeep.LoadConfig(*configFile)
	if err != nil {
		return c, err
	}
	if *dataDir != "" {
		c.DataDir = *dataDir
	}
	return c, nil
}

// openStore loads the ledger named by the configuration, creating an
// empty store when none exists yet.
func openStore(c daykeep.Config) (*daykeep.Store, error) {
	return daykeep.LoadStore(c.LedgerPath())
}

func saveStore(c daykeep.Config, s *daykeep.Store) error {
	return daykeep.SaveStore(c.LedgerPath(), s)
}

func openPrefs(c daykeep.Config) (*daykeep.Preferences, error) {
	kv, err := daykeep.OpenFileKV(c.PrefsPath())
	if err != nil {
		return nil, err
	}
	return daykeep.NewPreferences(kv), nil
}

// printMarkdown renders markdown for the terminal. When rendering fails
// the raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// parseTimestamp accepts a date in any supported format and returns
// nanoseconds at local midnight.
func parseTimestamp(s string) (int64, error) {
	d, err := daykeep.ParseDate(s)
	if err != nil {
		return 0, err
	}
	return d.StartNanos(), nil
}

// optionalTimestamp is like parseTimestamp but maps "" to nil.
func optionalTimestamp(s string) (*int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	n, err := parseTimestamp(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}

func usageError(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitUsageError
}
