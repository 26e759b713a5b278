package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/omaret/daykeep"
)

// viewCmd reads or writes the stored view preferences.
type viewCmd struct {
	calendar string
	budget   string
	section  string
	enable   string
	mode     string
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "show or change view preferences" }
func (*viewCmd) Usage() string {
	return `dk view [-calendar month|week|year] [-budget month|all]
        [-section tasks|goals|calendar|budget [-enable on|off] [-mode stats|recent]]

  Without flags, prints the current preferences. Flags change the
  stored calendar view, budget summary period, or one dashboard
  section's visibility and mode.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.calendar, "calendar", "", "Calendar view to store (month, week, year)")
	f.StringVar(&c.budget, "budget", "", "Budget summary period to store (month, all)")
	f.StringVar(&c.section, "section", "", "Dashboard section to change (tasks, goals, calendar, budget)")
	f.StringVar(&c.enable, "enable", "", "Section visibility (on or off)")
	f.StringVar(&c.mode, "mode", "", "Section summary mode (stats or recent)")
}

func (c *viewCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	prefs, err := openPrefs(cfg)
	if err != nil {
		return fail("Error loading preferences: %v", err)
	}

	changed := false

	if c.calendar != "" {
		v, err := daykeep.ParseCalendarView(c.calendar)
		if err != nil {
			return usageError("Error parsing calendar view: %v", err)
		}
		if err := prefs.SetCalendarView(v); err != nil {
			return fail("Error saving preferences: %v", err)
		}
		changed = true
	}

	if c.budget != "" {
		p, err := daykeep.ParseBudgetPeriod(c.budget)
		if err != nil {
			return usageError("Error parsing budget period: %v", err)
		}
		if err := prefs.SetBudgetPeriod(p); err != nil {
			return fail("Error saving preferences: %v", err)
		}
		changed = true
	}

	if c.section != "" {
		dash := prefs.Dashboard()
		var section *daykeep.SectionPref
		switch strings.ToLower(c.section) {
		case "tasks":
			section = &dash.Tasks
		case "goals":
			section = &dash.Goals
		case "calendar":
			section = &dash.Calendar
		case "budget":
			section = &dash.Budget
		default:
			return usageError("unknown section %q", c.section)
		}
		switch c.enable {
		case "":
		case "on":
			section.Enabled = true
		case "off":
			section.Enabled = false
		default:
			return usageError("-enable must be on or off")
		}
		if c.mode != "" {
			mode, err := daykeep.ParseSummaryMode(c.mode)
			if err != nil {
				return usageError("Error parsing mode: %v", err)
			}
			section.Mode = mode
		}
		if err := prefs.SetDashboard(dash); err != nil {
			return fail("Error saving preferences: %v", err)
		}
		changed = true
	} else if c.enable != "" || c.mode != "" {
		return usageError("-enable and -mode require -section")
	}

	if changed {
		fmt.Println("Preferences saved")
		return subcommands.ExitSuccess
	}

	fmt.Printf("calendar view: %s\n", prefs.CalendarView())
	fmt.Printf("budget period: %s\n", prefs.BudgetPeriod())
	dash := prefs.Dashboard()
	printSection := func(name string, s daykeep.SectionPref) {
		state := "off"
		if s.Enabled {
			state = "on"
		}
		fmt.Printf("dashboard %s: %s, %s\n", name, state, s.Mode)
	}
	printSection("tasks", dash.Tasks)
	printSection("goals", dash.Goals)
	printSection("calendar", dash.Calendar)
	printSection("budget", dash.Budget)
	return subcommands.ExitSuccess
}
