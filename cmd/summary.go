package cmd

import (
	"context"
	"flag"
	"time"

	"github.com/google/subcommands"
	"github.com/omaret/daykeep"
	"github.com/omaret/daykeep/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	mode string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "dashboard summary across all sections" }
func (*summaryCmd) Usage() string {
	return `dk summary [-mode stats|recent]

  Shows the dashboard: tasks, goals, calendar and budget summaries.
  Sections and their modes follow the stored dashboard preferences;
  -mode overrides the mode for every section.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mode, "mode", "", "Summary mode for all sections (stats or recent)")
}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail("Error loading ledger %q: %v", cfg.LedgerPath(), err)
	}
	prefs, err := openPrefs(cfg)
	if err != nil {
		return fail("Error loading preferences: %v", err)
	}

	dash := prefs.Dashboard()
	if c.mode != "" {
		mode, err := daykeep.ParseSummaryMode(c.mode)
		if err != nil {
			return usageError("Error parsing mode: %v", err)
		}
		dash.Tasks.Mode = mode
		dash.Goals.Mode = mode
		dash.Calendar.Mode = mode
		dash.Budget.Mode = mode
	}

	now := time.Now()
	var sections []renderer.Section
	if dash.Tasks.Enabled {
		sections = append(sections, renderer.Section{
			Title:  "Tasks",
			Result: daykeep.TasksSummary(store.Tasks(), dash.Tasks.Mode, now),
		})
	}
	if dash.Goals.Enabled {
		sections = append(sections, renderer.Section{
			Title:  "Goals",
			Result: daykeep.GoalsSummary(store.Goals(), dash.Goals.Mode),
		})
	}
	if dash.Calendar.Enabled {
		sections = append(sections, renderer.Section{
			Title:  "Calendar",
			Result: daykeep.CalendarSummary(store.Entries(), dash.Calendar.Mode, now),
		})
	}
	if dash.Budget.Enabled {
		sections = append(sections, renderer.Section{
			Title:  "Budget",
			Result: daykeep.BudgetSummary(store.BudgetItems(), dash.Budget.Mode, now),
		})
	}

	printMarkdown(renderer.DashboardMarkdown(sections))
	return subcommands.ExitSuccess
}
