package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/omaret/daykeep"
	"github.com/omaret/daykeep/renderer"
)

// addEntryCmd holds the flags for the 'add-entry' subcommand.
type addEntryCmd struct {
	description string
	date        string
	end         string
	repeat      string
	taskID      int64
}

func (*addEntryCmd) Name() string     { return "add-entry" }
func (*addEntryCmd) Synopsis() string { return "record a new calendar entry" }
func (*addEntryCmd) Usage() string {
	return `dk add-entry -date <date> [-end <date>] [-repeat <rule>] [-task <id>] <title>

  Records a calendar entry. The repeat rule is daily, weekly, monthly
  or yearly. With -task, the entry is linked to an existing task.
`
}

func (c *addEntryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", daykeep.Today().String(), "Entry date. See the user manual for supported date formats.")
	f.StringVar(&c.end, "end", "", "Optional end date")
	f.StringVar(&c.repeat, "repeat", "", "Recurrence rule (daily, weekly, monthly, yearly)")
	f.StringVar(&c.description, "desc", "", "Longer entry description")
	f.Int64Var(&c.taskID, "task", 0, "Id of the task this entry tracks")
}

func (c *addEntryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usageError("an entry title is required")
	}
	start, err := parseTimestamp(c.date)
	if err != nil {
		return usageError("Error parsing date: %v", err)
	}
	end, err := optionalTimestamp(c.end)
	if err != nil {
		return usageError("Error parsing end date: %v", err)
	}
	var recurrence *daykeep.Recurrence
	if c.repeat != "" {
		r, err := daykeep.ParseRecurrence(c.repeat)
		if err != nil {
			return usageError("Error parsing repeat rule: %v", err)
		}
		recurrence = &r
	}
	var taskID *int64
	if c.taskID != 0 {
		taskID = &c.taskID
	}

	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail("Error loading ledger %q: %v", cfg.LedgerPath(), err)
	}

	entry := store.CreateEntry(f.Arg(0), c.description, start, end, recurrence, taskID)
	fmt.Printf("Created calendar entry %d on %s\n", entry.ID, entry.StartDay())

	if err := saveStore(cfg, store); err != nil {
		return fail("Error saving ledger: %v", err)
	}
	return subcommands.ExitSuccess
}

// calendarCmd renders the calendar grid.
type calendarCmd struct {
	view string
	date string
	list bool
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "show the calendar with scheduled days" }
func (*calendarCmd) Usage() string {
	return `dk calendar [-view month|week|year] [-d <date>] [-list]

  Shows the calendar around the given date, marking days that carry at
  least one entry or recurring occurrence. Without -view, the stored
  view preference applies. With -list, entries are listed instead.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.view, "view", "", "Calendar view (month, week, year); defaults to the stored preference")
	f.StringVar(&c.date, "d", daykeep.Today().String(), "Date the view centers on")
	f.BoolVar(&c.list, "list", false, "List entries instead of the grid")
}

func (c *calendarCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := daykeep.ParseDate(c.date)
	if err != nil {
		return usageError("Error parsing date: %v", err)
	}

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

	view := prefs.CalendarView()
	if c.view != "" {
		view, err = daykeep.ParseCalendarView(c.view)
		if err != nil {
			return usageError("Error parsing view: %v", err)
		}
	}

	var rng daykeep.Range
	switch view {
	case daykeep.ViewWeek:
		start := daykeep.WeekStart(day)
		rng = daykeep.NewRange(start, start.Add(6))
	case daykeep.ViewYear:
		rng = daykeep.NewRange(daykeep.NewDate(day.Year(), 1, 1), daykeep.NewDate(day.Year(), 12, 31))
	default:
		first := daykeep.NewDate(day.Year(), day.Month(), 1)
		rng = daykeep.NewRange(first, first.AddMonth(1).Add(-1))
	}

	if c.list {
		printMarkdown(renderer.EntriesMarkdown(store.Entries(), rng))
		return subcommands.ExitSuccess
	}

	scheduled := daykeep.ScheduledDays(store.Entries(), rng)
	switch view {
	case daykeep.ViewWeek:
		printMarkdown(renderer.WeekMarkdown(day, scheduled))
	case daykeep.ViewYear:
		printMarkdown(renderer.YearMarkdown(day.Year(), scheduled))
	default:
		printMarkdown(renderer.MonthMarkdown(day.Year(), day.Month(), scheduled))
	}
	return subcommands.ExitSuccess
}

// rmEntryCmd deletes a calendar entry.
type rmEntryCmd struct {
	id int64
}

func (*rmEntryCmd) Name() string     { return "rm-entry" }
func (*rmEntryCmd) Synopsis() string { return "delete a calendar entry" }
func (*rmEntryCmd) Usage() string {
	return `dk rm-entry -id <id>

  Deletes the calendar entry with the given id.
`
}

func (c *rmEntryCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Entry id")
}

func (c *rmEntryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		return usageError("-id is required")
	}
	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail("Error loading ledger %q: %v", cfg.LedgerPath(), err)
	}

	if !store.DeleteEntry(c.id) {
		return fail("no calendar entry with id %d", c.id)
	}
	fmt.Printf("Deleted calendar entry %d\n", c.id)

	if err := saveStore(cfg, store); err != nil {
		return fail("Error saving ledger: %v", err)
	}
	return subcommands.ExitSuccess
}
