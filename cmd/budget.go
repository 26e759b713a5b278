package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/omaret/daykeep"
	"github.com/omaret/daykeep/renderer"
)

// addBudgetCmd holds the flags for the 'add-budget' subcommand.
type addBudgetCmd struct {
	amount   string
	date     string
	itemType string
}

func (*addBudgetCmd) Name() string     { return "add-budget" }
func (*addBudgetCmd) Synopsis() string { return "record a budget expense or income" }
func (*addBudgetCmd) Usage() string {
	return `dk add-budget -amount <usd> [-date <date>] [-type expense|income] <description>

  Records a budget item. Amounts are dollars with optional cents, e.g.
  12.50.
`
}

func (c *addBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount in dollars, e.g. 12.50")
	f.StringVar(&c.date, "date", daykeep.Today().String(), "Item date. See the user manual for supported date formats.")
	f.StringVar(&c.itemType, "type", "expense", "Item type (expense or income)")
}

func (c *addBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usageError("an item description is required")
	}
	amount, err := daykeep.ParseUSD(c.amount)
	if err != nil {
		return usageError("Error parsing amount: %v", err)
	}
	typ, err := daykeep.ParseBudgetItemType(c.itemType)
	if err != nil {
		return usageError("Error parsing item type: %v", err)
	}
	date, err := parseTimestamp(c.date)
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

	item := store.CreateBudgetItem(amount.Cents(), f.Arg(0), date, typ)
	fmt.Printf("Created budget item %d (%s %s)\n", item.ID, item.Type, item.Amount())

	if err := saveStore(cfg, store); err != nil {
		return fail("Error saving ledger: %v", err)
	}
	return subcommands.ExitSuccess
}

// budgetCmd lists budget items or summarizes them.
type budgetCmd struct {
	period  string
	summary bool
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "list or summarize budget items" }
func (*budgetCmd) Usage() string {
	return `dk budget [-summary] [-period month|all]

  Lists recorded budget items. With -summary, shows income, expenses
  and net for the selected period. Without -period, the stored budget
  period preference applies.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.summary, "summary", false, "Show the period summary instead of the item list")
	f.StringVar(&c.period, "period", "", "Summary period (month or all); defaults to the stored preference")
}

func (c *budgetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail("Error loading ledger %q: %v", cfg.LedgerPath(), err)
	}

	items := store.BudgetItems()

	if !c.summary {
		printMarkdown(renderer.BudgetMarkdown(items))
		return subcommands.ExitSuccess
	}

	prefs, err := openPrefs(cfg)
	if err != nil {
		return fail("Error loading preferences: %v", err)
	}
	period := prefs.BudgetPeriod()
	if c.period != "" {
		period, err = daykeep.ParseBudgetPeriod(c.period)
		if err != nil {
			return usageError("Error parsing period: %v", err)
		}
	}

	if period == daykeep.PeriodMonth {
		today := daykeep.Today()
		kept := items[:0]
		for _, it := range items {
			day := it.Day()
			if day.Year() == today.Year() && day.Month() == today.Month() {
				kept = append(kept, it)
			}
		}
		items = kept
	}

	printMarkdown(renderer.BudgetMarkdown(items))
	return subcommands.ExitSuccess
}

// rmBudgetCmd deletes a budget item.
type rmBudgetCmd struct {
	id int64
}

func (*rmBudgetCmd) Name() string     { return "rm-budget" }
func (*rmBudgetCmd) Synopsis() string { return "delete a budget item" }
func (*rmBudgetCmd) Usage() string {
	return `dk rm-budget -id <id>

  Deletes the budget item with the given id.
`
}

func (c *rmBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Budget item id")
}

func (c *rmBudgetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if !store.DeleteBudgetItem(c.id) {
		return fail("no budget item with id %d", c.id)
	}
	fmt.Printf("Deleted budget item %d\n", c.id)

	if err := saveStore(cfg, store); err != nil {
		return fail("Error saving ledger: %v", err)
	}
	return subcommands.ExitSuccess
}
