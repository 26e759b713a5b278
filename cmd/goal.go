package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/omaret/daykeep/renderer"
)

// addGoalCmd holds the flags for the 'add-goal' subcommand.
type addGoalCmd struct {
	description string
	target      string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "record a new goal" }
func (*addGoalCmd) Usage() string {
	return `dk add-goal [-desc <text>] [-target <date>] <title>

  Records a new goal with progress starting at zero.
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "Longer goal description")
	f.StringVar(&c.target, "target", "", "Target date. See the user manual for supported date formats.")
}

func (c *addGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usageError("a goal title is required")
	}
	target, err := optionalTimestamp(c.target)
	if err != nil {
		return usageError("Error parsing target date: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail("Error loading ledger %q: %v", cfg.LedgerPath(), err)
	}

	goal := store.CreateGoal(f.Arg(0), c.description, target)
	fmt.Printf("Created goal %d\n", goal.ID)

	if err := saveStore(cfg, store); err != nil {
		return fail("Error saving ledger: %v", err)
	}
	return subcommands.ExitSuccess
}

// goalsCmd lists the recorded goals.
type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list recorded goals" }
func (*goalsCmd) Usage() string {
	return `dk goals

  Lists recorded goals with their progress.
`
}

func (*goalsCmd) SetFlags(*flag.FlagSet) {}

func (*goalsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail("Error loading ledger %q: %v", cfg.LedgerPath(), err)
	}

	printMarkdown(renderer.GoalsMarkdown(store.Goals()))
	return subcommands.ExitSuccess
}

// progressCmd updates the progress of a goal.
type progressCmd struct {
	id    int64
	value int64
}

func (*progressCmd) Name() string     { return "progress" }
func (*progressCmd) Synopsis() string { return "update a goal's progress" }
func (*progressCmd) Usage() string {
	return `dk progress -id <id> -value <0..100>

  Sets the progress of a goal. A goal at 100 counts as completed.
`
}

func (c *progressCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Goal id")
	f.Int64Var(&c.value, "value", 0, "Progress percentage, 0 to 100")
}

func (c *progressCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		return usageError("-id is required")
	}
	if c.value < 0 || c.value > 100 {
		return usageError("-value must be between 0 and 100")
	}
	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail("Error loading ledger %q: %v", cfg.LedgerPath(), err)
	}

	goal, ok := store.UpdateGoalProgress(c.id, c.value)
	if !ok {
		return fail("no goal with id %d", c.id)
	}
	if goal.Completed() {
		fmt.Printf("Goal %d completed 🎉\n", goal.ID)
	} else {
		fmt.Printf("Goal %d at %d%%\n", goal.ID, goal.Progress)
	}

	if err := saveStore(cfg, store); err != nil {
		return fail("Error saving ledger: %v", err)
	}
	return subcommands.ExitSuccess
}

// rmGoalCmd deletes a goal.
type rmGoalCmd struct {
	id int64
}

func (*rmGoalCmd) Name() string     { return "rm-goal" }
func (*rmGoalCmd) Synopsis() string { return "delete a goal" }
func (*rmGoalCmd) Usage() string {
	return `dk rm-goal -id <id>

  Deletes the goal with the given id.
`
}

func (c *rmGoalCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Goal id")
}

func (c *rmGoalCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if !store.DeleteGoal(c.id) {
		return fail("no goal with id %d", c.id)
	}
	fmt.Printf("Deleted goal %d\n", c.id)

	if err := saveStore(cfg, store); err != nil {
		return fail("Error saving ledger: %v", err)
	}
	return subcommands.ExitSuccess
}
