package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/omaret/daykeep"
	"github.com/omaret/daykeep/renderer"
)

// addTaskCmd holds the flags for the 'add-task' subcommand.
type addTaskCmd struct {
	due      string
	taskType string
	schedule bool
}

func (*addTaskCmd) Name() string     { return "add-task" }
func (*addTaskCmd) Synopsis() string { return "record a new task" }
func (*addTaskCmd) Usage() string {
	return `dk add-task [-due <date>] [-type <type>] [-schedule] <description>

  Records a new task. The type is daily, weekend, or a weekday name
  (e.g. monday). With -schedule and a due date, a linked calendar entry
  is created on that day.
`
}

func (c *addTaskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.due, "due", "", "Due date. See the user manual for supported date formats.")
	f.StringVar(&c.taskType, "type", "daily", "Task type (daily, weekend, or a weekday name)")
	f.BoolVar(&c.schedule, "schedule", false, "Also create a calendar entry on the due date")
}

func (c *addTaskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usageError("a task description is required")
	}
	description := f.Arg(0)

	typ, err := daykeep.ParseTaskType(c.taskType)
	if err != nil {
		return usageError("Error parsing task type: %v", err)
	}
	due, err := optionalTimestamp(c.due)
	if err != nil {
		return usageError("Error parsing due date: %v", err)
	}
	if c.schedule && due == nil {
		return usageError("-schedule requires a -due date")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail("Error loading ledger %q: %v", cfg.LedgerPath(), err)
	}

	if c.schedule {
		task, entry := store.CreateTaskEntry(description, "", *due, nil, nil, typ)
		fmt.Printf("Created task %d and calendar entry %d on %s\n", task.ID, entry.ID, entry.StartDay())
	} else {
		task := store.CreateTask(description, due, typ)
		fmt.Printf("Created task %d\n", task.ID)
	}

	if err := saveStore(cfg, store); err != nil {
		return fail("Error saving ledger: %v", err)
	}
	return subcommands.ExitSuccess
}

// tasksCmd lists the recorded tasks.
type tasksCmd struct {
	pending bool
}

func (*tasksCmd) Name() string     { return "tasks" }
func (*tasksCmd) Synopsis() string { return "list recorded tasks" }
func (*tasksCmd) Usage() string {
	return `dk tasks [-pending]

  Lists recorded tasks, optionally only the pending ones.
`
}

func (c *tasksCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.pending, "pending", false, "Only list tasks not yet completed")
}

func (c *tasksCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail("Error loading ledger %q: %v", cfg.LedgerPath(), err)
	}

	tasks := store.Tasks()
	if c.pending {
		kept := tasks[:0]
		for _, t := range tasks {
			if !t.Completed {
				kept = append(kept, t)
			}
		}
		tasks = kept
	}

	printMarkdown(renderer.TasksMarkdown(tasks))
	return subcommands.ExitSuccess
}

// toggleTaskCmd flips the completion state of a task.
type toggleTaskCmd struct {
	id int64
}

func (*toggleTaskCmd) Name() string     { return "toggle-task" }
func (*toggleTaskCmd) Synopsis() string { return "toggle a task's completion state" }
func (*toggleTaskCmd) Usage() string {
	return `dk toggle-task -id <id>

  Marks a pending task completed, or a completed task pending.
`
}

func (c *toggleTaskCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Task id")
}

func (c *toggleTaskCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	task, ok := store.ToggleTask(c.id)
	if !ok {
		return fail("no task with id %d", c.id)
	}
	state := "pending"
	if task.Completed {
		state = "completed"
	}
	fmt.Printf("Task %d is now %s\n", task.ID, state)

	if err := saveStore(cfg, store); err != nil {
		return fail("Error saving ledger: %v", err)
	}
	return subcommands.ExitSuccess
}

// rmTaskCmd deletes a task.
type rmTaskCmd struct {
	id int64
}

func (*rmTaskCmd) Name() string     { return "rm-task" }
func (*rmTaskCmd) Synopsis() string { return "delete a task" }
func (*rmTaskCmd) Usage() string {
	return `dk rm-task -id <id>

  Deletes the task with the given id.
`
}

func (c *rmTaskCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Task id")
}

func (c *rmTaskCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if !store.DeleteTask(c.id) {
		return fail("no task with id %d", c.id)
	}
	fmt.Printf("Deleted task %d\n", c.id)

	if err := saveStore(cfg, store); err != nil {
		return fail("Error saving ledger: %v", err)
	}
	return subcommands.ExitSuccess
}
