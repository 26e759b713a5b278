package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// profileCmd shows or sets the tracker's profile name.
type profileCmd struct {
	name string
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show or set the profile name" }
func (*profileCmd) Usage() string {
	return `dk profile [-name <name>]

  Shows the profile name the tracker greets with, or sets it.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Profile name to store")
}

func (c *profileCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail("Error loading ledger %q: %v", cfg.LedgerPath(), err)
	}

	if c.name == "" {
		if store.ProfileName() == "" {
			fmt.Println("No profile name set")
		} else {
			fmt.Println(store.ProfileName())
		}
		return subcommands.ExitSuccess
	}

	store.SetProfileName(c.name)
	if err := saveStore(cfg, store); err != nil {
		return fail("Error saving ledger: %v", err)
	}
	fmt.Printf("Hello, %s\n", c.name)
	return subcommands.ExitSuccess
}
