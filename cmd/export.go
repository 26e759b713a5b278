package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/omaret/daykeep"
)

// exportCmd converts the ledger to or from a SQLite database.
type exportCmd struct {
	db      string
	restore bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger to a SQLite database" }
func (*exportCmd) Usage() string {
	return `dk export -db <file> [-restore]

  Writes the full ledger into a SQLite database, replacing its content.
  With -restore, the direction is reversed and the ledger is rebuilt
  from the database.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.db, "db", "daykeep.db", "Path to the SQLite database file")
	f.BoolVar(&c.restore, "restore", false, "Rebuild the ledger from the database instead")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}

	if c.restore {
		store, err := daykeep.OpenSQLiteStore(c.db)
		if err != nil {
			return fail("Error reading database %q: %v", c.db, err)
		}
		if err := saveStore(cfg, store); err != nil {
			return fail("Error saving ledger: %v", err)
		}
		fmt.Printf("Restored ledger %s from %s\n", cfg.LedgerPath(), c.db)
		return subcommands.ExitSuccess
	}

	store, err := openStore(cfg)
	if err != nil {
		return fail("Error loading ledger %q: %v", cfg.LedgerPath(), err)
	}
	if err := daykeep.SaveSQLiteStore(c.db, store); err != nil {
		return fail("Error writing database %q: %v", c.db, err)
	}
	fmt.Printf("Exported ledger to %s\n", c.db)
	return subcommands.ExitSuccess
}
