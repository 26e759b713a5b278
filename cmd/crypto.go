package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/omaret/daykeep"
	"github.com/omaret/daykeep/renderer"
)

// addCryptoCmd holds the flags for the 'add-crypto' subcommand.
type addCryptoCmd struct {
	symbol string
	amount float64
	price  float64
}

func (*addCryptoCmd) Name() string     { return "add-crypto" }
func (*addCryptoCmd) Synopsis() string { return "record a crypto holding" }
func (*addCryptoCmd) Usage() string {
	return `dk add-crypto -symbol <sym> -amount <units> -price <usd>

  Records a crypto holding bought at the given USD price per unit. The
  current price starts at the purchase price until the next update.
`
}

func (c *addCryptoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Asset symbol, e.g. BTC")
	f.Float64Var(&c.amount, "amount", 0, "Number of units held")
	f.Float64Var(&c.price, "price", 0, "Purchase price per unit in USD")
}

func (c *addCryptoCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		return usageError("-symbol is required")
	}
	if c.amount <= 0 {
		return usageError("-amount must be positive")
	}
	if c.price < 0 {
		return usageError("-price cannot be negative")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail("Error loading ledger %q: %v", cfg.LedgerPath(), err)
	}

	cents := daykeep.CentsFromUSD(c.price)
	entry := store.CreateCryptoEntry(c.symbol, daykeep.MicroFromUnits(c.amount), cents, cents)
	fmt.Printf("Created crypto entry %d (%g %s at $%.2f)\n", entry.ID, entry.Units(), entry.Symbol, entry.PurchasePrice())

	if err := saveStore(cfg, store); err != nil {
		return fail("Error saving ledger: %v", err)
	}
	return subcommands.ExitSuccess
}

// cryptoCmd lists the crypto holdings.
type cryptoCmd struct{}

func (*cryptoCmd) Name() string     { return "crypto" }
func (*cryptoCmd) Synopsis() string { return "list crypto holdings" }
func (*cryptoCmd) Usage() string {
	return `dk crypto

  Lists recorded crypto holdings with their stored prices.
`
}

func (*cryptoCmd) SetFlags(*flag.FlagSet) {}

func (*cryptoCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail("Error loading ledger %q: %v", cfg.LedgerPath(), err)
	}

	printMarkdown(renderer.HoldingsMarkdown(store.CryptoEntries()))
	return subcommands.ExitSuccess
}

// rmCryptoCmd deletes a crypto holding.
type rmCryptoCmd struct {
	id int64
}

func (*rmCryptoCmd) Name() string     { return "rm-crypto" }
func (*rmCryptoCmd) Synopsis() string { return "delete a crypto holding" }
func (*rmCryptoCmd) Usage() string {
	return `dk rm-crypto -id <id>

  Deletes the crypto entry with the given id.
`
}

func (c *rmCryptoCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Crypto entry id")
}

func (c *rmCryptoCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if !store.DeleteCryptoEntry(c.id) {
		return fail("no crypto entry with id %d", c.id)
	}
	fmt.Printf("Deleted crypto entry %d\n", c.id)

	if err := saveStore(cfg, store); err != nil {
		return fail("Error saving ledger: %v", err)
	}
	return subcommands.ExitSuccess
}
