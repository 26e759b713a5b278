package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/omaret/daykeep"
	"github.com/omaret/daykeep/renderer"
)

// plCmd holds the flags for the 'pl' subcommand.
type plCmd struct {
	live bool
}

func (*plCmd) Name() string     { return "pl" }
func (*plCmd) Synopsis() string { return "unrealized profit and loss per crypto asset" }
func (*plCmd) Usage() string {
	return `dk pl [-live]

  Aggregates unrealized profit and loss per asset, sorted from best to
  worst. With -live, current prices are fetched from the market; on
  failure the stored prices are used instead.
`
}

func (c *plCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.live, "live", false, "Fetch live prices before computing")
}

func (c *plCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail("Error loading ledger %q: %v", cfg.LedgerPath(), err)
	}

	entries := store.CryptoEntries()

	var live map[string]float64
	if c.live {
		symbols := make([]string, 0, len(entries))
		for _, e := range entries {
			symbols = append(symbols, e.Symbol)
		}
		live, err = daykeep.NewPriceServiceFrom(cfg).LivePrices(symbols)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: live prices unavailable, using stored prices: %v\n", err)
		}
	}

	assets := daykeep.AssetProfitLoss(entries, live)
	total := daykeep.TotalPortfolioProfitLoss(entries, live)
	printMarkdown(renderer.CryptoMarkdown(assets, total))
	return subcommands.ExitSuccess
}

// updateCmd refreshes the stored current prices from the market.
type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh stored crypto prices from the market" }
func (*updateCmd) Usage() string {
	return `dk update

  Fetches the live USD price of every held asset and stores it as the
  entry's current price. Assets without a live quote keep their stored
  price.
`
}

func (*updateCmd) SetFlags(*flag.FlagSet) {}

func (*updateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail("Error loading ledger %q: %v", cfg.LedgerPath(), err)
	}

	entries := store.CryptoEntries()
	symbols := make([]string, 0, len(entries))
	for _, e := range entries {
		symbols = append(symbols, e.Symbol)
	}

	live, err := daykeep.NewPriceServiceFrom(cfg).LivePrices(symbols)
	if err != nil {
		return fail("Error fetching live prices: %v", err)
	}

	updated := 0
	for _, e := range entries {
		price, ok := live[daykeep.NormalizeSymbol(e.Symbol)]
		if !ok {
			continue
		}
		if _, ok := store.SetCurrentPrice(e.ID, daykeep.CentsFromUSD(price)); ok {
			updated++
		}
	}
	fmt.Printf("Updated %d of %d holdings\n", updated, len(entries))

	if err := saveStore(cfg, store); err != nil {
		return fail("Error saving ledger: %v", err)
	}
	return subcommands.ExitSuccess
}

// marketCmd shows the top market assets.
type marketCmd struct {
	n int
}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "show the top crypto assets by market cap" }
func (*marketCmd) Usage() string {
	return `dk market [-n <count>]

  Shows the top crypto assets by market capitalization with their
  current USD prices.
`
}

func (c *marketCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 10, "Number of assets to show")
}

func (c *marketCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}

	assets, err := daykeep.NewPriceServiceFrom(cfg).TopMarket(c.n)
	if err != nil {
		return fail("Error fetching market data: %v", err)
	}
	printMarkdown(renderer.MarketMarkdown(assets))
	return subcommands.ExitSuccess
}
