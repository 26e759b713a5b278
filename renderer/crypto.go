package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/omaret/daykeep"
)

// CryptoMarkdown renders the per-asset profit and loss table.
func CryptoMarkdown(assets []daykeep.AssetPL, total float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Crypto Portfolio")

	if len(assets) == 0 {
		doc.PlainText("No crypto holdings recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Asset", "Gain / Loss", "Gain / Loss %", "Status"},
	}
	for _, a := range assets {
		table.Rows = append(table.Rows, []string{
			a.Symbol,
			signedUSD(a.ProfitLossUSD),
			a.ProfitLossPercent.SignedString(),
			statusIcon(a.Status),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(signedUSD(total)),
		"",
		md.Bold(statusIcon(daykeep.ClassifyPL(total))),
	})
	doc.Table(table)

	return doc.String()
}

// HoldingsMarkdown renders the raw crypto entries with their stored prices.
func HoldingsMarkdown(entries []daykeep.CryptoEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Crypto Holdings")

	if len(entries) == 0 {
		doc.PlainText("No crypto holdings recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Asset", "Amount", "Purchase Price", "Current Price"},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", e.ID),
			e.Symbol,
			fmt.Sprintf("%g", e.Units()),
			fmt.Sprintf("$%.2f", e.PurchasePrice()),
			fmt.Sprintf("$%.2f", e.CurrentPrice()),
		})
	}
	doc.Table(table)

	return doc.String()
}

// MarketMarkdown renders the top market assets table.
func MarketMarkdown(assets []daykeep.MarketAsset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market Overview")

	if len(assets) == 0 {
		doc.PlainText("No market data available.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Asset", "Name", "Price"},
	}
	for _, a := range assets {
		table.Rows = append(table.Rows, []string{
			a.Symbol,
			a.Name,
			fmt.Sprintf("$%.2f", a.Price),
		})
	}
	doc.Table(table)

	return doc.String()
}

func signedUSD(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("+$%.2f", v)
}

func statusIcon(s daykeep.PLStatus) string {
	switch s {
	case daykeep.Positive:
		return "▲ up"
	case daykeep.Negative:
		return "▼ down"
	default:
		return "— flat"
	}
}
