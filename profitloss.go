package daykeep

import "sort"

// PLStatus is the three-way classification of a profit/loss figure.
type PLStatus int

const (
	Flat PLStatus = iota
	Positive
	Negative
)

func (s PLStatus) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "flat"
	}
}

// plDeadband absorbs floating-point noise around zero when classifying.
const plDeadband = 0.01

// ClassifyPL maps a USD profit/loss figure to its status.
func ClassifyPL(profitLoss float64) PLStatus {
	switch {
	case profitLoss > plDeadband:
		return Positive
	case profitLoss < -plDeadband:
		return Negative
	default:
		return Flat
	}
}

// AssetPL is the aggregated unrealized profit/loss of all entries sharing
// a symbol.
type AssetPL struct {
	Symbol            string
	ProfitLossUSD     float64
	ProfitLossPercent Percent
	Status            PLStatus
}

// EntryProfitLoss computes the unrealized USD profit/loss of one entry.
// A non-nil live price overrides the entry's stored current price.
func EntryProfitLoss(e CryptoEntry, live *float64) float64 {
	price := e.CurrentPrice()
	if live != nil {
		price = *live
	}
	return (price - e.PurchasePrice()) * e.Units()
}

// livePriceFor looks up the live price for an entry's symbol. Absent or
// partial maps fall back to the stored price.
func livePriceFor(e CryptoEntry, live map[string]float64) *float64 {
	if p, ok := live[NormalizeSymbol(e.Symbol)]; ok {
		return &p
	}
	return nil
}

// AssetProfitLoss groups entries by uppercased symbol and aggregates
// their profit/loss. Output is sorted by USD profit/loss descending;
// equal figures order by symbol so repeated calls are identical.
func AssetProfitLoss(entries []CryptoEntry, live map[string]float64) []AssetPL {
	type bucket struct {
		profitLoss float64
		invested   float64
	}
	buckets := make(map[string]*bucket)

	for _, e := range entries {
		symbol := NormalizeSymbol(e.Symbol)
		b, ok := buckets[symbol]
		if !ok {
			b = &bucket{}
			buckets[symbol] = b
		}
		b.profitLoss += EntryProfitLoss(e, livePriceFor(e, live))
		b.invested += e.Invested()
	}

	assets := make([]AssetPL, 0, len(buckets))
	for symbol, b := range buckets {
		var percent float64
		if b.invested > 0 {
			percent = b.profitLoss / b.invested * 100
		}
		assets = append(assets, AssetPL{
			Symbol:            symbol,
			ProfitLossUSD:     b.profitLoss,
			ProfitLossPercent: Percent(percent),
			Status:            ClassifyPL(b.profitLoss),
		})
	}

	sort.Slice(assets, func(i, j int) bool {
		if assets[i].ProfitLossUSD != assets[j].ProfitLossUSD {
			return assets[i].ProfitLossUSD > assets[j].ProfitLossUSD
		}
		return assets[i].Symbol < assets[j].Symbol
	})
	return assets
}

// TotalPortfolioProfitLoss sums the unrealized profit/loss of every entry.
func TotalPortfolioProfitLoss(entries []CryptoEntry, live map[string]float64) float64 {
	var total float64
	for _, e := range entries {
		total += EntryProfitLoss(e, livePriceFor(e, live))
	}
	return total
}
