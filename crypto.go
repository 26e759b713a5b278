package daykeep

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CryptoEntry is one holding of a crypto asset. The transport layer keeps
// quantities and prices as scaled integers: holdings in micro-units
// (1e-6), prices in USD cents. Floating point appears only in the derived
// profit/loss layer.
type CryptoEntry struct {
	ID                 int64  `json:"id"`
	Symbol             string `json:"symbol"`
	Amount             int64  `json:"amount"` // micro-units
	PurchasePriceCents int64  `json:"purchasePriceCents"`
	CurrentPriceCents  int64  `json:"currentPriceCents"`
	CreatedAt          int64  `json:"createdAt"`
	UpdatedAt          int64  `json:"updatedAt"`
}

// NormalizeSymbol canonicalizes a ticker for aggregation keys.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Boundary conversions between the integer transport scales and the
// float64 display domain. The shift happens in decimal so the integer
// value stays exact until the final conversion.

// UnitsFromMicro converts a micro-unit quantity to asset units.
func UnitsFromMicro(micro int64) float64 {
	return decimal.New(micro, -6).InexactFloat64()
}

// MicroFromUnits converts asset units to the micro-unit transport scale.
func MicroFromUnits(units float64) int64 {
	return decimal.NewFromFloat(units).Shift(6).Round(0).IntPart()
}

// USDFromCents converts integer cents to USD.
func USDFromCents(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}

// CentsFromUSD converts a USD price to integer cents, rounding to the
// nearest cent.
func CentsFromUSD(usd float64) int64 {
	return decimal.NewFromFloat(usd).Shift(2).Round(0).IntPart()
}

// Units returns the held quantity in asset units.
func (e CryptoEntry) Units() float64 { return UnitsFromMicro(e.Amount) }

// PurchasePrice returns the per-unit purchase price in USD.
func (e CryptoEntry) PurchasePrice() float64 { return USDFromCents(e.PurchasePriceCents) }

// CurrentPrice returns the stored per-unit current price in USD.
func (e CryptoEntry) CurrentPrice() float64 { return USDFromCents(e.CurrentPriceCents) }

// Invested returns the USD originally paid for this entry.
func (e CryptoEntry) Invested() float64 { return e.Units() * e.PurchasePrice() }
