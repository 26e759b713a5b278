package daykeep

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an integer-cents USD amount, the transport representation used
// by every entity that carries a price. Arithmetic stays on integers;
// formatting goes through go-money.
type Money struct {
	cents int64
}

// NewMoney returns a Money holding the given integer cents.
func NewMoney(cents int64) Money { return Money{cents: cents} }

// ParseUSD parses a dollar string like "12.34" into Money, rounding to
// the nearest cent.
func ParseUSD(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid dollar amount %q: %w", s, err)
	}
	return Money{cents: d.Shift(2).Round(0).IntPart()}, nil
}

func (m Money) Cents() int64 { return m.cents }
func (m Money) IsZero() bool { return m.cents == 0 }
func (m Money) IsNegative() bool { return m.cents < 0 }
func (m Money) Add(n Money) Money { return Money{cents: m.cents + n.cents} }
func (m Money) Sub(n Money) Money { return Money{cents: m.cents - n.cents} }
func (m Money) Neg() Money { return Money{cents: -m.cents} }

// String formats the amount as USD currency ("$12.34").
func (m Money) String() string {
	return money.New(m.cents, money.USD).Display()
}

// SignedString formats the amount with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	if m.cents == 0 {
		return "-"
	}
	if m.cents > 0 {
		return "+" + m.String()
	}
	return m.String()
}
