package daykeep

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BudgetItemType classifies a budget line.
type BudgetItemType int

const (
	Expense BudgetItemType = iota
	Income
)

func (t BudgetItemType) String() string {
	switch t {
	case Expense:
		return "expense"
	case Income:
		return "income"
	default:
		return "unknown"
	}
}

// ParseBudgetItemType parses "expense" or "income".
func ParseBudgetItemType(s string) (BudgetItemType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "expense":
		return Expense, nil
	case "income":
		return Income, nil
	default:
		return Expense, fmt.Errorf("unknown budget item type %q", s)
	}
}

func (t BudgetItemType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *BudgetItemType) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := ParseBudgetItemType(str)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// BudgetItem is a single income or expense line. Amounts are integer USD
// cents; the date is a nanosecond unix timestamp.
type BudgetItem struct {
	ID          int64          `json:"id"`
	Date        int64          `json:"date"`
	Description string         `json:"description"`
	Type        BudgetItemType `json:"itemType"`
	AmountCents int64          `json:"amountCents"`
}

// Day returns the local calendar day of the item.
func (b BudgetItem) Day() Date { return DayOf(b.Date) }

// Amount returns the item's amount as Money.
func (b BudgetItem) Amount() Money { return NewMoney(b.AmountCents) }
