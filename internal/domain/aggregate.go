package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Posting is the minimal view of an entry the aggregator needs.
type Posting struct {
	Amount    decimal.Decimal
	Direction string
	Partition string
}

// SignConvention maps a direction to +1 or -1. Directions missing from the
// map contribute nothing.
type SignConvention map[string]int

var (
	// CustomerLedgerSigns makes the net the receivable: positive means the
	// customer owes the business.
	CustomerLedgerSigns = SignConvention{
		string(LedgerDebit):  1,
		string(LedgerCredit): -1,
	}

	// CashbookSigns makes the net the cash position.
	CashbookSigns = SignConvention{
		string(CashIn):  1,
		string(CashOut): -1,
	}

	// StockSigns makes the net the stock on hand.
	StockSigns = SignConvention{
		string(StockIn):  1,
		string(StockOut): -1,
	}
)

// Summary is the reduction of a set of postings.
type Summary struct {
	Net           decimal.Decimal
	PositiveTotal decimal.Decimal
	NegativeTotal decimal.Decimal
	Count         int
	Partitions    map[string]decimal.Decimal
}

// Partition returns the net contribution of key, zero when absent.
func (s Summary) Partition(key string) decimal.Decimal {
	if v, ok := s.Partitions[key]; ok {
		return v
	}
	return decimal.Zero
}

// Aggregate reduces postings under signs. It has no side effects and does not
// retain or modify its input.
func Aggregate(postings []Posting, signs SignConvention) Summary {
	summary := Summary{
		Net:           decimal.Zero,
		PositiveTotal: decimal.Zero,
		NegativeTotal: decimal.Zero,
		Partitions:    make(map[string]decimal.Decimal),
	}

	for _, p := range postings {
		sign := signs[p.Direction]
		if sign == 0 {
			continue
		}

		contribution := p.Amount
		if sign < 0 {
			contribution = p.Amount.Neg()
			summary.NegativeTotal = summary.NegativeTotal.Add(p.Amount)
		} else {
			summary.PositiveTotal = summary.PositiveTotal.Add(p.Amount)
		}

		summary.Net = summary.Net.Add(contribution)
		summary.Count++

		if p.Partition != "" {
			summary.Partitions[p.Partition] = summary.Partition(p.Partition).Add(contribution)
		}
	}

	return summary
}

// SameDay reports whether a and b fall on the same calendar date in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// BalanceLabel renders a receivable the way the ledger screen words it.
func BalanceLabel(net decimal.Decimal, currencySymbol string) string {
	switch {
	case net.IsPositive():
		return fmt.Sprintf("You will get %s%s", currencySymbol, FormatAmount(net))
	case net.IsNegative():
		return fmt.Sprintf("You will give %s%s", currencySymbol, FormatAmount(net.Abs()))
	default:
		return "Settled"
	}
}

// FormatAmount prints whole amounts without decimals and everything else with
// two places.
func FormatAmount(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String()
	}
	return d.StringFixed(2)
}
