package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a party the business extends credit to or collects from.
type Customer struct {
	ID        string
	OwnerID   string
	Name      string
	Mobile    string
	Note      string
	CreatedAt time.Time
}

// LedgerDirection is the sign-bearing side of a customer ledger entry.
type LedgerDirection string

const (
	// LedgerCredit is "you got": the customer paid, receivable decreases.
	LedgerCredit LedgerDirection = "CREDIT"
	// LedgerDebit is "you gave": credit extended, receivable increases.
	LedgerDebit LedgerDirection = "DEBIT"
)

// ParseLedgerDirection validates and normalizes a ledger direction.
func ParseLedgerDirection(s string) (LedgerDirection, error) {
	switch LedgerDirection(normalizeEnum(s)) {
	case LedgerCredit:
		return LedgerCredit, nil
	case LedgerDebit:
		return LedgerDebit, nil
	default:
		return "", errorf(ErrInvalidDirection, "%q is not CREDIT or DEBIT", s)
	}
}

// LedgerEntry is a single signed movement on a customer's account.
// Entries are append-only; corrections are posted as offsetting entries.
type LedgerEntry struct {
	ID         string
	CustomerID string
	Direction  LedgerDirection
	Amount     decimal.Decimal
	Note       string
	EntryDate  time.Time
	CreatedAt  time.Time
}

// Validate checks the entry invariants.
func (e *LedgerEntry) Validate() error {
	if _, err := ParseLedgerDirection(string(e.Direction)); err != nil {
		return err
	}
	if err := ValidateNote(e.Note); err != nil {
		return err
	}
	return ValidateAmount(e.Amount)
}

// Posting converts the entry into an aggregator input.
func (e *LedgerEntry) Posting() Posting {
	return Posting{
		Amount:    e.Amount,
		Direction: string(e.Direction),
		Partition: e.CustomerID,
	}
}

// LedgerPostings converts entries into aggregator inputs partitioned by customer.
func LedgerPostings(entries []*LedgerEntry) []Posting {
	postings := make([]Posting, len(entries))
	for i, e := range entries {
		postings[i] = e.Posting()
	}
	return postings
}
