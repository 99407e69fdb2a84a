package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashDirection tells whether money came in or went out.
type CashDirection string

const (
	CashIn  CashDirection = "IN"
	CashOut CashDirection = "OUT"
)

// ParseCashDirection validates and normalizes a cashbook direction.
func ParseCashDirection(s string) (CashDirection, error) {
	switch CashDirection(normalizeEnum(s)) {
	case CashIn:
		return CashIn, nil
	case CashOut:
		return CashOut, nil
	default:
		return "", errorf(ErrInvalidDirection, "%q is not IN or OUT", s)
	}
}

// PaymentMode is the secondary partition of cashbook entries.
type PaymentMode string

const (
	PaymentCash   PaymentMode = "CASH"
	PaymentOnline PaymentMode = "ONLINE"
)

// ParsePaymentMode validates a payment mode. An empty value means CASH.
func ParsePaymentMode(s string) (PaymentMode, error) {
	switch PaymentMode(normalizeEnum(s)) {
	case "", PaymentCash:
		return PaymentCash, nil
	case PaymentOnline:
		return PaymentOnline, nil
	default:
		return "", errorf(ErrInvalidPaymentMode, "%q is not CASH or ONLINE", s)
	}
}

// CategoryType hints which directions a category is used for. It is only a
// filtering aid and is not enforced when entries are appended.
type CategoryType string

const (
	CategoryIn   CategoryType = "IN"
	CategoryOut  CategoryType = "OUT"
	CategoryBoth CategoryType = "BOTH"
)

// ParseCategoryType validates a category type. An empty value means BOTH.
func ParseCategoryType(s string) (CategoryType, error) {
	switch CategoryType(normalizeEnum(s)) {
	case "", CategoryBoth:
		return CategoryBoth, nil
	case CategoryIn:
		return CategoryIn, nil
	case CategoryOut:
		return CategoryOut, nil
	default:
		return "", errorf(ErrInvalidCategoryType, "%q is not IN, OUT or BOTH", s)
	}
}

// CashbookCategory is a user-defined income/expense head.
type CashbookCategory struct {
	ID        string
	OwnerID   string
	Name      string
	Type      CategoryType
	CreatedAt time.Time
}

// CashbookEntry is one income or expense line.
type CashbookEntry struct {
	ID            string
	OwnerID       string
	CategoryID    string
	Category      string
	Direction     CashDirection
	Amount        decimal.Decimal
	PaymentMode   PaymentMode
	Note          string
	EntryDate     time.Time
	AttachmentURL string
	CreatedAt     time.Time
}

// Validate checks the entry invariants.
func (e *CashbookEntry) Validate() error {
	if _, err := ParseCashDirection(string(e.Direction)); err != nil {
		return err
	}
	if _, err := ParsePaymentMode(string(e.PaymentMode)); err != nil {
		return err
	}
	if err := ValidateNote(e.Note); err != nil {
		return err
	}
	return ValidateAmount(e.Amount)
}

// CashbookPostings converts entries into aggregator inputs partitioned by
// payment mode.
func CashbookPostings(entries []*CashbookEntry) []Posting {
	postings := make([]Posting, len(entries))
	for i, e := range entries {
		postings[i] = Posting{
			Amount:    e.Amount,
			Direction: string(e.Direction),
			Partition: string(e.PaymentMode),
		}
	}
	return postings
}
