package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an inventory item. Stock is the fold of its movement log and is
// only ever changed together with a new StockMovement.
type Product struct {
	ID                string
	OwnerID           string
	Name              string
	SKU               string
	Unit              string
	Price             decimal.Decimal
	Stock             decimal.Decimal
	LowStockThreshold decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate checks the product invariants.
func (p *Product) Validate() error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if err := ValidatePrice(p.Price); err != nil {
		return err
	}
	if err := ValidateStockLevel(p.Stock); err != nil {
		return err
	}
	if p.LowStockThreshold.IsNegative() {
		return errorf(ErrInvalidQuantity, "low stock threshold cannot be negative")
	}
	return validateQuantityRange(p.LowStockThreshold)
}

// IsLowStock reports whether stock has fallen to the threshold.
func (p *Product) IsLowStock() bool {
	return p.LowStockThreshold.IsPositive() && p.Stock.LessThanOrEqual(p.LowStockThreshold)
}

// StockDirection is the side of a stock movement.
type StockDirection string

const (
	StockIn  StockDirection = "IN"
	StockOut StockDirection = "OUT"
)

// ParseStockDirection validates and normalizes a stock direction.
func ParseStockDirection(s string) (StockDirection, error) {
	switch StockDirection(normalizeEnum(s)) {
	case StockIn:
		return StockIn, nil
	case StockOut:
		return StockOut, nil
	default:
		return "", errorf(ErrInvalidDirection, "%q is not IN or OUT", s)
	}
}

// Delta returns the signed stock change for quantity.
func (d StockDirection) Delta(quantity decimal.Decimal) decimal.Decimal {
	if d == StockOut {
		return quantity.Neg()
	}
	return quantity
}

// MovementReason records why stock moved.
type MovementReason string

const (
	ReasonOpening    MovementReason = "opening"
	ReasonStockIn    MovementReason = "stock_in"
	ReasonStockOut   MovementReason = "stock_out"
	ReasonAdjustment MovementReason = "adjustment"
)

// StockMovement is one append-only entry of a product's stock log.
type StockMovement struct {
	ID         string
	ProductID  string
	Direction  StockDirection
	Quantity   decimal.Decimal
	Reason     MovementReason
	Note       string
	StockAfter decimal.Decimal
	CreatedAt  time.Time
}

// MovementForDelta builds the movement that takes stock by delta. A zero
// delta yields nil.
func MovementForDelta(delta decimal.Decimal, reason MovementReason) *StockMovement {
	switch {
	case delta.IsPositive():
		return &StockMovement{Direction: StockIn, Quantity: delta, Reason: reason}
	case delta.IsNegative():
		return &StockMovement{Direction: StockOut, Quantity: delta.Abs(), Reason: reason}
	default:
		return nil
	}
}

// StockPostings converts movements into aggregator inputs partitioned by product.
func StockPostings(movements []*StockMovement) []Posting {
	postings := make([]Posting, len(movements))
	for i, m := range movements {
		postings[i] = Posting{
			Amount:    m.Quantity,
			Direction: string(m.Direction),
			Partition: m.ProductID,
		}
	}
	return postings
}
