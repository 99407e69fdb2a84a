package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxNameLength  = 120
	MinNameLength  = 1
	MaxNoteLength  = 1000
	MaxEntryAmount = "1000000000000" // 1 trillion
	MinEntryAmount = "0.01"
	AmountScale    = 2
	QuantityScale  = 3
	MaxQuantity    = "999999999999999.999" // NUMERIC(18,3)
)

var mobileRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

func errorf(base error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", base, fmt.Sprintf(format, args...))
}

func normalizeEnum(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidateAmount validates a monetary amount: positive, at least one paisa,
// bounded, and carrying no more than two decimal places.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	minAmount := decimal.RequireFromString(MinEntryAmount)
	if amount.LessThan(minAmount) {
		return errorf(ErrInvalidAmount, "minimum amount is %s", MinEntryAmount)
	}

	maxAmount := decimal.RequireFromString(MaxEntryAmount)
	if amount.GreaterThan(maxAmount) {
		return errorf(ErrInvalidAmount, "maximum amount is %s", MaxEntryAmount)
	}

	if !amount.Equal(amount.Truncate(AmountScale)) {
		return errorf(ErrInvalidAmount, "at most %d decimal places allowed", AmountScale)
	}

	return nil
}

// ParseAmount parses a user supplied amount string.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errorf(ErrInvalidAmount, "amount is required")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errorf(ErrInvalidAmount, "%q is not a number", s)
	}

	return amount, ValidateAmount(amount)
}

// ValidateQuantity validates a stock movement quantity.
func ValidateQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidQuantity
	}
	return validateQuantityRange(quantity)
}

// validateQuantityRange keeps a stock figure inside what the stock columns
// store exactly.
func validateQuantityRange(quantity decimal.Decimal) error {
	if !quantity.Equal(quantity.Truncate(QuantityScale)) {
		return errorf(ErrInvalidQuantity, "at most %d decimal places allowed", QuantityScale)
	}
	if quantity.GreaterThan(decimal.RequireFromString(MaxQuantity)) {
		return errorf(ErrInvalidQuantity, "maximum is %s", MaxQuantity)
	}
	return nil
}

// ValidateName validates customer, category and product names.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if utf8.RuneCountInString(name) < MinNameLength {
		return errorf(ErrInvalidName, "name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return errorf(ErrInvalidName, "name exceeds %d characters", MaxNameLength)
	}

	return nil
}

// ValidateMobile validates an optional mobile number.
func ValidateMobile(mobile string) error {
	mobile = strings.ReplaceAll(strings.TrimSpace(mobile), " ", "")
	if mobile == "" {
		return nil
	}

	if !mobileRegex.MatchString(mobile) {
		return errorf(ErrInvalidMobile, "%q", mobile)
	}

	return nil
}

// ValidateNote limits free-text notes.
func ValidateNote(note string) error {
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return errorf(ErrInvalidNote, "note exceeds %d characters", MaxNoteLength)
	}
	return nil
}

// ValidatePrice accepts zero and positive prices with at most two places.
func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrInvalidPrice
	}
	if !price.Equal(price.Truncate(AmountScale)) {
		return errorf(ErrInvalidPrice, "at most %d decimal places allowed", AmountScale)
	}
	return nil
}

// ValidateStockLevel accepts zero and positive absolute stock values.
func ValidateStockLevel(stock decimal.Decimal) error {
	if stock.IsNegative() {
		return ErrNegativeStock
	}
	return validateQuantityRange(stock)
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 500
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
