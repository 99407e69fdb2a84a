package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/usecase"
)

// CreateCustomerRequest represents a request to add a customer.
type CreateCustomerRequest struct {
	Name   string `json:"name"   validate:"required,max=120"`
	Mobile string `json:"mobile" validate:"omitempty,max=20"`
	Note   string `json:"note"   validate:"max=1000"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCustomerRequest) ToUseCaseInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Name:   r.Name,
		Mobile: r.Mobile,
		Note:   r.Note,
	}
}

// AppendLedgerEntryRequest represents a "you gave" / "you got" entry.
type AppendLedgerEntryRequest struct {
	EntryType string          `json:"entry_type" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"       validate:"max=1000"`
	Date      string          `json:"date"`
}

// ToUseCaseInput converts to use case input, reading date in loc.
func (r *AppendLedgerEntryRequest) ToUseCaseInput(loc *time.Location) (usecase.AppendLedgerEntryInput, error) {
	date, err := ParseEntryDate(r.Date, loc)
	if err != nil {
		return usecase.AppendLedgerEntryInput{}, err
	}

	return usecase.AppendLedgerEntryInput{
		Direction: r.EntryType,
		Amount:    r.Amount,
		Note:      r.Note,
		EntryDate: date,
	}, nil
}

// CreateCategoryRequest represents a request to add a cashbook category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	Type string `json:"type"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCategoryRequest) ToUseCaseInput() usecase.CreateCategoryInput {
	return usecase.CreateCategoryInput{Name: r.Name, Type: r.Type}
}

// AppendCashbookEntryRequest carries the cashbook form fields. It is filled
// from a JSON body or from multipart form values.
type AppendCashbookEntryRequest struct {
	Amount      string `json:"amount"       validate:"required"`
	EntryType   string `json:"entry_type"   validate:"required"`
	Category    string `json:"category"     validate:"required,max=120"`
	EntryDate   string `json:"entry_date"`
	PaymentMode string `json:"payment_mode"`
	Note        string `json:"note"         validate:"max=1000"`
}

// ToUseCaseInput converts to use case input. The attachment, if any, is set by the handler.
func (r *AppendCashbookEntryRequest) ToUseCaseInput(loc *time.Location) (usecase.AppendCashbookEntryInput, error) {
	amount, err := domain.ParseAmount(r.Amount)
	if err != nil {
		return usecase.AppendCashbookEntryInput{}, err
	}

	date, err := ParseEntryDate(r.EntryDate, loc)
	if err != nil {
		return usecase.AppendCashbookEntryInput{}, err
	}

	return usecase.AppendCashbookEntryInput{
		Category:    r.Category,
		Direction:   r.EntryType,
		Amount:      amount,
		PaymentMode: r.PaymentMode,
		Note:        r.Note,
		EntryDate:   date,
	}, nil
}

// ProductRequest is the full product body for create and PUT. Stock is absolute.
type ProductRequest struct {
	Name              string          `json:"name"                validate:"required,max=120"`
	SKU               string          `json:"sku"                 validate:"max=64"`
	Unit              string          `json:"unit"                validate:"max=20"`
	Price             decimal.Decimal `json:"price"`
	Stock             decimal.Decimal `json:"stock"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
}

// ToUseCaseInput converts to use case input.
func (r *ProductRequest) ToUseCaseInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:              r.Name,
		SKU:               r.SKU,
		Unit:              r.Unit,
		Price:             r.Price,
		Stock:             r.Stock,
		LowStockThreshold: r.LowStockThreshold,
	}
}

// AdjustStockRequest represents a stock in / stock out request.
type AdjustStockRequest struct {
	Direction string          `json:"direction" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	Note      string          `json:"note"      validate:"max=1000"`
}

// ToUseCaseInput converts to use case input.
func (r *AdjustStockRequest) ToUseCaseInput() usecase.AdjustStockInput {
	return usecase.AdjustStockInput{
		Direction: r.Direction,
		Quantity:  r.Quantity,
		Note:      r.Note,
	}
}

// ParseEntryDate accepts YYYY-MM-DD (midnight in loc) or RFC 3339. Empty means now.
func ParseEntryDate(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if t, err := time.ParseInLocation(domain.DateLayout, s, loc); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}

	return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", domain.ErrInvalidDateRange, s)
}
