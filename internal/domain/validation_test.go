package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr bool
	}{
		{"whole rupees", decimal.NewFromInt(500), false},
		{"paise", decimal.RequireFromString("100.25"), false},
		{"zero", decimal.Zero, true},
		{"negative", decimal.NewFromInt(-10), true},
		{"below minimum", decimal.RequireFromString("0.001"), true},
		{"too many places", decimal.RequireFromString("1.005"), true},
		{"too large", decimal.RequireFromString(MaxEntryAmount).Add(decimal.NewFromInt(1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount)
			if tt.wantErr && !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("expected ErrInvalidAmount, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	amount, err := ParseAmount(" 42.50 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !amount.Equal(decimal.RequireFromString("42.5")) {
		t.Fatalf("expected 42.5, got %s", amount)
	}

	for _, in := range []string{"", "abc", "-5", "0"} {
		if _, err := ParseAmount(in); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParseAmount(%q): expected ErrInvalidAmount, got %v", in, err)
		}
	}
}

func TestValidateQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		quantity decimal.Decimal
		wantErr  bool
	}{
		{"whole units", decimal.NewFromInt(5), false},
		{"grams of a kilo", decimal.RequireFromString("0.250"), false},
		{"smallest stored unit", decimal.RequireFromString("0.001"), false},
		{"at maximum", decimal.RequireFromString(MaxQuantity), false},
		{"zero", decimal.Zero, true},
		{"negative", decimal.NewFromInt(-1), true},
		{"rounds to zero when stored", decimal.RequireFromString("0.0004"), true},
		{"too many places", decimal.RequireFromString("0.0005"), true},
		{"above maximum", decimal.RequireFromString(MaxQuantity).Add(decimal.RequireFromString("0.001")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuantity(tt.quantity)
			if tt.wantErr && !errors.Is(err, ErrInvalidQuantity) {
				t.Fatalf("expected ErrInvalidQuantity, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestProductValidateStockPrecision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		product Product
		wantErr error
	}{
		{"three places", Product{Name: "Rice", Stock: decimal.RequireFromString("10.125")}, nil},
		{"stock too precise", Product{Name: "Rice", Stock: decimal.RequireFromString("10.0004")}, ErrInvalidQuantity},
		{"stock too large", Product{Name: "Rice", Stock: decimal.RequireFromString("1e16")}, ErrInvalidQuantity},
		{"negative stock", Product{Name: "Rice", Stock: decimal.NewFromInt(-1)}, ErrNegativeStock},
		{"threshold too precise", Product{Name: "Rice", LowStockThreshold: decimal.RequireFromString("2.5001")}, ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) || !IsValidationError(err) {
				t.Fatalf("expected %v as a validation error, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	if err := ValidateName("Rahim Traders"); err != nil {
		t.Fatalf("expected valid name, got %v", err)
	}

	if err := ValidateName("   "); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}

	if err := ValidateName(strings.Repeat("ক", MaxNameLength+1)); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName for long name, got %v", err)
	}

	if err := ValidateName(strings.Repeat("ক", MaxNameLength)); err != nil {
		t.Fatalf("expected multibyte name at the limit to pass, got %v", err)
	}
}

func TestValidateMobile(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"", "+8801712345678", "98765 43210"} {
		if err := ValidateMobile(ok); err != nil {
			t.Fatalf("ValidateMobile(%q): unexpected error %v", ok, err)
		}
	}

	if err := ValidateMobile("call me"); !errors.Is(err, ErrInvalidMobile) {
		t.Fatalf("expected ErrInvalidMobile, got %v", err)
	}
}

func TestParseDirections(t *testing.T) {
	t.Parallel()

	if dir, err := ParseLedgerDirection("debit"); err != nil || dir != LedgerDebit {
		t.Fatalf("expected DEBIT, got %q %v", dir, err)
	}
	if _, err := ParseLedgerDirection("IN"); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
	if dir, err := ParseCashDirection(" out "); err != nil || dir != CashOut {
		t.Fatalf("expected OUT, got %q %v", dir, err)
	}
	if mode, err := ParsePaymentMode(""); err != nil || mode != PaymentCash {
		t.Fatalf("expected CASH default, got %q %v", mode, err)
	}
	if _, err := ParsePaymentMode("cheque"); !errors.Is(err, ErrInvalidPaymentMode) {
		t.Fatalf("expected ErrInvalidPaymentMode, got %v", err)
	}
	if typ, err := ParseCategoryType(""); err != nil || typ != CategoryBoth {
		t.Fatalf("expected BOTH default, got %q %v", typ, err)
	}
	if _, err := ParseStockDirection("sideways"); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestValidatePagination(t *testing.T) {
	t.Parallel()

	limit, offset := ValidatePagination(0, -3)
	if limit != 50 || offset != 0 {
		t.Fatalf("expected defaults 50/0, got %d/%d", limit, offset)
	}

	limit, _ = ValidatePagination(10_000, 0)
	if limit != 500 {
		t.Fatalf("expected limit capped at 500, got %d", limit)
	}
}

func TestErrorFamilies(t *testing.T) {
	t.Parallel()

	wrapped := errorf(ErrInvalidAmount, "bad")
	if !IsValidationError(wrapped) || IsNotFoundError(wrapped) || IsConflictError(wrapped) {
		t.Fatalf("expected wrapped amount error to be a validation error")
	}
	if !IsNotFoundError(ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound to be a not-found error")
	}
	if !IsConflictError(ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock to be a conflict error")
	}
}
