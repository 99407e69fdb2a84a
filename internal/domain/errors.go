package domain

import "errors"

var (
	// Validation errors
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidDirection    = errors.New("invalid entry type")
	ErrInvalidPaymentMode  = errors.New("invalid payment mode")
	ErrInvalidCategoryType = errors.New("invalid category type")
	ErrInvalidName         = errors.New("invalid name")
	ErrInvalidMobile       = errors.New("invalid mobile number")
	ErrInvalidNote         = errors.New("invalid note")
	ErrInvalidPrice        = errors.New("price cannot be negative")
	ErrInvalidAttachment   = errors.New("invalid attachment")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrNegativeStock       = errors.New("stock cannot be negative")

	// Not found errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCategoryNotFound = errors.New("cashbook category not found")
	ErrProductNotFound  = errors.New("product not found")

	// Conflict errors
	ErrInsufficientStock = errors.New("stock cannot be negative: insufficient stock")
	ErrCategoryExists    = errors.New("cashbook category already exists")
)

// IsValidationError reports whether err is caused by bad caller input.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidAmount,
		ErrInvalidDirection,
		ErrInvalidPaymentMode,
		ErrInvalidCategoryType,
		ErrInvalidName,
		ErrInvalidMobile,
		ErrInvalidNote,
		ErrInvalidPrice,
		ErrInvalidAttachment,
		ErrInvalidQuantity,
		ErrInvalidDateRange,
		ErrNegativeStock,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFoundError reports whether err refers to a missing resource.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrProductNotFound)
}

// IsConflictError reports whether err is a state conflict.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrInsufficientStock) || errors.Is(err, ErrCategoryExists)
}
