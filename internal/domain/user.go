package domain

import "errors"

// Owner is the business account every customer, category and product
// belongs to. Nothing is shared across owners.
type Owner struct {
	ID    string
	Email string
}

// Authentication errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)
