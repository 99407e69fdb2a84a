package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hishabkitab/backend/internal/domain"
)

// Reporting carries the presentation settings balances are computed under.
type Reporting struct {
	Location       *time.Location
	CurrencySymbol string
}

func (r Reporting) location() *time.Location {
	if r.Location == nil {
		return time.UTC
	}
	return r.Location
}

// CustomerUseCase handles customer business logic.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	entryRepo    LedgerEntryRepository
	idGen        IDGenerator
	clock        Clock
	reporting    Reporting
}

// NewCustomerUseCase creates a new CustomerUseCase.
func NewCustomerUseCase(
	customerRepo CustomerRepository,
	entryRepo LedgerEntryRepository,
	idGen IDGenerator,
	clock Clock,
	reporting Reporting,
) *CustomerUseCase {
	if clock == nil {
		clock = SystemClock()
	}
	return &CustomerUseCase{
		customerRepo: customerRepo,
		entryRepo:    entryRepo,
		idGen:        idGen,
		clock:        clock,
		reporting:    reporting,
	}
}

// CreateCustomerInput represents input for creating a customer.
type CreateCustomerInput struct {
	Name   string
	Mobile string
	Note   string
}

// CreateCustomer creates a new customer for the owner.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, ownerID string, input CreateCustomerInput) (*domain.Customer, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateMobile(input.Mobile); err != nil {
		return nil, err
	}
	if err := domain.ValidateNote(input.Note); err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		ID:        uc.idGen.Generate(),
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(input.Name),
		Mobile:    strings.ReplaceAll(strings.TrimSpace(input.Mobile), " ", ""),
		Note:      input.Note,
		CreatedAt: uc.clock.Now(),
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves one of the owner's customers.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, ownerID, id string) (*domain.Customer, error) {
	return uc.customerRepo.GetByID(ctx, ownerID, id)
}

// DeleteCustomer deletes a customer together with its ledger.
func (uc *CustomerUseCase) DeleteCustomer(ctx context.Context, ownerID, id string) error {
	return uc.customerRepo.Delete(ctx, ownerID, id)
}

// ListCustomersInput represents input for listing customers.
type ListCustomersInput struct {
	Limit  int
	Offset int
}

// CustomerBalance is a customer with its derived receivable.
type CustomerBalance struct {
	Customer *domain.Customer
	Balance  decimal.Decimal
	Label    string
}

// CustomerList is a page of customers plus owner-wide totals.
type CustomerList struct {
	Customers   []CustomerBalance
	YouWillGet  decimal.Decimal
	YouWillGive decimal.Decimal
}

// ListCustomers lists the owner's customers with balances derived from the
// full entry history.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context, ownerID string, input ListCustomersInput) (*CustomerList, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	customers, err := uc.customerRepo.List(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	summary := domain.Aggregate(domain.LedgerPostings(entries), domain.CustomerLedgerSigns)

	list := &CustomerList{
		Customers:   make([]CustomerBalance, 0, len(customers)),
		YouWillGet:  decimal.Zero,
		YouWillGive: decimal.Zero,
	}

	for _, balance := range summary.Partitions {
		if balance.IsPositive() {
			list.YouWillGet = list.YouWillGet.Add(balance)
		} else {
			list.YouWillGive = list.YouWillGive.Add(balance.Abs())
		}
	}

	for _, c := range customers {
		balance := summary.Partition(c.ID)
		list.Customers = append(list.Customers, CustomerBalance{
			Customer: c,
			Balance:  balance,
			Label:    domain.BalanceLabel(balance, uc.reporting.CurrencySymbol),
		})
	}

	return list, nil
}
