package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/infrastructure/postgres/generated"
)

// CustomerRepository implements usecase.CustomerRepository.
type CustomerRepository struct {
	queries *generated.Queries
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(db generated.DBTX) *CustomerRepository {
	return &CustomerRepository{queries: generated.New(db)}
}

// Create inserts a customer.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return r.queries.CreateCustomer(ctx, generated.CreateCustomerParams{
		ID:        customer.ID,
		OwnerID:   customer.OwnerID,
		Name:      customer.Name,
		Mobile:    customer.Mobile,
		Note:      customer.Note,
		CreatedAt: timeToPgTimestamptz(customer.CreatedAt),
	})
}

// GetByID retrieves one of the owner's customers.
func (r *CustomerRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Customer, error) {
	row, err := r.queries.GetCustomerByID(ctx, generated.GetCustomerByIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}

	return rowToCustomer(row), nil
}

// List lists the owner's customers ordered by name.
func (r *CustomerRepository) List(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Customer, error) {
	rows, err := r.queries.ListCustomers(ctx, generated.ListCustomersParams{
		OwnerID: ownerID,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		return nil, err
	}

	customers := make([]*domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, rowToCustomer(row))
	}

	return customers, nil
}

// Delete removes the customer; its ledger entries go with it by cascade.
func (r *CustomerRepository) Delete(ctx context.Context, ownerID, id string) error {
	n, err := r.queries.DeleteCustomer(ctx, generated.DeleteCustomerParams{ID: id, OwnerID: ownerID})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func rowToCustomer(row generated.Customer) *domain.Customer {
	return &domain.Customer{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Name:      row.Name,
		Mobile:    row.Mobile,
		Note:      row.Note,
		CreatedAt: row.CreatedAt.Time,
	}
}
