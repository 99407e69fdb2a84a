package usecase

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hishabkitab/backend/internal/domain"
)

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.Customer, error)
	List(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Customer, error)
	// Delete removes the customer and, by cascade, its ledger entries.
	Delete(ctx context.Context, ownerID, id string) error
}

// LedgerEntryRepository defines data access for customer ledger entries.
// Entries are append-only.
type LedgerEntryRepository interface {
	Create(ctx context.Context, entry *domain.LedgerEntry) error
	// ListByCustomer returns entries ordered by entry_date, created_at, id.
	// Nil bounds are open; end is exclusive.
	ListByCustomer(ctx context.Context, customerID string, start, end *time.Time) ([]*domain.LedgerEntry, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.LedgerEntry, error)
}

// CashbookEntryQuery narrows a cashbook listing.
type CashbookEntryQuery struct {
	OwnerID string
	Start   *time.Time
	End     *time.Time
}

// CashbookRepository defines data access for cashbook categories and entries.
type CashbookRepository interface {
	CreateCategory(ctx context.Context, category *domain.CashbookCategory) error
	// UpsertCategory returns the owner's category with the same name
	// (case-insensitive), inserting category when none exists.
	UpsertCategory(ctx context.Context, tx Transaction, category *domain.CashbookCategory) (*domain.CashbookCategory, error)
	GetCategoryByName(ctx context.Context, ownerID, name string) (*domain.CashbookCategory, error)
	ListCategories(ctx context.Context, ownerID string) ([]*domain.CashbookCategory, error)
	CreateEntry(ctx context.Context, tx Transaction, entry *domain.CashbookEntry) error
	// ListEntries returns entries ordered by entry_date, created_at, id.
	ListEntries(ctx context.Context, query CashbookEntryQuery) ([]*domain.CashbookEntry, error)
}

// ProductRepository defines data access for products and their stock log.
type ProductRepository interface {
	Create(ctx context.Context, tx Transaction, product *domain.Product) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.Product, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, ownerID, id string) (*domain.Product, error)
	Update(ctx context.Context, tx Transaction, product *domain.Product) error
	// AdjustStock applies delta in a single guarded statement and returns the
	// new stock. It returns domain.ErrInsufficientStock when no row matched,
	// either because the product is missing or the guard failed.
	AdjustStock(ctx context.Context, tx Transaction, ownerID, id string, delta decimal.Decimal, updatedAt time.Time) (decimal.Decimal, error)
	List(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Product, error)
	Delete(ctx context.Context, ownerID, id string) error
	CreateMovement(ctx context.Context, tx Transaction, movement *domain.StockMovement) error
	ListMovements(ctx context.Context, productID string) ([]*domain.StockMovement, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// Attachment is an uploaded receipt or bill.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// AttachmentStore persists cashbook attachments and returns their URL.
// Delete removes an upload whose entry was never committed.
type AttachmentStore interface {
	Put(ctx context.Context, key string, attachment Attachment) (string, error)
	Delete(ctx context.Context, key string) error
}

// Recorder receives bookkeeping events for metrics.
type Recorder interface {
	EntryAppended(book string)
	StockAdjusted(direction string)
	StockRejected()
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a reservation so a failed request can be retried.
	Release(ctx context.Context, key string) error
}
