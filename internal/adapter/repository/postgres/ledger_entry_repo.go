package postgres

import (
	"context"
	"time"

	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/infrastructure/postgres/generated"
)

// LedgerEntryRepository implements usecase.LedgerEntryRepository.
type LedgerEntryRepository struct {
	queries *generated.Queries
}

// NewLedgerEntryRepository creates a new LedgerEntryRepository.
func NewLedgerEntryRepository(db generated.DBTX) *LedgerEntryRepository {
	return &LedgerEntryRepository{queries: generated.New(db)}
}

// Create appends an entry.
func (r *LedgerEntryRepository) Create(ctx context.Context, entry *domain.LedgerEntry) error {
	err := r.queries.CreateLedgerEntry(ctx, generated.CreateLedgerEntryParams{
		ID:         entry.ID,
		CustomerID: entry.CustomerID,
		EntryType:  string(entry.Direction),
		Amount:     decimalToNumeric(entry.Amount),
		Note:       entry.Note,
		EntryDate:  timeToPgTimestamptz(entry.EntryDate),
		CreatedAt:  timeToPgTimestamptz(entry.CreatedAt),
	})
	if hasPgCode(err, pgErrForeignKeyViolation) {
		return domain.ErrCustomerNotFound
	}
	return err
}

// ListByCustomer returns the customer's entries in [start, end).
func (r *LedgerEntryRepository) ListByCustomer(ctx context.Context, customerID string, start, end *time.Time) ([]*domain.LedgerEntry, error) {
	rows, err := r.queries.ListLedgerEntriesByCustomer(ctx, generated.ListLedgerEntriesByCustomerParams{
		CustomerID: customerID,
		Start:      optionalTimestamptz(start),
		End:        optionalTimestamptz(end),
	})
	if err != nil {
		return nil, err
	}

	return rowsToLedgerEntries(rows), nil
}

// ListByOwner returns every entry across the owner's customers.
func (r *LedgerEntryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.LedgerEntry, error) {
	rows, err := r.queries.ListLedgerEntriesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return rowsToLedgerEntries(rows), nil
}

func rowsToLedgerEntries(rows []generated.LedgerEntry) []*domain.LedgerEntry {
	entries := make([]*domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &domain.LedgerEntry{
			ID:         row.ID,
			CustomerID: row.CustomerID,
			Direction:  domain.LedgerDirection(row.EntryType),
			Amount:     numericToDecimal(row.Amount),
			Note:       row.Note,
			EntryDate:  row.EntryDate.Time,
			CreatedAt:  row.CreatedAt.Time,
		})
	}
	return entries
}
