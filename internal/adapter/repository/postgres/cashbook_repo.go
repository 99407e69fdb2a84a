package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/infrastructure/postgres/generated"
	"github.com/hishabkitab/backend/internal/usecase"
)

// CashbookRepository implements usecase.CashbookRepository.
type CashbookRepository struct {
	queries *generated.Queries
}

// NewCashbookRepository creates a new CashbookRepository.
func NewCashbookRepository(db generated.DBTX) *CashbookRepository {
	return &CashbookRepository{queries: generated.New(db)}
}

// CreateCategory inserts a category, rejecting case-insensitive duplicates.
func (r *CashbookRepository) CreateCategory(ctx context.Context, category *domain.CashbookCategory) error {
	err := r.queries.CreateCashbookCategory(ctx, generated.CreateCashbookCategoryParams{
		ID:        category.ID,
		OwnerID:   category.OwnerID,
		Name:      category.Name,
		Type:      string(category.Type),
		CreatedAt: timeToPgTimestamptz(category.CreatedAt),
	})
	if hasPgCode(err, pgErrUniqueViolation) {
		return domain.ErrCategoryExists
	}
	return err
}

// UpsertCategory returns the existing category with the same name or creates it.
func (r *CashbookRepository) UpsertCategory(ctx context.Context, tx usecase.Transaction, category *domain.CashbookCategory) (*domain.CashbookCategory, error) {
	row, err := txQueries(tx).UpsertCashbookCategory(ctx, generated.UpsertCashbookCategoryParams{
		ID:        category.ID,
		OwnerID:   category.OwnerID,
		Name:      category.Name,
		Type:      string(category.Type),
		CreatedAt: timeToPgTimestamptz(category.CreatedAt),
	})
	if err != nil {
		return nil, err
	}

	return rowToCategory(row), nil
}

// GetCategoryByName looks a category up case-insensitively.
func (r *CashbookRepository) GetCategoryByName(ctx context.Context, ownerID, name string) (*domain.CashbookCategory, error) {
	row, err := r.queries.GetCashbookCategoryByName(ctx, generated.GetCashbookCategoryByNameParams{
		OwnerID: ownerID,
		Name:    name,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}

	return rowToCategory(row), nil
}

// ListCategories lists the owner's categories by name.
func (r *CashbookRepository) ListCategories(ctx context.Context, ownerID string) ([]*domain.CashbookCategory, error) {
	rows, err := r.queries.ListCashbookCategories(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	categories := make([]*domain.CashbookCategory, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, rowToCategory(row))
	}

	return categories, nil
}

// CreateEntry appends a cashbook entry inside tx.
func (r *CashbookRepository) CreateEntry(ctx context.Context, tx usecase.Transaction, entry *domain.CashbookEntry) error {
	err := txQueries(tx).CreateCashbookEntry(ctx, generated.CreateCashbookEntryParams{
		ID:            entry.ID,
		OwnerID:       entry.OwnerID,
		CategoryID:    entry.CategoryID,
		EntryType:     string(entry.Direction),
		Amount:        decimalToNumeric(entry.Amount),
		PaymentMode:   string(entry.PaymentMode),
		Note:          entry.Note,
		EntryDate:     timeToPgTimestamptz(entry.EntryDate),
		AttachmentUrl: entry.AttachmentURL,
		CreatedAt:     timeToPgTimestamptz(entry.CreatedAt),
	})
	if hasPgCode(err, pgErrForeignKeyViolation) {
		return domain.ErrCategoryNotFound
	}
	return err
}

// ListEntries returns the owner's entries in the query's window, oldest first
// (entry_date, created_at, id ascending).
func (r *CashbookRepository) ListEntries(ctx context.Context, query usecase.CashbookEntryQuery) ([]*domain.CashbookEntry, error) {
	rows, err := r.queries.ListCashbookEntries(ctx, generated.ListCashbookEntriesParams{
		OwnerID: query.OwnerID,
		Start:   optionalTimestamptz(query.Start),
		End:     optionalTimestamptz(query.End),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.CashbookEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &domain.CashbookEntry{
			ID:            row.ID,
			OwnerID:       row.OwnerID,
			CategoryID:    row.CategoryID,
			Category:      row.CategoryName,
			Direction:     domain.CashDirection(row.EntryType),
			Amount:        numericToDecimal(row.Amount),
			PaymentMode:   domain.PaymentMode(row.PaymentMode),
			Note:          row.Note,
			EntryDate:     row.EntryDate.Time,
			AttachmentURL: row.AttachmentUrl,
			CreatedAt:     row.CreatedAt.Time,
		})
	}

	return entries, nil
}

func rowToCategory(row generated.CashbookCategory) *domain.CashbookCategory {
	return &domain.CashbookCategory{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Name:      row.Name,
		Type:      domain.CategoryType(row.Type),
		CreatedAt: row.CreatedAt.Time,
	}
}
