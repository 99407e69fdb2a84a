package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/usecase"
)

var categoryColumns = []string{"id", "owner_id", "name", "type", "created_at"}

func TestCashbookRepositoryCreateCategoryDuplicate(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectExec("INSERT INTO cashbook_categories").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgErrUniqueViolation})

	err := NewCashbookRepository(pool).CreateCategory(context.Background(), &domain.CashbookCategory{
		ID:      "cat1",
		OwnerID: "owner-1",
		Name:    "rent",
		Type:    domain.CategoryOut,
	})
	require.ErrorIs(t, err, domain.ErrCategoryExists)
}

func TestCashbookRepositoryUpsertCategoryReturnsExisting(t *testing.T) {
	pool := newMockPool(t)
	tx := beginTx(t, pool)
	ts := pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}

	pool.ExpectQuery("ON CONFLICT").
		WithArgs("new-id", "owner-1", "RENT", "BOTH", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(categoryColumns).AddRow("cat1", "owner-1", "Rent", "OUT", ts))

	category, err := NewCashbookRepository(pool).UpsertCategory(context.Background(), tx, &domain.CashbookCategory{
		ID:      "new-id",
		OwnerID: "owner-1",
		Name:    "RENT",
		Type:    domain.CategoryBoth,
	})
	require.NoError(t, err)
	assert.Equal(t, "cat1", category.ID)
	assert.Equal(t, "Rent", category.Name)
	assert.Equal(t, domain.CategoryOut, category.Type)
}

func TestCashbookRepositoryGetCategoryByNameNotFound(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery("FROM cashbook_categories").
		WithArgs("owner-1", "Travel").
		WillReturnError(pgx.ErrNoRows)

	_, err := NewCashbookRepository(pool).GetCategoryByName(context.Background(), "owner-1", "Travel")
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCashbookRepositoryListEntries(t *testing.T) {
	pool := newMockPool(t)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	ts := pgtype.Timestamptz{Time: start.Add(time.Hour), Valid: true}

	pool.ExpectQuery(`(?s)FROM cashbook_entries.*ORDER BY ce\.entry_date, ce\.created_at, ce\.id\s*$`).
		WithArgs("owner-1", timeToPgTimestamptz(start), timeToPgTimestamptz(end)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "owner_id", "category_id", "entry_type", "amount", "payment_mode",
			"note", "entry_date", "attachment_url", "created_at", "category_name",
		}).AddRow("e1", "owner-1", "cat1", "OUT", decimalToNumeric(dec(t, "800")), "ONLINE",
			"march rent", ts, "https://files.example/r.jpg", ts, "Rent").
			AddRow("e2", "owner-1", "cat2", "IN", decimalToNumeric(dec(t, "1200")), "CASH",
				"", pgtype.Timestamptz{Time: start.Add(48 * time.Hour), Valid: true}, "", ts, "Sales"))

	entries, err := NewCashbookRepository(pool).ListEntries(context.Background(), usecase.CashbookEntryQuery{
		OwnerID: "owner-1",
		Start:   &start,
		End:     &end,
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, []string{"e1", "e2"}, []string{entries[0].ID, entries[1].ID})
	assert.Equal(t, "Rent", entries[0].Category)
	assert.Equal(t, domain.PaymentOnline, entries[0].PaymentMode)
	assert.Equal(t, "https://files.example/r.jpg", entries[0].AttachmentURL)
	assertExpectations(t, pool)
}
