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
)

var productColumns = []string{"id", "owner_id", "name", "sku", "unit", "price", "stock", "low_stock_threshold", "created_at", "updated_at"}

func TestProductRepositoryAdjustStock(t *testing.T) {
	pool := newMockPool(t)
	tx := beginTx(t, pool)
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	pool.ExpectQuery("UPDATE products").
		WithArgs("p1", "owner-1", decimalToNumeric(dec(t, "-4")), timeToPgTimestamptz(now)).
		WillReturnRows(pgxmock.NewRows([]string{"stock"}).AddRow(decimalToNumeric(dec(t, "6"))))

	stock, err := NewProductRepository(pool).AdjustStock(context.Background(), tx, "owner-1", "p1", dec(t, "-4"), now)
	require.NoError(t, err)
	assert.True(t, stock.Equal(dec(t, "6")))
	assertExpectations(t, pool)
}

func TestProductRepositoryAdjustStockGuardRejects(t *testing.T) {
	pool := newMockPool(t)
	tx := beginTx(t, pool)

	pool.ExpectQuery("UPDATE products").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	_, err := NewProductRepository(pool).AdjustStock(context.Background(), tx, "owner-1", "p1", dec(t, "-15"), time.Now())
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestProductRepositoryAdjustStockPassesThroughLockErrors(t *testing.T) {
	pool := newMockPool(t)
	tx := beginTx(t, pool)
	lockErr := &pgconn.PgError{Code: pgErrDeadlock}

	pool.ExpectQuery("UPDATE products").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(lockErr)

	_, err := NewProductRepository(pool).AdjustStock(context.Background(), tx, "owner-1", "p1", dec(t, "1"), time.Now())
	require.ErrorIs(t, err, lockErr)
	assert.True(t, isRetryableError(err))
}

func TestProductRepositoryAdjustStockOverflowIsValidationError(t *testing.T) {
	pool := newMockPool(t)
	tx := beginTx(t, pool)

	pool.ExpectQuery("UPDATE products").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgErrNumericOutOfRange})

	_, err := NewProductRepository(pool).AdjustStock(context.Background(), tx, "owner-1", "p1", dec(t, domain.MaxQuantity), time.Now())
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.True(t, domain.IsValidationError(err))
}

func TestProductRepositoryGetByID(t *testing.T) {
	pool := newMockPool(t)
	ts := pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}

	pool.ExpectQuery("FROM products").
		WithArgs("p1", "owner-1").
		WillReturnRows(pgxmock.NewRows(productColumns).AddRow(
			"p1", "owner-1", "Soap", "SKU-1", "pcs",
			decimalToNumeric(dec(t, "35.50")), decimalToNumeric(dec(t, "2.5")), decimalToNumeric(dec(t, "3")),
			ts, ts,
		))

	product, err := NewProductRepository(pool).GetByID(context.Background(), "owner-1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "SKU-1", product.SKU)
	assert.True(t, product.Price.Equal(dec(t, "35.5")))
	assert.True(t, product.IsLowStock())
}

func TestProductRepositoryNotFound(t *testing.T) {
	pool := newMockPool(t)
	repo := NewProductRepository(pool)

	pool.ExpectQuery("FROM products").WithArgs("p9", "owner-1").WillReturnError(pgx.ErrNoRows)
	_, err := repo.GetByID(context.Background(), "owner-1", "p9")
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	pool.ExpectExec("DELETE FROM products").WithArgs("p9", "owner-1").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.ErrorIs(t, repo.Delete(context.Background(), "owner-1", "p9"), domain.ErrProductNotFound)

	tx := beginTx(t, pool)
	pool.ExpectQuery("FOR UPDATE").WithArgs("p9", "owner-1").WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetByIDForUpdate(context.Background(), tx, "owner-1", "p9")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductRepositoryListMovements(t *testing.T) {
	pool := newMockPool(t)
	ts := pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}

	pool.ExpectQuery("FROM stock_movements").
		WithArgs("p1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "product_id", "direction", "quantity", "reason", "note", "stock_after", "created_at"}).
			AddRow("m1", "p1", "IN", decimalToNumeric(dec(t, "10")), "opening", "", decimalToNumeric(dec(t, "10")), ts).
			AddRow("m2", "p1", "OUT", decimalToNumeric(dec(t, "4")), "stock_out", "sold", decimalToNumeric(dec(t, "6")), ts))

	movements, err := NewProductRepository(pool).ListMovements(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, domain.ReasonStockOut, movements[1].Reason)
	assert.True(t, movements[1].StockAfter.Equal(dec(t, "6")))
}
