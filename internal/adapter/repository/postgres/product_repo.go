package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/infrastructure/postgres/generated"
	"github.com/hishabkitab/backend/internal/usecase"
)

// ProductRepository implements usecase.ProductRepository.
type ProductRepository struct {
	queries *generated.Queries
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db generated.DBTX) *ProductRepository {
	return &ProductRepository{queries: generated.New(db)}
}

// Create inserts a product inside tx.
func (r *ProductRepository) Create(ctx context.Context, tx usecase.Transaction, product *domain.Product) error {
	return txQueries(tx).CreateProduct(ctx, generated.CreateProductParams{
		ID:                product.ID,
		OwnerID:           product.OwnerID,
		Name:              product.Name,
		Sku:               product.SKU,
		Unit:              product.Unit,
		Price:             decimalToNumeric(product.Price),
		Stock:             decimalToNumeric(product.Stock),
		LowStockThreshold: decimalToNumeric(product.LowStockThreshold),
		CreatedAt:         timeToPgTimestamptz(product.CreatedAt),
		UpdatedAt:         timeToPgTimestamptz(product.UpdatedAt),
	})
}

// GetByID retrieves one of the owner's products.
func (r *ProductRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Product, error) {
	row, err := r.queries.GetProductByID(ctx, generated.GetProductByIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	return rowToProduct(row), nil
}

// GetByIDForUpdate retrieves a product and locks its row until tx ends.
func (r *ProductRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, ownerID, id string) (*domain.Product, error) {
	row, err := txQueries(tx).GetProductByIDForUpdate(ctx, generated.GetProductByIDForUpdateParams{ID: id, OwnerID: ownerID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	return rowToProduct(row), nil
}

// Update overwrites a product's editable fields inside tx.
func (r *ProductRepository) Update(ctx context.Context, tx usecase.Transaction, product *domain.Product) error {
	return txQueries(tx).UpdateProduct(ctx, generated.UpdateProductParams{
		ID:                product.ID,
		OwnerID:           product.OwnerID,
		Name:              product.Name,
		Sku:               product.SKU,
		Unit:              product.Unit,
		Price:             decimalToNumeric(product.Price),
		Stock:             decimalToNumeric(product.Stock),
		LowStockThreshold: decimalToNumeric(product.LowStockThreshold),
		UpdatedAt:         timeToPgTimestamptz(product.UpdatedAt),
	})
}

// AdjustStock applies delta in a single guarded UPDATE and returns the new stock.
// No row comes back when the product is missing or the result would go below
// zero; both surface as domain.ErrInsufficientStock and the caller tells them apart.
func (r *ProductRepository) AdjustStock(ctx context.Context, tx usecase.Transaction, ownerID, id string, delta decimal.Decimal, updatedAt time.Time) (decimal.Decimal, error) {
	stock, err := txQueries(tx).AdjustProductStock(ctx, generated.AdjustProductStockParams{
		ID:        id,
		OwnerID:   ownerID,
		Delta:     decimalToNumeric(delta),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrInsufficientStock
		}
		if hasPgCode(err, pgErrNumericOutOfRange) {
			return decimal.Zero, fmt.Errorf("%w: stock would exceed %s", domain.ErrInvalidQuantity, domain.MaxQuantity)
		}
		return decimal.Zero, err
	}

	return numericToDecimal(stock), nil
}

// List lists the owner's products ordered by name.
func (r *ProductRepository) List(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Product, error) {
	rows, err := r.queries.ListProducts(ctx, generated.ListProductsParams{
		OwnerID: ownerID,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, rowToProduct(row))
	}

	return products, nil
}

// Delete removes a product and its movement history.
func (r *ProductRepository) Delete(ctx context.Context, ownerID, id string) error {
	n, err := r.queries.DeleteProduct(ctx, generated.DeleteProductParams{ID: id, OwnerID: ownerID})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// CreateMovement records a stock movement inside tx.
func (r *ProductRepository) CreateMovement(ctx context.Context, tx usecase.Transaction, movement *domain.StockMovement) error {
	return txQueries(tx).CreateStockMovement(ctx, generated.CreateStockMovementParams{
		ID:         movement.ID,
		ProductID:  movement.ProductID,
		Direction:  string(movement.Direction),
		Quantity:   decimalToNumeric(movement.Quantity),
		Reason:     string(movement.Reason),
		Note:       movement.Note,
		StockAfter: decimalToNumeric(movement.StockAfter),
		CreatedAt:  timeToPgTimestamptz(movement.CreatedAt),
	})
}

// ListMovements returns a product's movements oldest first.
func (r *ProductRepository) ListMovements(ctx context.Context, productID string) ([]*domain.StockMovement, error) {
	rows, err := r.queries.ListStockMovements(ctx, productID)
	if err != nil {
		return nil, err
	}

	movements := make([]*domain.StockMovement, 0, len(rows))
	for _, row := range rows {
		movements = append(movements, &domain.StockMovement{
			ID:         row.ID,
			ProductID:  row.ProductID,
			Direction:  domain.StockDirection(row.Direction),
			Quantity:   numericToDecimal(row.Quantity),
			Reason:     domain.MovementReason(row.Reason),
			Note:       row.Note,
			StockAfter: numericToDecimal(row.StockAfter),
			CreatedAt:  row.CreatedAt.Time,
		})
	}

	return movements, nil
}

func rowToProduct(row generated.Product) *domain.Product {
	return &domain.Product{
		ID:                row.ID,
		OwnerID:           row.OwnerID,
		Name:              row.Name,
		SKU:               row.Sku,
		Unit:              row.Unit,
		Price:             numericToDecimal(row.Price),
		Stock:             numericToDecimal(row.Stock),
		LowStockThreshold: numericToDecimal(row.LowStockThreshold),
		CreatedAt:         row.CreatedAt.Time,
		UpdatedAt:         row.UpdatedAt.Time,
	}
}
