package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hishabkitab/backend/internal/domain"
)

// ProductUseCase handles products and their stock ledger.
type ProductUseCase struct {
	txManager   TransactionManager
	productRepo ProductRepository
	retrier     Retrier
	idGen       IDGenerator
	clock       Clock
	recorder    Recorder
}

// NewProductUseCase creates a new ProductUseCase.
func NewProductUseCase(
	txManager TransactionManager,
	productRepo ProductRepository,
	retrier Retrier,
	idGen IDGenerator,
	clock Clock,
	recorder Recorder,
) *ProductUseCase {
	if clock == nil {
		clock = SystemClock()
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &ProductUseCase{
		txManager:   txManager,
		productRepo: productRepo,
		retrier:     retrier,
		idGen:       idGen,
		clock:       clock,
		recorder:    recorder,
	}
}

// ProductInput represents the full, user-editable state of a product.
type ProductInput struct {
	Name              string
	SKU               string
	Unit              string
	Price             decimal.Decimal
	Stock             decimal.Decimal
	LowStockThreshold decimal.Decimal
}

func (in ProductInput) apply(p *domain.Product) {
	p.Name = strings.TrimSpace(in.Name)
	p.SKU = strings.TrimSpace(in.SKU)
	p.Unit = strings.TrimSpace(in.Unit)
	p.Price = in.Price
	p.Stock = in.Stock
	p.LowStockThreshold = in.LowStockThreshold
}

// CreateProduct creates a product. A positive opening stock is logged as an
// opening movement in the same transaction.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, ownerID string, input ProductInput) (*domain.Product, error) {
	now := uc.clock.Now()

	product := &domain.Product{
		ID:        uc.idGen.Generate(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.apply(product)

	if err := product.Validate(); err != nil {
		return nil, err
	}

	var opening *domain.StockMovement
	if m := domain.MovementForDelta(product.Stock, domain.ReasonOpening); m != nil {
		m.ID = uc.idGen.Generate()
		m.ProductID = product.ID
		m.StockAfter = product.Stock
		m.CreatedAt = now
		opening = m
	}

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.productRepo.Create(ctx, tx, product); err != nil {
			return err
		}

		if opening != nil {
			if err := uc.productRepo.CreateMovement(ctx, tx, opening); err != nil {
				return err
			}
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves one of the owner's products.
func (uc *ProductUseCase) GetProduct(ctx context.Context, ownerID, id string) (*domain.Product, error) {
	return uc.productRepo.GetByID(ctx, ownerID, id)
}

// ListProductsInput represents input for listing products.
type ListProductsInput struct {
	Limit  int
	Offset int
}

// ListProducts lists the owner's products.
func (uc *ProductUseCase) ListProducts(ctx context.Context, ownerID string, input ListProductsInput) ([]*domain.Product, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.productRepo.List(ctx, ownerID, limit, offset)
}

// DeleteProduct deletes a product and its movement log.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, ownerID, id string) error {
	return uc.productRepo.Delete(ctx, ownerID, id)
}

// UpdateProduct replaces a product's editable fields including the absolute
// stock. The row is locked for the duration and any stock change is logged as
// an adjustment movement.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, ownerID, id string, input ProductInput) (*domain.Product, error) {
	candidate := &domain.Product{}
	input.apply(candidate)
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Product

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		product, err := uc.productRepo.GetByIDForUpdate(ctx, tx, ownerID, id)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		delta := input.Stock.Sub(product.Stock)

		input.apply(product)
		product.UpdatedAt = now

		if err := uc.productRepo.Update(ctx, tx, product); err != nil {
			return err
		}

		if m := domain.MovementForDelta(delta, domain.ReasonAdjustment); m != nil {
			m.ID = uc.idGen.Generate()
			m.ProductID = product.ID
			m.StockAfter = product.Stock
			m.CreatedAt = now
			if err := uc.productRepo.CreateMovement(ctx, tx, m); err != nil {
				return err
			}
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// AdjustStockInput represents a stock in or stock out action.
type AdjustStockInput struct {
	Direction string
	Quantity  decimal.Decimal
	Note      string
}

// StockAdjustment is the outcome of a stock in or stock out.
type StockAdjustment struct {
	Product  *domain.Product
	Movement *domain.StockMovement
}

// AdjustStock applies a signed quantity to a product's stock with a single
// guarded update. A change that would take stock below zero is rejected with
// domain.ErrInsufficientStock and leaves the stock unchanged.
func (uc *ProductUseCase) AdjustStock(ctx context.Context, ownerID, id string, input AdjustStockInput) (*StockAdjustment, error) {
	direction, err := domain.ParseStockDirection(input.Direction)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateQuantity(input.Quantity); err != nil {
		return nil, err
	}
	if err := domain.ValidateNote(input.Note); err != nil {
		return nil, err
	}

	reason := domain.ReasonStockIn
	if direction == domain.StockOut {
		reason = domain.ReasonStockOut
	}

	var movement *domain.StockMovement

	err = uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		now := uc.clock.Now()

		stock, err := uc.productRepo.AdjustStock(ctx, tx, ownerID, id, direction.Delta(input.Quantity), now)
		if err != nil {
			return err
		}

		m := &domain.StockMovement{
			ID:         uc.idGen.Generate(),
			ProductID:  id,
			Direction:  direction,
			Quantity:   input.Quantity,
			Reason:     reason,
			Note:       input.Note,
			StockAfter: stock,
			CreatedAt:  now,
		}

		if err := uc.productRepo.CreateMovement(ctx, tx, m); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		movement = m
		return nil
	})
	if errors.Is(err, domain.ErrInsufficientStock) {
		// No row matched: tell a missing product apart from a failed guard.
		if _, lookupErr := uc.productRepo.GetByID(ctx, ownerID, id); lookupErr != nil {
			return nil, lookupErr
		}
		uc.recorder.StockRejected()
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	uc.recorder.StockAdjusted(string(direction))

	product, err := uc.productRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	return &StockAdjustment{Product: product, Movement: movement}, nil
}

// ListMovements returns the product's stock log, oldest first.
func (uc *ProductUseCase) ListMovements(ctx context.Context, ownerID, id string) ([]*domain.StockMovement, error) {
	if _, err := uc.productRepo.GetByID(ctx, ownerID, id); err != nil {
		return nil, err
	}
	return uc.productRepo.ListMovements(ctx, id)
}
