package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hishabkitab/backend/internal/domain"
)

// ReconciliationUseCase checks stored stock against the movement log.
type ReconciliationUseCase struct {
	productRepo ProductRepository
	clock       Clock
}

// NewReconciliationUseCase creates a new reconciliation use case.
func NewReconciliationUseCase(productRepo ProductRepository, clock Clock) *ReconciliationUseCase {
	if clock == nil {
		clock = SystemClock()
	}
	return &ReconciliationUseCase{
		productRepo: productRepo,
		clock:       clock,
	}
}

// StockReconciliation is the result of checking one product.
type StockReconciliation struct {
	ProductID       string
	Name            string
	RecordedStock   decimal.Decimal
	CalculatedStock decimal.Decimal
	Difference      decimal.Decimal
	MovementCount   int
	IsReconciled    bool
}

// ReconcileProduct folds the product's movements and compares the result to
// its stored stock.
func (uc *ReconciliationUseCase) ReconcileProduct(ctx context.Context, ownerID, productID string) (*StockReconciliation, error) {
	product, err := uc.productRepo.GetByID(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}
	return uc.reconcile(ctx, product)
}

func (uc *ReconciliationUseCase) reconcile(ctx context.Context, product *domain.Product) (*StockReconciliation, error) {
	movements, err := uc.productRepo.ListMovements(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	summary := domain.Aggregate(domain.StockPostings(movements), domain.StockSigns)
	difference := product.Stock.Sub(summary.Net)

	return &StockReconciliation{
		ProductID:       product.ID,
		Name:            product.Name,
		RecordedStock:   product.Stock,
		CalculatedStock: summary.Net,
		Difference:      difference,
		MovementCount:   summary.Count,
		IsReconciled:    difference.IsZero(),
	}, nil
}

// ReconciliationReport summarizes a reconciliation run over all products.
type ReconciliationReport struct {
	TotalProducts      int
	ReconciledProducts int
	Discrepancies      []*StockReconciliation
	CheckedAt          time.Time
}

// ReconcileProducts checks every product the owner has.
func (uc *ReconciliationUseCase) ReconcileProducts(ctx context.Context, ownerID string) (*ReconciliationReport, error) {
	report := &ReconciliationReport{
		Discrepancies: make([]*StockReconciliation, 0),
	}

	for offset := 0; ; offset += ReconciliationBatchSize {
		products, err := uc.productRepo.List(ctx, ownerID, ReconciliationBatchSize, offset)
		if err != nil {
			return nil, err
		}

		for _, p := range products {
			result, err := uc.reconcile(ctx, p)
			if err != nil {
				return nil, fmt.Errorf("failed to reconcile product %s: %w", p.ID, err)
			}

			report.TotalProducts++
			if result.IsReconciled {
				report.ReconciledProducts++
			} else {
				report.Discrepancies = append(report.Discrepancies, result)
			}
		}

		if len(products) < ReconciliationBatchSize {
			break
		}
	}

	report.CheckedAt = uc.clock.Now()

	return report, nil
}
