package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hishabkitab/backend/internal/adapter/http/dto"
	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/usecase"
)

// ProductService defines the behavior needed by ProductHandler.
type ProductService interface {
	CreateProduct(ctx context.Context, ownerID string, input usecase.ProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, ownerID, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, ownerID string, input usecase.ListProductsInput) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, ownerID, id string, input usecase.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, ownerID, id string) error
	AdjustStock(ctx context.Context, ownerID, id string, input usecase.AdjustStockInput) (*usecase.StockAdjustment, error)
	ListMovements(ctx context.Context, ownerID, id string) ([]*domain.StockMovement, error)
}

// ReconciliationService checks stored stock against the movement log.
type ReconciliationService interface {
	ReconcileProducts(ctx context.Context, ownerID string) (*usecase.ReconciliationReport, error)
}

// ProductHandler handles product and stock requests.
type ProductHandler struct {
	productUC  ProductService
	reconciler ReconciliationService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productUC ProductService, reconciler ReconciliationService) *ProductHandler {
	return &ProductHandler{productUC: productUC, reconciler: reconciler}
}

// Create adds a product; a positive stock is logged as opening stock.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	product, err := h.productUC.CreateProduct(r.Context(), ownerID(r), req.ToUseCaseInput())
	if err != nil {
		handleError(w, r, "failed to create product", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ProductFromDomain(product))
}

// Get returns one product.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.productUC.GetProduct(r.Context(), ownerID(r), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, "failed to get product", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProductFromDomain(product))
}

// List lists products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUC.ListProducts(r.Context(), ownerID(r), usecase.ListProductsInput{
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		handleError(w, r, "failed to list products", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProductsFromDomain(products))
}

// Update replaces a product. Stock in the body is absolute.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	product, err := h.productUC.UpdateProduct(r.Context(), ownerID(r), chi.URLParam(r, "id"), req.ToUseCaseInput())
	if err != nil {
		handleError(w, r, "failed to update product", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProductFromDomain(product))
}

// Delete removes a product.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.productUC.DeleteProduct(r.Context(), ownerID(r), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, "failed to delete product", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AdjustStock applies a stock in or stock out.
func (h *ProductHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustStockRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.productUC.AdjustStock(r.Context(), ownerID(r), chi.URLParam(r, "id"), req.ToUseCaseInput())
	if err != nil {
		handleError(w, r, "failed to adjust stock", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.StockAdjustmentFromUseCase(result))
}

// Movements returns the product's stock log.
func (h *ProductHandler) Movements(w http.ResponseWriter, r *http.Request) {
	movements, err := h.productUC.ListMovements(r.Context(), ownerID(r), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, "failed to list movements", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementsFromDomain(movements))
}

// Reconcile compares every product's stock with its movement log.
func (h *ProductHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconciler.ReconcileProducts(r.Context(), ownerID(r))
	if err != nil {
		handleError(w, r, "failed to reconcile stock", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationReportFromUseCase(report))
}
