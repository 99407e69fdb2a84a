package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hishabkitab/backend/internal/adapter/http/dto"
	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/usecase"
)

// CustomerService defines the behavior needed by CustomerHandler.
type CustomerService interface {
	CreateCustomer(ctx context.Context, ownerID string, input usecase.CreateCustomerInput) (*domain.Customer, error)
	ListCustomers(ctx context.Context, ownerID string, input usecase.ListCustomersInput) (*usecase.CustomerList, error)
	DeleteCustomer(ctx context.Context, ownerID, id string) error
}

// BalanceService returns a customer's all-time balance.
type BalanceService interface {
	Balance(ctx context.Context, ownerID, customerID string) (*usecase.CustomerLedger, error)
}

// CustomerHandler handles customer-related HTTP requests.
type CustomerHandler struct {
	customerUC CustomerService
	balances   BalanceService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerUC CustomerService, balances BalanceService) *CustomerHandler {
	return &CustomerHandler{customerUC: customerUC, balances: balances}
}

// Create adds a customer.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	customer, err := h.customerUC.CreateCustomer(r.Context(), ownerID(r), req.ToUseCaseInput())
	if err != nil {
		handleError(w, r, "failed to create customer", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.CustomerFromDomain(customer))
}

// Get returns a customer with its balance.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	ledger, err := h.balances.Balance(r.Context(), ownerID(r), id)
	if err != nil {
		handleError(w, r, "failed to get customer", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomerFromLedger(ledger))
}

// List lists customers with their balances.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.customerUC.ListCustomers(r.Context(), ownerID(r), usecase.ListCustomersInput{
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		handleError(w, r, "failed to list customers", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomerListFromUseCase(list))
}

// Delete removes a customer and, by cascade, its ledger.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.customerUC.DeleteCustomer(r.Context(), ownerID(r), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, "failed to delete customer", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
