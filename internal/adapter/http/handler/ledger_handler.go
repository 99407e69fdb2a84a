package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/hishabkitab/backend/internal/adapter/http/dto"
	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/infrastructure/report"
	"github.com/hishabkitab/backend/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	AppendEntry(ctx context.Context, ownerID, customerID string, input usecase.AppendLedgerEntryInput) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, ownerID, customerID string, dateRange domain.DateRange) (*usecase.CustomerLedger, error)
}

// LedgerHandler handles customer ledger requests.
type LedgerHandler struct {
	ledgerUC  LedgerService
	reporting usecase.Reporting
	now       func() time.Time
}

// NewLedgerHandler creates a new LedgerHandler. reporting decides how dates
// are read and how the statement renders amounts.
func NewLedgerHandler(ledgerUC LedgerService, reporting usecase.Reporting) *LedgerHandler {
	if reporting.Location == nil {
		reporting.Location = time.UTC
	}
	return &LedgerHandler{ledgerUC: ledgerUC, reporting: reporting, now: time.Now}
}

// Append posts a "you gave" (DEBIT) or "you got" (CREDIT) entry.
func (h *LedgerHandler) Append(w http.ResponseWriter, r *http.Request) {
	var req dto.AppendLedgerEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, err := req.ToUseCaseInput(h.reporting.Location)
	if err != nil {
		handleError(w, r, "invalid entry", err)
		return
	}

	entry, err := h.ledgerUC.AppendEntry(r.Context(), ownerID(r), chi.URLParam(r, "id"), input)
	if err != nil {
		handleError(w, r, "failed to append entry", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.LedgerEntryFromDomain(entry))
}

// List returns the customer's entries in the optional from/to range.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	ledger, _, ok := h.load(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerEntriesFromDomain(ledger.Entries))
}

// Statement renders the customer's entries in the optional from/to range as a PDF.
func (h *LedgerHandler) Statement(w http.ResponseWriter, r *http.Request) {
	ledger, dateRange, ok := h.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="statement-%s.pdf"`, ledger.Customer.ID))

	err := report.WriteStatement(w, ledger, report.StatementOptions{
		CurrencySymbol: h.reporting.CurrencySymbol,
		Location:       h.reporting.Location,
		Range:          dateRange,
		GeneratedAt:    h.now(),
		Compress:       true,
	})
	if err != nil {
		// Headers are already out; all that is left is to log.
		zerolog.Ctx(r.Context()).Error().Err(err).Str("customer_id", ledger.Customer.ID).Msg("failed to render statement")
	}
}

func (h *LedgerHandler) load(w http.ResponseWriter, r *http.Request) (*usecase.CustomerLedger, domain.DateRange, bool) {
	q := r.URL.Query()
	dateRange, err := domain.ParseDateRange(q.Get("from"), q.Get("to"), h.reporting.Location)
	if err != nil {
		handleError(w, r, "invalid date range", err)
		return nil, domain.DateRange{}, false
	}

	ledger, err := h.ledgerUC.ListEntries(r.Context(), ownerID(r), chi.URLParam(r, "id"), dateRange)
	if err != nil {
		handleError(w, r, "failed to list entries", err)
		return nil, domain.DateRange{}, false
	}

	return ledger, dateRange, true
}
