package handler

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/hishabkitab/backend/internal/adapter/http/dto"
	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/usecase"
)

// DefaultMaxUploadBytes bounds a multipart cashbook request.
const DefaultMaxUploadBytes int64 = 5 << 20

// CashbookService defines the behavior needed by CashbookHandler.
type CashbookService interface {
	CreateCategory(ctx context.Context, ownerID string, input usecase.CreateCategoryInput) (*domain.CashbookCategory, error)
	ListCategories(ctx context.Context, ownerID string) ([]*domain.CashbookCategory, error)
	AppendEntry(ctx context.Context, ownerID string, input usecase.AppendCashbookEntryInput) (*domain.CashbookEntry, error)
	Overview(ctx context.Context, ownerID string, filter usecase.CashbookFilter) (*usecase.CashbookOverview, error)
}

// CashbookHandler handles cashbook requests.
type CashbookHandler struct {
	cashbookUC     CashbookService
	location       *time.Location
	maxUploadBytes int64
}

// NewCashbookHandler creates a new CashbookHandler.
func NewCashbookHandler(cashbookUC CashbookService, location *time.Location, maxUploadBytes int64) *CashbookHandler {
	if location == nil {
		location = time.UTC
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &CashbookHandler{cashbookUC: cashbookUC, location: location, maxUploadBytes: maxUploadBytes}
}

// Overview returns category balances, the summary and the filtered entries.
func (h *CashbookHandler) Overview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	dateRange, err := domain.ParseDateRange(q.Get("from"), q.Get("to"), h.location)
	if err != nil {
		handleError(w, r, "invalid date range", err)
		return
	}

	overview, err := h.cashbookUC.Overview(r.Context(), ownerID(r), usecase.CashbookFilter{
		Category:  q.Get("category"),
		DateRange: dateRange,
	})
	if err != nil {
		handleError(w, r, "failed to load cashbook", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CashbookOverviewFromUseCase(overview))
}

// Append records a cashbook entry from a JSON body or a multipart form with
// an optional "attachment" file.
func (h *CashbookHandler) Append(w http.ResponseWriter, r *http.Request) {
	var (
		req        dto.AppendCashbookEntryRequest
		attachment *usecase.Attachment
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		var ok bool
		if attachment, ok = h.parseForm(w, r, &req); !ok {
			return
		}
		if attachment != nil {
			if closer, isCloser := attachment.Body.(io.Closer); isCloser {
				defer closer.Close()
			}
		}
		if err := dto.Validate(&req); err != nil {
			writeError(w, http.StatusBadRequest, "validation failed", dto.ValidationMessage(err))
			return
		}
	} else if !decodeJSON(w, r, &req) {
		return
	}

	input, err := req.ToUseCaseInput(h.location)
	if err != nil {
		handleError(w, r, "invalid entry", err)
		return
	}
	input.Attachment = attachment

	entry, err := h.cashbookUC.AppendEntry(r.Context(), ownerID(r), input)
	if err != nil {
		handleError(w, r, "failed to append entry", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.CashbookEntryFromDomain(entry))
}

func (h *CashbookHandler) parseForm(w http.ResponseWriter, r *http.Request, req *dto.AppendCashbookEntryRequest) (*usecase.Attachment, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large", err.Error())
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "invalid form", err.Error())
		return nil, false
	}

	req.Amount = r.FormValue("amount")
	req.EntryType = r.FormValue("entry_type")
	req.Category = r.FormValue("category")
	req.EntryDate = r.FormValue("entry_date")
	req.PaymentMode = r.FormValue("payment_mode")
	req.Note = r.FormValue("note")

	file, header, err := r.FormFile("attachment")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, true
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid attachment", err.Error())
		return nil, false
	}
	return &usecase.Attachment{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, true
}

// CreateCategory adds a cashbook category.
func (h *CashbookHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	category, err := h.cashbookUC.CreateCategory(r.Context(), ownerID(r), req.ToUseCaseInput())
	if err != nil {
		handleError(w, r, "failed to create category", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.CategoryFromDomain(category))
}

// ListCategories lists the owner's categories.
func (h *CashbookHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.cashbookUC.ListCategories(r.Context(), ownerID(r))
	if err != nil {
		handleError(w, r, "failed to list categories", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoriesFromDomain(categories))
}
