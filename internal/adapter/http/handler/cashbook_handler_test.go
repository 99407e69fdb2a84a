package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hishabkitab/backend/internal/adapter/http/dto"
	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/usecase"
)

type cashbookServiceStub struct {
	createCategoryFn func(ctx context.Context, ownerID string, input usecase.CreateCategoryInput) (*domain.CashbookCategory, error)
	listCategoriesFn func(ctx context.Context, ownerID string) ([]*domain.CashbookCategory, error)
	appendFn         func(ctx context.Context, ownerID string, input usecase.AppendCashbookEntryInput) (*domain.CashbookEntry, error)
	overviewFn       func(ctx context.Context, ownerID string, filter usecase.CashbookFilter) (*usecase.CashbookOverview, error)
}

func (s *cashbookServiceStub) CreateCategory(ctx context.Context, ownerID string, input usecase.CreateCategoryInput) (*domain.CashbookCategory, error) {
	return s.createCategoryFn(ctx, ownerID, input)
}

func (s *cashbookServiceStub) ListCategories(ctx context.Context, ownerID string) ([]*domain.CashbookCategory, error) {
	return s.listCategoriesFn(ctx, ownerID)
}

func (s *cashbookServiceStub) AppendEntry(ctx context.Context, ownerID string, input usecase.AppendCashbookEntryInput) (*domain.CashbookEntry, error) {
	return s.appendFn(ctx, ownerID, input)
}

func (s *cashbookServiceStub) Overview(ctx context.Context, ownerID string, filter usecase.CashbookFilter) (*usecase.CashbookOverview, error) {
	return s.overviewFn(ctx, ownerID, filter)
}

func echoEntry(input usecase.AppendCashbookEntryInput) *domain.CashbookEntry {
	return &domain.CashbookEntry{
		ID:          "cb1",
		Category:    input.Category,
		Direction:   domain.CashDirection(input.Direction),
		Amount:      input.Amount,
		PaymentMode: domain.PaymentMode(input.PaymentMode),
	}
}

func TestCashbookHandler_Append_JSON(t *testing.T) {
	var captured usecase.AppendCashbookEntryInput
	h := NewCashbookHandler(&cashbookServiceStub{
		appendFn: func(ctx context.Context, ownerID string, input usecase.AppendCashbookEntryInput) (*domain.CashbookEntry, error) {
			captured = input
			return echoEntry(input), nil
		},
	}, testReporting.Location, 0)

	body := `{"amount":"800","entry_type":"OUT","category":"Rent","payment_mode":"ONLINE"}`
	rec := httptest.NewRecorder()
	h.Append(rec, withOwner(httptest.NewRequest(http.MethodPost, "/cashbook", bytes.NewBufferString(body))))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !captured.Amount.Equal(decimal.NewFromInt(800)) || captured.Category != "Rent" || captured.Attachment != nil {
		t.Fatalf("unexpected input %+v", captured)
	}
}

func TestCashbookHandler_Append_MultipartWithAttachment(t *testing.T) {
	var (
		captured usecase.AppendCashbookEntryInput
		content  []byte
	)
	h := NewCashbookHandler(&cashbookServiceStub{
		appendFn: func(ctx context.Context, ownerID string, input usecase.AppendCashbookEntryInput) (*domain.CashbookEntry, error) {
			captured = input
			var err error
			content, err = io.ReadAll(input.Attachment.Body)
			if err != nil {
				t.Fatalf("failed to read attachment: %v", err)
			}
			return echoEntry(input), nil
		},
	}, testReporting.Location, 1<<20)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("amount", "250.50")
	_ = mw.WriteField("entry_type", "IN")
	_ = mw.WriteField("category", "Sales")
	_ = mw.WriteField("entry_date", "2024-03-05")
	part, err := mw.CreateFormFile("attachment", "bill.jpg")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	_, _ = part.Write([]byte("jpeg-bytes"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/cashbook", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h.Append(rec, withOwner(req))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Attachment == nil || captured.Attachment.Filename != "bill.jpg" {
		t.Fatalf("expected attachment to be passed through, got %+v", captured.Attachment)
	}
	if string(content) != "jpeg-bytes" {
		t.Fatalf("unexpected attachment content %q", content)
	}
	if captured.EntryDate == nil {
		t.Fatal("expected entry date to be parsed")
	}
}

func TestCashbookHandler_Append_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"missing category", `{"amount":"10","entry_type":"IN"}`, http.StatusBadRequest},
		{"amount not a number", `{"amount":"ten","entry_type":"IN","category":"Sales"}`, http.StatusBadRequest},
		{"negative amount", `{"amount":"-10","entry_type":"IN","category":"Sales"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCashbookHandler(&cashbookServiceStub{
				appendFn: func(ctx context.Context, ownerID string, input usecase.AppendCashbookEntryInput) (*domain.CashbookEntry, error) {
					t.Fatal("AppendEntry should not be called")
					return nil, nil
				},
			}, nil, 0)

			rec := httptest.NewRecorder()
			h.Append(rec, withOwner(httptest.NewRequest(http.MethodPost, "/cashbook", bytes.NewBufferString(tt.body))))

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestCashbookHandler_Append_UnknownCategory(t *testing.T) {
	h := NewCashbookHandler(&cashbookServiceStub{
		appendFn: func(ctx context.Context, ownerID string, input usecase.AppendCashbookEntryInput) (*domain.CashbookEntry, error) {
			return nil, domain.ErrCategoryNotFound
		},
	}, nil, 0)

	rec := httptest.NewRecorder()
	h.Append(rec, withOwner(httptest.NewRequest(http.MethodPost, "/cashbook",
		bytes.NewBufferString(`{"amount":"10","entry_type":"IN","category":"Nope"}`))))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCashbookHandler_Overview(t *testing.T) {
	var captured usecase.CashbookFilter
	h := NewCashbookHandler(&cashbookServiceStub{
		overviewFn: func(ctx context.Context, ownerID string, filter usecase.CashbookFilter) (*usecase.CashbookOverview, error) {
			captured = filter
			return &usecase.CashbookOverview{
				Summary: usecase.CashbookSummary{TotalBalance: decimal.NewFromInt(1200)},
			}, nil
		},
	}, testReporting.Location, 0)

	rec := httptest.NewRecorder()
	h.Overview(rec, withOwner(httptest.NewRequest(http.MethodGet, "/cashbook?category=Sales&from=2024-03-01", nil)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Category != "Sales" || captured.DateRange.From == nil || captured.DateRange.To != nil {
		t.Fatalf("unexpected filter %+v", captured)
	}

	var overview struct {
		Summary dto.CashbookSummaryResponse `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &overview); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !overview.Summary.TotalBalance.Equal(decimal.NewFromInt(1200)) {
		t.Fatalf("unexpected total balance %s", overview.Summary.TotalBalance)
	}
}

func TestCashbookHandler_Categories(t *testing.T) {
	h := NewCashbookHandler(&cashbookServiceStub{
		createCategoryFn: func(ctx context.Context, ownerID string, input usecase.CreateCategoryInput) (*domain.CashbookCategory, error) {
			if input.Name == "Rent" {
				return nil, domain.ErrCategoryExists
			}
			return &domain.CashbookCategory{ID: "cat1", Name: input.Name, Type: domain.CategoryIn}, nil
		},
		listCategoriesFn: func(ctx context.Context, ownerID string) ([]*domain.CashbookCategory, error) {
			return []*domain.CashbookCategory{{ID: "cat1", Name: "Sales"}}, nil
		},
	}, nil, 0)

	rec := httptest.NewRecorder()
	h.CreateCategory(rec, withOwner(httptest.NewRequest(http.MethodPost, "/cashbook/categories", bytes.NewBufferString(`{"name":"Sales","type":"IN"}`))))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.CreateCategory(rec, withOwner(httptest.NewRequest(http.MethodPost, "/cashbook/categories", bytes.NewBufferString(`{"name":"Rent"}`))))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ListCategories(rec, withOwner(httptest.NewRequest(http.MethodGet, "/cashbook/categories", nil)))
	var categories []dto.CategoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &categories); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Sales" {
		t.Fatalf("unexpected categories %+v", categories)
	}
}
