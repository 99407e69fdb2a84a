package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// CustomerResponse represents a customer with their current balance.
type CustomerResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Mobile       string          `json:"mobile"`
	Note         string          `json:"note"`
	Balance      decimal.Decimal `json:"balance"`
	BalanceLabel string          `json:"balance_label"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CustomerFromDomain converts a customer without balance information.
func CustomerFromDomain(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Mobile:       c.Mobile,
		Note:         c.Note,
		Balance:      decimal.Zero,
		BalanceLabel: domain.BalanceLabel(decimal.Zero, ""),
		CreatedAt:    c.CreatedAt,
	}
}

// CustomerFromLedger converts a customer together with its all-time balance.
func CustomerFromLedger(l *usecase.CustomerLedger) *CustomerResponse {
	resp := CustomerFromDomain(l.Customer)
	resp.Balance = l.Summary.Net
	resp.BalanceLabel = l.Label
	return resp
}

// ListCustomersResponse is the customer list with the owner-wide totals.
type ListCustomersResponse struct {
	Customers   []*CustomerResponse `json:"customers"`
	YouWillGet  decimal.Decimal     `json:"you_will_get"`
	YouWillGive decimal.Decimal     `json:"you_will_give"`
}

// CustomerListFromUseCase converts a customer list.
func CustomerListFromUseCase(list *usecase.CustomerList) *ListCustomersResponse {
	customers := make([]*CustomerResponse, len(list.Customers))
	for i, cb := range list.Customers {
		resp := CustomerFromDomain(cb.Customer)
		resp.Balance = cb.Balance
		resp.BalanceLabel = cb.Label
		customers[i] = resp
	}

	return &ListCustomersResponse{
		Customers:   customers,
		YouWillGet:  list.YouWillGet,
		YouWillGive: list.YouWillGive,
	}
}

// LedgerEntryResponse represents a customer ledger entry.
type LedgerEntryResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	EntryType  string          `json:"entry_type"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note"`
	EntryDate  time.Time       `json:"entry_date"`
	CreatedAt  time.Time       `json:"created_at"`
}

// LedgerEntryFromDomain converts a ledger entry.
func LedgerEntryFromDomain(e *domain.LedgerEntry) *LedgerEntryResponse {
	return &LedgerEntryResponse{
		ID:         e.ID,
		CustomerID: e.CustomerID,
		EntryType:  string(e.Direction),
		Amount:     e.Amount,
		Note:       e.Note,
		EntryDate:  e.EntryDate,
		CreatedAt:  e.CreatedAt,
	}
}

// LedgerEntriesFromDomain converts ledger entries, preserving order.
func LedgerEntriesFromDomain(entries []*domain.LedgerEntry) []*LedgerEntryResponse {
	result := make([]*LedgerEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = LedgerEntryFromDomain(e)
	}
	return result
}

// CategoryResponse represents a cashbook category.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryFromDomain converts a category.
func CategoryFromDomain(c *domain.CashbookCategory) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      string(c.Type),
		CreatedAt: c.CreatedAt,
	}
}

// CategoriesFromDomain converts categories.
func CategoriesFromDomain(categories []*domain.CashbookCategory) []*CategoryResponse {
	result := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = CategoryFromDomain(c)
	}
	return result
}

// CashbookEntryResponse represents a cashbook entry.
type CashbookEntryResponse struct {
	ID            string          `json:"id"`
	Category      string          `json:"category"`
	EntryType     string          `json:"entry_type"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMode   string          `json:"payment_mode"`
	Note          string          `json:"note"`
	EntryDate     time.Time       `json:"entry_date"`
	AttachmentURL string          `json:"attachment_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CashbookEntryFromDomain converts a cashbook entry.
func CashbookEntryFromDomain(e *domain.CashbookEntry) *CashbookEntryResponse {
	return &CashbookEntryResponse{
		ID:            e.ID,
		Category:      e.Category,
		EntryType:     string(e.Direction),
		Amount:        e.Amount,
		PaymentMode:   string(e.PaymentMode),
		Note:          e.Note,
		EntryDate:     e.EntryDate,
		AttachmentURL: e.AttachmentURL,
		CreatedAt:     e.CreatedAt,
	}
}

// CategoryBalanceResponse is one row of the cashbook category list.
type CategoryBalanceResponse struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Balance       decimal.Decimal `json:"balance"`
	EntriesCount  int             `json:"entries_count"`
	LastEntryDate *time.Time      `json:"last_entry_date"`
}

// CashbookSummaryResponse uses the camelCase keys the cashbook screen reads.
type CashbookSummaryResponse struct {
	TotalBalance        decimal.Decimal `json:"totalBalance"`
	TodaysBalance       decimal.Decimal `json:"todaysBalance"`
	OnlineBalance       decimal.Decimal `json:"onlineBalance"`
	CashBalance         decimal.Decimal `json:"cashBalance"`
	TodaysOnlineBalance decimal.Decimal `json:"todaysOnlineBalance"`
	TodaysCashBalance   decimal.Decimal `json:"todaysCashBalance"`
	TotalIn             decimal.Decimal `json:"totalIn"`
	TotalOut            decimal.Decimal `json:"totalOut"`
}

// CashbookOverviewResponse is the GET /cashbook payload.
type CashbookOverviewResponse struct {
	Categories []*CategoryBalanceResponse `json:"categories"`
	Summary    CashbookSummaryResponse    `json:"summary"`
	Entries    []*CashbookEntryResponse   `json:"entries"`
}

// CashbookOverviewFromUseCase converts the overview.
func CashbookOverviewFromUseCase(o *usecase.CashbookOverview) *CashbookOverviewResponse {
	categories := make([]*CategoryBalanceResponse, len(o.Categories))
	for i, c := range o.Categories {
		categories[i] = &CategoryBalanceResponse{
			Name:          c.Name,
			Type:          string(c.Type),
			Balance:       c.Balance,
			EntriesCount:  c.EntriesCount,
			LastEntryDate: c.LastEntryDate,
		}
	}

	entries := make([]*CashbookEntryResponse, len(o.Entries))
	for i, e := range o.Entries {
		entries[i] = CashbookEntryFromDomain(e)
	}

	s := o.Summary
	return &CashbookOverviewResponse{
		Categories: categories,
		Summary: CashbookSummaryResponse{
			TotalBalance:        s.TotalBalance,
			TodaysBalance:       s.TodaysBalance,
			OnlineBalance:       s.OnlineBalance,
			CashBalance:         s.CashBalance,
			TodaysOnlineBalance: s.TodaysOnlineBalance,
			TodaysCashBalance:   s.TodaysCashBalance,
			TotalIn:             s.TotalIn,
			TotalOut:            s.TotalOut,
		},
		Entries: entries,
	}
}

// ProductResponse represents a product.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Unit              string          `json:"unit"`
	Price             decimal.Decimal `json:"price"`
	Stock             decimal.Decimal `json:"stock"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	LowStock          bool            `json:"low_stock"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductFromDomain converts a product.
func ProductFromDomain(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		SKU:               p.SKU,
		Unit:              p.Unit,
		Price:             p.Price,
		Stock:             p.Stock,
		LowStockThreshold: p.LowStockThreshold,
		LowStock:          p.IsLowStock(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ProductsFromDomain converts products.
func ProductsFromDomain(products []*domain.Product) []*ProductResponse {
	result := make([]*ProductResponse, len(products))
	for i, p := range products {
		result[i] = ProductFromDomain(p)
	}
	return result
}

// MovementResponse represents one stock movement.
type MovementResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Direction  string          `json:"direction"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reason     string          `json:"reason"`
	Note       string          `json:"note"`
	StockAfter decimal.Decimal `json:"stock_after"`
	CreatedAt  time.Time       `json:"created_at"`
}

// MovementFromDomain converts a stock movement.
func MovementFromDomain(m *domain.StockMovement) *MovementResponse {
	return &MovementResponse{
		ID:         m.ID,
		ProductID:  m.ProductID,
		Direction:  string(m.Direction),
		Quantity:   m.Quantity,
		Reason:     string(m.Reason),
		Note:       m.Note,
		StockAfter: m.StockAfter,
		CreatedAt:  m.CreatedAt,
	}
}

// MovementsFromDomain converts stock movements.
func MovementsFromDomain(movements []*domain.StockMovement) []*MovementResponse {
	result := make([]*MovementResponse, len(movements))
	for i, m := range movements {
		result[i] = MovementFromDomain(m)
	}
	return result
}

// StockAdjustmentResponse is the result of a stock in / stock out.
type StockAdjustmentResponse struct {
	Product  *ProductResponse  `json:"product"`
	Movement *MovementResponse `json:"movement"`
}

// StockAdjustmentFromUseCase converts a stock adjustment.
func StockAdjustmentFromUseCase(a *usecase.StockAdjustment) *StockAdjustmentResponse {
	return &StockAdjustmentResponse{
		Product:  ProductFromDomain(a.Product),
		Movement: MovementFromDomain(a.Movement),
	}
}

// DiscrepancyResponse is a product whose stored stock disagrees with its movements.
type DiscrepancyResponse struct {
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	RecordedStock   decimal.Decimal `json:"recorded_stock"`
	CalculatedStock decimal.Decimal `json:"calculated_stock"`
	Difference      decimal.Decimal `json:"difference"`
	MovementCount   int             `json:"movement_count"`
}

// ReconciliationReportResponse represents a stock reconciliation run.
type ReconciliationReportResponse struct {
	TotalProducts      int                    `json:"total_products"`
	ReconciledProducts int                    `json:"reconciled_products"`
	Discrepancies      []*DiscrepancyResponse `json:"discrepancies"`
	CheckedAt          time.Time              `json:"checked_at"`
}

// ReconciliationReportFromUseCase converts a reconciliation report.
func ReconciliationReportFromUseCase(r *usecase.ReconciliationReport) *ReconciliationReportResponse {
	discrepancies := make([]*DiscrepancyResponse, len(r.Discrepancies))
	for i, d := range r.Discrepancies {
		discrepancies[i] = &DiscrepancyResponse{
			ProductID:       d.ProductID,
			Name:            d.Name,
			RecordedStock:   d.RecordedStock,
			CalculatedStock: d.CalculatedStock,
			Difference:      d.Difference,
			MovementCount:   d.MovementCount,
		}
	}

	return &ReconciliationReportResponse{
		TotalProducts:      r.TotalProducts,
		ReconciledProducts: r.ReconciledProducts,
		Discrepancies:      discrepancies,
		CheckedAt:          r.CheckedAt,
	}
}
