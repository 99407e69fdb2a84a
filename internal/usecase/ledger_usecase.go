package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hishabkitab/backend/internal/domain"
)

// LedgerUseCase handles the customer ledger.
type LedgerUseCase struct {
	customerRepo CustomerRepository
	entryRepo    LedgerEntryRepository
	idGen        IDGenerator
	clock        Clock
	reporting    Reporting
	recorder     Recorder
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	customerRepo CustomerRepository,
	entryRepo LedgerEntryRepository,
	idGen IDGenerator,
	clock Clock,
	reporting Reporting,
	recorder Recorder,
) *LedgerUseCase {
	if clock == nil {
		clock = SystemClock()
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &LedgerUseCase{
		customerRepo: customerRepo,
		entryRepo:    entryRepo,
		idGen:        idGen,
		clock:        clock,
		reporting:    reporting,
		recorder:     recorder,
	}
}

// AppendLedgerEntryInput represents input for posting a ledger entry.
type AppendLedgerEntryInput struct {
	Direction string
	Amount    decimal.Decimal
	Note      string
	EntryDate *time.Time
}

// AppendEntry posts a new entry on the customer's ledger. No stored balance
// is touched; balances are always derived on read.
func (uc *LedgerUseCase) AppendEntry(ctx context.Context, ownerID, customerID string, input AppendLedgerEntryInput) (*domain.LedgerEntry, error) {
	direction, err := domain.ParseLedgerDirection(input.Direction)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	entryDate := now
	if input.EntryDate != nil {
		entryDate = input.EntryDate.UTC()
	}

	entry := &domain.LedgerEntry{
		ID:         uc.idGen.Generate(),
		CustomerID: customerID,
		Direction:  direction,
		Amount:     input.Amount,
		Note:       input.Note,
		EntryDate:  entryDate,
		CreatedAt:  now,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.customerRepo.GetByID(ctx, ownerID, customerID); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	uc.recorder.EntryAppended(BookLedger)

	return entry, nil
}

// CustomerLedger is a customer's entries with their reduction. Summary and
// Label cover Entries only; BroughtForward is the net of everything before
// the range.
type CustomerLedger struct {
	Customer       *domain.Customer
	Entries        []*domain.LedgerEntry
	Summary        domain.Summary
	Label          string
	BroughtForward decimal.Decimal
}

// Closing is what the customer owes at the end of the range.
func (l *CustomerLedger) Closing() decimal.Decimal {
	return l.BroughtForward.Add(l.Summary.Net)
}

// ListEntries returns the customer's entries inside the date range, oldest
// first, with the balance over the same slice. When the range has a start,
// the entries before it are folded into BroughtForward.
func (uc *LedgerUseCase) ListEntries(ctx context.Context, ownerID, customerID string, dateRange domain.DateRange) (*CustomerLedger, error) {
	customer, err := uc.customerRepo.GetByID(ctx, ownerID, customerID)
	if err != nil {
		return nil, err
	}

	start, end := dateRange.Bounds(uc.reporting.location())

	entries, err := uc.entryRepo.ListByCustomer(ctx, customerID, start, end)
	if err != nil {
		return nil, err
	}

	summary := domain.Aggregate(domain.LedgerPostings(entries), domain.CustomerLedgerSigns)

	broughtForward := decimal.Zero
	if start != nil {
		earlier, err := uc.entryRepo.ListByCustomer(ctx, customerID, nil, start)
		if err != nil {
			return nil, err
		}
		broughtForward = domain.Aggregate(domain.LedgerPostings(earlier), domain.CustomerLedgerSigns).Net
	}

	return &CustomerLedger{
		Customer:       customer,
		Entries:        entries,
		Summary:        summary,
		Label:          domain.BalanceLabel(summary.Net, uc.reporting.CurrencySymbol),
		BroughtForward: broughtForward,
	}, nil
}

// Balance returns the customer's all-time receivable.
func (uc *LedgerUseCase) Balance(ctx context.Context, ownerID, customerID string) (*CustomerLedger, error) {
	return uc.ListEntries(ctx, ownerID, customerID, domain.DateRange{})
}
