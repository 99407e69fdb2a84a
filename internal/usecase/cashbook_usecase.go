package usecase

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hishabkitab/backend/internal/domain"
)

// CashbookUseCase handles cashbook categories and entries.
type CashbookUseCase struct {
	txManager    TransactionManager
	cashbookRepo CashbookRepository
	attachments  AttachmentStore
	idGen        IDGenerator
	clock        Clock
	reporting    Reporting
	recorder     Recorder
}

// NewCashbookUseCase creates a new CashbookUseCase. attachments may be nil,
// in which case entries carrying an attachment are rejected.
func NewCashbookUseCase(
	txManager TransactionManager,
	cashbookRepo CashbookRepository,
	attachments AttachmentStore,
	idGen IDGenerator,
	clock Clock,
	reporting Reporting,
	recorder Recorder,
) *CashbookUseCase {
	if clock == nil {
		clock = SystemClock()
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &CashbookUseCase{
		txManager:    txManager,
		cashbookRepo: cashbookRepo,
		attachments:  attachments,
		idGen:        idGen,
		clock:        clock,
		reporting:    reporting,
		recorder:     recorder,
	}
}

// CreateCategoryInput represents input for creating a category.
type CreateCategoryInput struct {
	Name string
	Type string
}

// CreateCategory creates a named category. Names are unique per owner,
// compared case-insensitively.
func (uc *CashbookUseCase) CreateCategory(ctx context.Context, ownerID string, input CreateCategoryInput) (*domain.CashbookCategory, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	categoryType, err := domain.ParseCategoryType(input.Type)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	_, err = uc.cashbookRepo.GetCategoryByName(ctx, ownerID, name)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %q", domain.ErrCategoryExists, name)
	case !domain.IsNotFoundError(err):
		return nil, err
	}

	category := &domain.CashbookCategory{
		ID:        uc.idGen.Generate(),
		OwnerID:   ownerID,
		Name:      name,
		Type:      categoryType,
		CreatedAt: uc.clock.Now(),
	}

	if err := uc.cashbookRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// ListCategories lists the owner's categories ordered by name.
func (uc *CashbookUseCase) ListCategories(ctx context.Context, ownerID string) ([]*domain.CashbookCategory, error) {
	return uc.cashbookRepo.ListCategories(ctx, ownerID)
}

// AppendCashbookEntryInput represents input for posting a cashbook entry.
type AppendCashbookEntryInput struct {
	Category    string
	Direction   string
	Amount      decimal.Decimal
	PaymentMode string
	Note        string
	EntryDate   *time.Time
	Attachment  *Attachment
}

// AppendEntry posts an income or expense line. The category is resolved by
// name and created with type BOTH when the owner has none by that name.
func (uc *CashbookUseCase) AppendEntry(ctx context.Context, ownerID string, input AppendCashbookEntryInput) (*domain.CashbookEntry, error) {
	if err := domain.ValidateName(input.Category); err != nil {
		return nil, err
	}

	direction, err := domain.ParseCashDirection(input.Direction)
	if err != nil {
		return nil, err
	}

	mode, err := domain.ParsePaymentMode(input.PaymentMode)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	entryDate := now
	if input.EntryDate != nil {
		entryDate = input.EntryDate.UTC()
	}

	entry := &domain.CashbookEntry{
		ID:          uc.idGen.Generate(),
		OwnerID:     ownerID,
		Category:    strings.TrimSpace(input.Category),
		Direction:   direction,
		Amount:      input.Amount,
		PaymentMode: mode,
		Note:        input.Note,
		EntryDate:   entryDate,
		CreatedAt:   now,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	committed := false
	if input.Attachment != nil {
		key, url, err := uc.storeAttachment(ctx, ownerID, entry.ID, input.Attachment)
		if err != nil {
			return nil, err
		}
		entry.AttachmentURL = url
		defer func() {
			if !committed {
				uc.discardAttachment(ctx, key)
			}
		}()
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	category, err := uc.cashbookRepo.UpsertCategory(ctx, tx, &domain.CashbookCategory{
		ID:        uc.idGen.Generate(),
		OwnerID:   ownerID,
		Name:      entry.Category,
		Type:      domain.CategoryBoth,
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	entry.CategoryID = category.ID
	entry.Category = category.Name

	if err := uc.cashbookRepo.CreateEntry(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	committed = true

	uc.recorder.EntryAppended(BookCashbook)

	return entry, nil
}

func (uc *CashbookUseCase) storeAttachment(ctx context.Context, ownerID, entryID string, attachment *Attachment) (key, url string, err error) {
	if uc.attachments == nil {
		return "", "", fmt.Errorf("%w: attachments are not enabled", domain.ErrInvalidAttachment)
	}

	name := path.Base(strings.ReplaceAll(attachment.Filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "attachment"
	}

	key = path.Join("cashbook", ownerID, entryID, name)

	url, err = uc.attachments.Put(ctx, key, *attachment)
	if err != nil {
		return "", "", fmt.Errorf("store attachment: %w", err)
	}

	return key, url, nil
}

// discardAttachment removes an upload whose entry did not commit. A failed
// delete leaves an orphan, so its key is logged for cleanup.
func (uc *CashbookUseCase) discardAttachment(ctx context.Context, key string) {
	if err := uc.attachments.Delete(context.WithoutCancel(ctx), key); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("attachment_key", key).Msg("orphaned cashbook attachment")
	}
}

// CashbookFilter narrows the cashbook overview.
type CashbookFilter struct {
	Category  string
	DateRange domain.DateRange
}

// CategoryBalance is one category row of the overview.
type CategoryBalance struct {
	Name          string
	Type          domain.CategoryType
	Balance       decimal.Decimal
	EntriesCount  int
	LastEntryDate *time.Time
}

// CashbookSummary is the headline figures of the overview. Cash and online
// balances always add up to the total.
type CashbookSummary struct {
	TotalBalance        decimal.Decimal
	TodaysBalance       decimal.Decimal
	OnlineBalance       decimal.Decimal
	CashBalance         decimal.Decimal
	TodaysOnlineBalance decimal.Decimal
	TodaysCashBalance   decimal.Decimal
	TotalIn             decimal.Decimal
	TotalOut            decimal.Decimal
}

// CashbookOverview is the cashbook screen: category rows, summary, entries.
type CashbookOverview struct {
	Categories []CategoryBalance
	Summary    CashbookSummary
	Entries    []*domain.CashbookEntry
}

// Overview reduces the owner's cashbook. Category rows cover every category
// over the date range; the summary and entry list also honour the category
// filter.
func (uc *CashbookUseCase) Overview(ctx context.Context, ownerID string, filter CashbookFilter) (*CashbookOverview, error) {
	loc := uc.reporting.location()
	start, end := filter.DateRange.Bounds(loc)

	categoryID := ""
	if name := strings.TrimSpace(filter.Category); name != "" {
		category, err := uc.cashbookRepo.GetCategoryByName(ctx, ownerID, name)
		if err != nil {
			return nil, err
		}
		categoryID = category.ID
	}

	categories, err := uc.cashbookRepo.ListCategories(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.cashbookRepo.ListEntries(ctx, CashbookEntryQuery{
		OwnerID: ownerID,
		Start:   start,
		End:     end,
	})
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]*domain.CashbookEntry, len(categories))
	selected := make([]*domain.CashbookEntry, 0, len(entries))
	for _, e := range entries {
		byCategory[e.CategoryID] = append(byCategory[e.CategoryID], e)
		if categoryID == "" || e.CategoryID == categoryID {
			selected = append(selected, e)
		}
	}

	overview := &CashbookOverview{
		Categories: make([]CategoryBalance, 0, len(categories)),
		Summary:    summarizeCashbook(selected, uc.clock.Now(), loc),
		Entries:    selected,
	}

	for _, c := range categories {
		overview.Categories = append(overview.Categories, categoryBalance(c, byCategory[c.ID]))
	}

	sort.SliceStable(overview.Categories, func(i, j int) bool {
		return strings.ToLower(overview.Categories[i].Name) < strings.ToLower(overview.Categories[j].Name)
	})

	return overview, nil
}

func categoryBalance(category *domain.CashbookCategory, entries []*domain.CashbookEntry) CategoryBalance {
	summary := domain.Aggregate(domain.CashbookPostings(entries), domain.CashbookSigns)

	row := CategoryBalance{
		Name:         category.Name,
		Type:         category.Type,
		Balance:      summary.Net,
		EntriesCount: summary.Count,
	}

	for _, e := range entries {
		if row.LastEntryDate == nil || e.EntryDate.After(*row.LastEntryDate) {
			d := e.EntryDate
			row.LastEntryDate = &d
		}
	}

	return row
}

func summarizeCashbook(entries []*domain.CashbookEntry, now time.Time, loc *time.Location) CashbookSummary {
	todays := make([]*domain.CashbookEntry, 0)
	for _, e := range entries {
		if domain.SameDay(e.EntryDate, now, loc) {
			todays = append(todays, e)
		}
	}

	all := domain.Aggregate(domain.CashbookPostings(entries), domain.CashbookSigns)
	today := domain.Aggregate(domain.CashbookPostings(todays), domain.CashbookSigns)

	return CashbookSummary{
		TotalBalance:        all.Net,
		TodaysBalance:       today.Net,
		OnlineBalance:       all.Partition(string(domain.PaymentOnline)),
		CashBalance:         all.Partition(string(domain.PaymentCash)),
		TodaysOnlineBalance: today.Partition(string(domain.PaymentOnline)),
		TodaysCashBalance:   today.Partition(string(domain.PaymentCash)),
		TotalIn:             all.PositiveTotal,
		TotalOut:            all.NegativeTotal,
	}
}
