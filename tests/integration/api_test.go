package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	adaptershttp "github.com/hishabkitab/backend/internal/adapter/http"
	"github.com/hishabkitab/backend/internal/adapter/http/dto"
	"github.com/hishabkitab/backend/internal/adapter/http/handler"
	"github.com/hishabkitab/backend/internal/adapter/http/middleware"
	"github.com/hishabkitab/backend/internal/adapter/repository/postgres"
	redisrepo "github.com/hishabkitab/backend/internal/adapter/repository/redis"
	"github.com/hishabkitab/backend/internal/usecase"
	"github.com/hishabkitab/backend/tests/testutil"
)

const apiOwner = "shop-api"

func newTestRouter(t *testing.T, testDB *testutil.TestDB) http.Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	pool := testDB.Pool
	reporting := usecase.Reporting{Location: time.UTC, CurrencySymbol: "৳"}
	idGen := postgres.NewULIDGenerator()
	txManager := postgres.NewTxManager(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	entryRepo := postgres.NewLedgerEntryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	customerUC := usecase.NewCustomerUseCase(customerRepo, entryRepo, idGen, nil, reporting)
	ledgerUC := usecase.NewLedgerUseCase(customerRepo, entryRepo, idGen, nil, reporting, nil)
	cashbookUC := usecase.NewCashbookUseCase(txManager, postgres.NewCashbookRepository(pool), nil, idGen, nil, reporting, nil)
	productUC := usecase.NewProductUseCase(txManager, productRepo, postgres.NewRetrier(zerolog.Nop()), idGen, nil, nil)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		CustomerHandler:  handler.NewCustomerHandler(customerUC, ledgerUC),
		LedgerHandler:    handler.NewLedgerHandler(ledgerUC, reporting),
		CashbookHandler:  handler.NewCashbookHandler(cashbookUC, time.UTC, 0),
		ProductHandler:   handler.NewProductHandler(productUC, usecase.NewReconciliationUseCase(productRepo, nil)),
		HealthHandler:    handler.NewHealthHandler(pool, nil),
		Logger:           zerolog.Nop(),
		IdempotencyStore: redisrepo.NewIdempotencyStore(redisClient),
		Owner:            middleware.OwnerConfig{DefaultOwnerID: apiOwner},
	})
}

func do(t *testing.T, router http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCustomerLedgerFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	rec := do(t, router, http.MethodPost, "/customers", map[string]string{"name": "Rahim Store", "mobile": "01712345678"}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create customer: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var customer dto.CustomerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &customer); err != nil {
		t.Fatalf("decode customer: %v", err)
	}

	entries := []map[string]string{
		{"entry_type": "DEBIT", "amount": "500", "note": "rice"},
		{"entry_type": "CREDIT", "amount": "200", "note": "paid"},
	}
	for i, e := range entries {
		rec := do(t, router, http.MethodPost, "/customers/"+customer.ID+"/entries", e,
			map[string]string{middleware.IdempotencyKeyHeader: "entry-" + string(rune('a'+i))})
		if rec.Code != http.StatusCreated {
			t.Fatalf("append entry %d: expected 201, got %d: %s", i, rec.Code, rec.Body.String())
		}
	}

	// Retrying the first append is served from the idempotency store.
	rec = do(t, router, http.MethodPost, "/customers/"+customer.ID+"/entries", entries[0],
		map[string]string{middleware.IdempotencyKeyHeader: "entry-a"})
	if rec.Code != http.StatusCreated || rec.Header().Get("X-Idempotency-Replay") != "true" {
		t.Fatalf("expected replayed 201, got %d replay=%q", rec.Code, rec.Header().Get("X-Idempotency-Replay"))
	}

	rec = do(t, router, http.MethodGet, "/customers/"+customer.ID, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get customer: expected 200, got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &customer); err != nil {
		t.Fatalf("decode customer: %v", err)
	}
	if !customer.Balance.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected balance 300, got %s", customer.Balance)
	}
	if customer.BalanceLabel != "You will get ৳300" {
		t.Errorf("unexpected label %q", customer.BalanceLabel)
	}

	rec = do(t, router, http.MethodGet, "/customers/"+customer.ID+"/entries", nil, nil)
	var list []dto.LedgerEntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode entries: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 entries, got %d", len(list))
	}

	// Another owner cannot see the customer.
	rec = do(t, router, http.MethodGet, "/customers/"+customer.ID, nil, map[string]string{middleware.OwnerHeader: "someone-else"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for foreign owner, got %d", rec.Code)
	}
}

func TestCashbookFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	posts := []map[string]string{
		{"amount": "1500", "entry_type": "IN", "category": "Sales", "payment_mode": "ONLINE"},
		{"amount": "250.50", "entry_type": "OUT", "category": "Rent"},
		{"amount": "100", "entry_type": "IN", "category": "sales"},
	}
	for i, p := range posts {
		rec := do(t, router, http.MethodPost, "/cashbook", p, nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("append %d: expected 201, got %d: %s", i, rec.Code, rec.Body.String())
		}
	}

	rec := do(t, router, http.MethodGet, "/cashbook", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("overview: expected 200, got %d", rec.Code)
	}

	var overview dto.CashbookOverviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &overview); err != nil {
		t.Fatalf("decode overview: %v", err)
	}

	s := overview.Summary
	checks := map[string]struct{ got, want decimal.Decimal }{
		"totalIn":       {s.TotalIn, decimal.NewFromInt(1600)},
		"totalOut":      {s.TotalOut, decimal.RequireFromString("250.50")},
		"totalBalance":  {s.TotalBalance, decimal.RequireFromString("1349.50")},
		"onlineBalance": {s.OnlineBalance, decimal.NewFromInt(1500)},
		"cashBalance":   {s.CashBalance, decimal.RequireFromString("-150.50")},
	}
	for name, c := range checks {
		if !c.got.Equal(c.want) {
			t.Errorf("%s: expected %s, got %s", name, c.want, c.got)
		}
	}

	// "sales" resolves to the existing Sales category.
	if len(overview.Categories) != 2 {
		t.Errorf("expected 2 categories, got %d", len(overview.Categories))
	}
	if len(overview.Entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(overview.Entries))
	}
}
