package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction.
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour

	// ReconciliationBatchSize is the page size used when walking every product.
	ReconciliationBatchSize = 500

	// Book names reported to the Recorder.
	BookLedger   = "ledger"
	BookCashbook = "cashbook"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns a Clock backed by time.Now in UTC.
func SystemClock() Clock { return systemClock{} }

type noopRecorder struct{}

func (noopRecorder) EntryAppended(string) {}
func (noopRecorder) StockAdjusted(string) {}
func (noopRecorder) StockRejected()       {}
