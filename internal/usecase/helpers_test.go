package usecase_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/hishabkitab/backend/internal/usecase"
	"github.com/hishabkitab/backend/internal/usecase/mocks"
)

const ownerID = "owner-1"

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type sequenceIDs struct {
	n atomic.Int64
}

func (g *sequenceIDs) Generate() string {
	return fmt.Sprintf("id-%03d", g.n.Add(1))
}

type directRetrier struct{}

func (directRetrier) Retry(_ context.Context, operation func() error) error {
	return operation()
}

type countingRecorder struct {
	appended map[string]int
	adjusted map[string]int
	rejected int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{appended: map[string]int{}, adjusted: map[string]int{}}
}

func (r *countingRecorder) EntryAppended(book string)      { r.appended[book]++ }
func (r *countingRecorder) StockAdjusted(direction string) { r.adjusted[direction]++ }
func (r *countingRecorder) StockRejected()                 { r.rejected++ }

// expectTx wires a transaction that may be committed and is always rolled
// back by the deferred cleanup.
func expectTx(ctrl *gomock.Controller) (*mocks.MockTransactionManager, *mocks.MockTransaction) {
	txMgr := mocks.NewMockTransactionManager(ctrl)
	tx := mocks.NewMockTransaction(ctrl)
	txMgr.EXPECT().Begin(gomock.Any()).Return(tx, nil).AnyTimes()
	tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
	return txMgr, tx
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var reporting = usecase.Reporting{Location: time.UTC, CurrencySymbol: "₹"}
