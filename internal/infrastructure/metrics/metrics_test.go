package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hishabkitab/backend/internal/usecase"
)

var _ usecase.Recorder = (*Metrics)(nil)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.HTTPRequests.WithLabelValues("GET", "/customers", "200").Inc()
	m.EntryAppended("ledger")

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "hishabkitab_http_requests_total")
	assert.Contains(t, names, "hishabkitab_entries_appended_total")
}

func TestRecorder(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.EntryAppended("ledger")
	m.EntryAppended("ledger")
	m.EntryAppended("cashbook")
	m.StockAdjusted("OUT")
	m.StockRejected()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Entries.WithLabelValues("ledger")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Entries.WithLabelValues("cashbook")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StockMovements.WithLabelValues("OUT")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.StockMovements.WithLabelValues("IN")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StockRejections))
}

func TestNewTwiceOnSameRegistryPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	New(registry)

	assert.Panics(t, func() { New(registry) })
}
