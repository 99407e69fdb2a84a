package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hishabkitab"

// Metrics holds all Prometheus metrics and implements usecase.Recorder.
type Metrics struct {
	// Bookkeeping metrics
	Entries         *prometheus.CounterVec
	StockMovements  *prometheus.CounterVec
	StockRejections prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Idempotency metrics
	IdempotentReplays prometheus.Counter

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Entries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "entries_appended_total",
				Help:      "Total entries appended by book",
			},
			[]string{"book"},
		),
		StockMovements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stock_adjustments_total",
				Help:      "Total stock adjustments by direction",
			},
			[]string{"direction"},
		),
		StockRejections: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_adjustments_rejected_total",
			Help:      "Stock-out requests rejected for insufficient stock",
		}),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_duration_seconds",
				Help:      "HTTP request duration",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		IdempotentReplays: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "idempotent_replays_total",
			Help:      "Requests answered from a stored idempotent response",
		}),

		RateLimitHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_hits_total",
			Help:      "Total requests rejected by the rate limiter",
		}),
	}
}

// EntryAppended counts an entry appended to book ("ledger" or "cashbook").
func (m *Metrics) EntryAppended(book string) {
	m.Entries.WithLabelValues(book).Inc()
}

// StockAdjusted counts an applied stock movement.
func (m *Metrics) StockAdjusted(direction string) {
	m.StockMovements.WithLabelValues(direction).Inc()
}

// StockRejected counts a stock-out refused because it would go negative.
func (m *Metrics) StockRejected() {
	m.StockRejections.Inc()
}
