package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Take metrics
	TakesRecorded          *prometheus.CounterVec
	LockWaitSeconds        prometheus.Histogram
	CriticalSectionSeconds prometheus.Histogram
	BalanceDiffs           prometheus.Histogram
	TakeErrors             *prometheus.CounterVec
	TakeRetries            prometheus.Counter

	// Notification metrics
	NotificationsDropped prometheus.Counter

	// Authentication metrics
	AuthFailures *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits prometheus.Counter

	// Audit metrics
	AuditDiscrepancies prometheus.Counter
}

// New creates all metrics and registers them with the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates all metrics and registers them with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Take metrics
		TakesRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "takeledger_takes_recorded_total",
				Help: "Total number of takes recorded",
			},
			[]string{"throttled"},
		),
		LockWaitSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "takeledger_lock_wait_seconds",
			Help:    "Time spent waiting for the take ledger lock",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}),
		CriticalSectionSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "takeledger_critical_section_seconds",
			Help:    "Time the take ledger lock is held per change",
			Buckets: prometheus.DefBuckets,
		}),
		BalanceDiffs: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "takeledger_balance_diffs",
			Help:    "Number of member balances adjusted per take change",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 150},
		}),
		TakeErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "takeledger_take_errors_total",
				Help: "Total number of take errors by type",
			},
			[]string{"error_type"},
		),
		TakeRetries: factory.NewCounter(prometheus.CounterOpts{
			Name: "takeledger_take_retries_total",
			Help: "Total number of take changes retried after a lock failure",
		}),

		NotificationsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "takeledger_notifications_dropped_total",
			Help: "Take change notifications dropped because the queue was full",
		}),

		AuthFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "takeledger_auth_failures_total",
				Help: "Total authentication failures",
			},
			[]string{"reason"},
		),

		RateLimitHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "takeledger_rate_limit_hits_total",
			Help: "Total rate limit hits",
		}),

		AuditDiscrepancies: factory.NewCounter(prometheus.CounterOpts{
			Name: "takeledger_audit_discrepancies_total",
			Help: "Members whose taking did not match their actual takes",
		}),
	}
}

// TakeRecorded implements usecase.TakeObserver.
func (m *Metrics) TakeRecorded(throttled bool) {
	label := "false"
	if throttled {
		label = "true"
	}
	m.TakesRecorded.WithLabelValues(label).Inc()
}

// LockWait implements usecase.TakeObserver.
func (m *Metrics) LockWait(d time.Duration) {
	m.LockWaitSeconds.Observe(d.Seconds())
}

// CriticalSection implements usecase.TakeObserver.
func (m *Metrics) CriticalSection(d time.Duration) {
	m.CriticalSectionSeconds.Observe(d.Seconds())
}

// BalanceDiffsApplied implements usecase.TakeObserver.
func (m *Metrics) BalanceDiffsApplied(n int) {
	m.BalanceDiffs.Observe(float64(n))
}

// TakeError counts a failed take change.
func (m *Metrics) TakeError(errorType string) {
	m.TakeErrors.WithLabelValues(errorType).Inc()
}

// TakeRetried counts a take change attempted again after a lock failure.
func (m *Metrics) TakeRetried() {
	m.TakeRetries.Inc()
}
