package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for date conversions and the dimension sync.
type Metrics struct {
	// Date operations by operation name and outcome ("ok", "invalid", "out_of_range", "error")
	Operations *prometheus.CounterVec

	// Latency of date operations by operation name
	OperationLatency *prometheus.HistogramVec

	// Number of serials in the registry backing the service
	RegistrySize prometheus.Gauge

	// Dimension sync runs by outcome
	SyncRuns *prometheus.CounterVec

	// Rows upserted into the serial_dates table
	SyncRowsWritten prometheus.Counter

	// Duration of complete sync runs
	SyncDuration prometheus.Histogram
}

// New creates the metrics and registers them with reg. A nil reg leaves
// them unregistered, which is what tests want.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "serialdate_operations_total",
			Help: "Total date operations by operation and outcome",
		}, []string{"operation", "outcome"}),

		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "serialdate_operation_duration_seconds",
			Help:    "Duration of date operations",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"operation"}),

		RegistrySize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "serialdate_registry_serials",
			Help: "Number of serial dates in the registry",
		}),

		SyncRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "serialdate_sync_runs_total",
			Help: "Total dimension table sync runs by outcome",
		}, []string{"outcome"}),

		SyncRowsWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "serialdate_sync_rows_written_total",
			Help: "Total rows upserted into the serial_dates table",
		}),

		SyncDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "serialdate_sync_duration_seconds",
			Help:    "Duration of complete dimension table sync runs",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
	}
}

// ObserveOperation records one date operation.
func (m *Metrics) ObserveOperation(operation, outcome string, d time.Duration) {
	if m != nil {
		m.Operations.WithLabelValues(operation, outcome).Inc()
		m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// SetRegistrySize records the number of serials in the registry.
func (m *Metrics) SetRegistrySize(n int) {
	if m != nil {
		m.RegistrySize.Set(float64(n))
	}
}

// ObserveSync records a finished sync run.
func (m *Metrics) ObserveSync(outcome string, rows int, d time.Duration) {
	if m != nil {
		m.SyncRuns.WithLabelValues(outcome).Inc()
		m.SyncRowsWritten.Add(float64(rows))
		m.SyncDuration.Observe(d.Seconds())
	}
}
