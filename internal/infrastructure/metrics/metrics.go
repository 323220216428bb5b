package metrics

import (
	"net/http"
	"time"

	"repasse_imoveis/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides business observability for the billing use cases.
type Metrics struct {
	registry *prometheus.Registry

	// Settlement computations by outcome: "success", "error"
	SettlementsComputed *prometheus.CounterVec
	SettlementLatency   prometheus.Histogram

	// Invoice lifecycle actions by action and outcome
	InvoiceActions *prometheus.CounterVec

	// Requests rejected because another writer held the resource
	ConcurrentModifications *prometheus.CounterVec
}

var _ interfaces.IMetricsRecorder = (*Metrics)(nil)

// New registers every metric on a dedicated registry along with the Go and process
// collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		SettlementsComputed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "repasse_settlements_computed_total",
			Help: "Settlement computations by outcome",
		}, []string{"outcome"}),

		SettlementLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "repasse_settlement_duration_seconds",
			Help:    "Duration of settlement computation including reads and the transactional write",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),

		InvoiceActions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "repasse_invoice_actions_total",
			Help: "Invoice lifecycle actions by action and outcome",
		}, []string{"action", "outcome"}),

		ConcurrentModifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "repasse_concurrent_modifications_total",
			Help: "Writes rejected because another request modified the resource first",
		}, []string{"resource"}),
	}
}

func (m *Metrics) SettlementComputed(outcome string, elapsed time.Duration) {
	if m != nil {
		m.SettlementsComputed.WithLabelValues(outcome).Inc()
		m.SettlementLatency.Observe(elapsed.Seconds())
	}
}

func (m *Metrics) InvoiceAction(action, outcome string) {
	if m != nil {
		m.InvoiceActions.WithLabelValues(action, outcome).Inc()
	}
}

func (m *Metrics) ConcurrentModification(resource string) {
	if m != nil {
		m.ConcurrentModifications.WithLabelValues(resource).Inc()
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
