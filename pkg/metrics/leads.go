package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LeadRecorder exports lead query statistics.
type LeadRecorder struct {
	queries  *prometheus.CounterVec
	matched  prometheus.Histogram
	invalid  prometheus.Counter
	exported prometheus.Counter
}

// NewLeadRecorder registers the collectors in registerer. Pass
// prometheus.DefaultRegisterer to serve them from the metrics server.
func NewLeadRecorder(registerer prometheus.Registerer) LeadRecorder {
	factory := promauto.With(registerer)

	return LeadRecorder{
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lead_qualifier_queries_total",
			Help: "Total number of lead filter queries by cache outcome.",
		}, []string{"cached"}),
		matched: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lead_qualifier_query_matched_leads",
			Help:    "Number of leads matched by a filter query.",
			Buckets: prometheus.LinearBuckets(0, 10, 11), //nolint:mnd
		}),
		invalid: factory.NewCounter(prometheus.CounterOpts{
			Name: "lead_qualifier_invalid_queries_total",
			Help: "Total number of rejected lead filter queries.",
		}),
		exported: factory.NewCounter(prometheus.CounterOpts{
			Name: "lead_qualifier_exported_leads_total",
			Help: "Total number of leads written to CSV exports.",
		}),
	}
}

func (r LeadRecorder) ObserveQuery(matched int, cached bool) {
	r.queries.WithLabelValues(strconv.FormatBool(cached)).Inc()
	r.matched.Observe(float64(matched))
}

func (r LeadRecorder) ObserveInvalidQuery() {
	r.invalid.Inc()
}

func (r LeadRecorder) ObserveExport(rows int) {
	r.exported.Add(float64(rows))
}
