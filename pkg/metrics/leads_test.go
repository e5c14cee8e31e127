package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"lead_qualifier/pkg/metrics"
)

func TestLeadRecorder(t *testing.T) {
	rq := require.New(t)

	registry := prometheus.NewRegistry()
	recorder := metrics.NewLeadRecorder(registry)

	recorder.ObserveQuery(10, false)
	recorder.ObserveQuery(10, true)
	recorder.ObserveQuery(3, true)
	recorder.ObserveInvalidQuery()
	recorder.ObserveExport(25)

	families, err := registry.Gather()
	rq.NoError(err)

	values := map[string]float64{}

	for _, family := range families {
		for _, m := range family.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				key := family.GetName()
				for _, label := range m.GetLabel() {
					key += "{" + label.GetValue() + "}"
				}

				values[key] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				values[family.GetName()] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}

	rq.InDelta(1.0, values["lead_qualifier_queries_total{false}"], 1e-9)
	rq.InDelta(2.0, values["lead_qualifier_queries_total{true}"], 1e-9)
	rq.InDelta(3.0, values["lead_qualifier_query_matched_leads"], 1e-9)
	rq.InDelta(1.0, values["lead_qualifier_invalid_queries_total"], 1e-9)
	rq.InDelta(25.0, values["lead_qualifier_exported_leads_total"], 1e-9)
}
