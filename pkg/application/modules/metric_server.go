package modules

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"lead_qualifier/pkg/metrics"
)

// MetricServer serves Gatherer, prometheus.DefaultGatherer when nil.
type MetricServer struct {
	ListenAddress string
	Gatherer      prometheus.Gatherer
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	var gatherers []prometheus.Gatherer
	if m.Gatherer != nil {
		gatherers = append(gatherers, m.Gatherer)
	}

	prometheusServer := metrics.NewPrometheusServer(
		m.ListenAddress,
		gatherers...,
	)

	g.Go(func() error {
		if err := prometheusServer.Run(ctx); err != nil {
			return fmt.Errorf("prometheusServer.Run: %w", err)
		}

		return nil
	})
}
