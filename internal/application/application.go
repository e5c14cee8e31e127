package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"lead_qualifier/internal/config"
	"lead_qualifier/internal/domain/service/lead"
	"lead_qualifier/internal/infrastructure/dataset"
	"lead_qualifier/internal/server"
	"lead_qualifier/pkg/application/modules"
	"lead_qualifier/pkg/contextx"
	"lead_qualifier/pkg/logx"
	"lead_qualifier/pkg/metrics"
	"lead_qualifier/pkg/middlewarex"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run serves the lead API, the probes and the metrics until ctx is done.
func Run(ctx context.Context, cfg config.Config) error {
	// 1. Dataset
	leads := &dataset.Dataset{
		Seed:        cfg.Leads.Seed.Pointer(),
		Count:       cfg.Leads.Count,
		WindowStart: cfg.Leads.WindowStart.Time,
	}

	// 2. Services
	recorder := metrics.NewLeadRecorder(prometheus.DefaultRegisterer)

	leadService := lead.NewService(leads).
		WithCacheTTL(cfg.Leads.CacheTTL).
		WithRecorder(recorder)

	srv := server.NewServer(
		server.NewLeadServer(leadService).WithExportRecorder(recorder),
	)

	// 3. Servers
	g, ctx := errgroup.WithContext(ctx)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Ready:         leads.Generated,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
	}.Run(ctx, g)

	// Warm up before the API starts.
	logger(ctx).Info("dataset ready", slog.Int(logx.FieldLeadCount, len(leads.Leads(ctx))))

	modules.HTTPServer{
		ListenAddress:     cfg.HTTP.ListenAddress,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, NewRouter(srv, cfg.HTTP))

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func NewRouter(srv server.Server, cfg config.HTTP) http.Handler {
	var masker logx.SensitiveDataMaskerInterface = logx.NewSensitiveDataMasker()
	if !cfg.MaskSensitiveData {
		masker = logx.NewNopSensitiveDataMasker()
	}

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.LogFieldMaxLen),
	)

	srv.RegisterRoutes(router)

	return router
}
