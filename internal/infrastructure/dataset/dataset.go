package dataset

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"lead_qualifier/internal/domain/entity"
	"lead_qualifier/internal/domain/service/generator"
	"lead_qualifier/pkg/contextx"
	"lead_qualifier/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Dataset: пакет лидов, который генерируется один раз на процесс и больше
// не меняется. Seed == nil означает случайный seed.
type Dataset struct {
	value       []entity.Lead
	Seed        *int64
	Count       int
	WindowStart time.Time
	init        sync.Once
	generated   atomic.Bool
}

// Leads generates the batch on the first call. The returned slice is a copy.
func (d *Dataset) Leads(ctx context.Context) []entity.Lead {
	d.init.Do(func() {
		var opts []generator.Option

		if !d.WindowStart.IsZero() {
			opts = append(opts, generator.WithWindowStart(d.WindowStart))
		}

		var g *generator.Generator

		if d.Seed != nil {
			g = generator.New(*d.Seed, opts...)
		} else {
			g = generator.NewRandom(opts...)
		}

		d.value = g.Generate(d.Count)
		d.generated.Store(true)

		logger(ctx).Info(
			"leads generated",
			slog.Int(logx.FieldLeadCount, len(d.value)),
			slog.Bool("seeded", d.Seed != nil),
		)
	})

	return slices.Clone(d.value)
}

// Generated reports whether the batch exists. Used as the readiness probe.
func (d *Dataset) Generated() bool {
	return d.generated.Load()
}
