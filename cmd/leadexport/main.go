// leadexport generates a lead batch, filters it and writes the CSV export.
//
//	go run ./cmd/leadexport -seed 42 -qualification Qualified -locations Sydney,Perth -out /tmp
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"lead_qualifier/internal/domain/service/generator"
	"lead_qualifier/internal/domain/service/lead"
	"lead_qualifier/internal/domain/value"
	"lead_qualifier/internal/infrastructure/csvexport"
	"lead_qualifier/internal/infrastructure/dataset"
	"lead_qualifier/pkg/contextx"
	"lead_qualifier/pkg/logx"
	"lead_qualifier/pkg/lox"
)

type flags struct {
	seed          int64
	count         int
	query         string
	qualification string
	locations     string
	timelines     string
	budgetLow     int
	budgetHigh    int
	sortBy        string
	order         string
	out           string
	logLevel      string
}

// unset marks budget bounds that fall back to the dataset bounds.
const unset = -1

func parseFlags(args []string) (flags, error) {
	var f flags

	fs := flag.NewFlagSet("leadexport", flag.ContinueOnError)
	fs.Int64Var(&f.seed, "seed", 0, "generator seed, 0 for a clock seed")
	fs.IntVar(&f.count, "count", generator.DefaultCount, "number of leads")
	fs.StringVar(&f.query, "q", "", "name or email substring")
	fs.StringVar(&f.qualification, "qualification", value.QualificationAll.String(), "All, Qualified or Unqualified")
	fs.StringVar(&f.locations, "locations", "", "comma separated locations, empty for all")
	fs.StringVar(&f.timelines, "timelines", "", "comma separated timelines, empty for all")
	fs.IntVar(&f.budgetLow, "budget-low", unset, "lowest budget_min")
	fs.IntVar(&f.budgetHigh, "budget-high", unset, "highest budget_min")
	fs.StringVar(&f.sortBy, "sort", value.SortByScore.String(), "Score, Budget_Min, Name or Date")
	fs.StringVar(&f.order, "order", value.SortDescending.String(), "Descending or Ascending")
	fs.StringVar(&f.out, "out", ".", "output directory")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level")

	if err := fs.Parse(args); err != nil {
		return flags{}, fmt.Errorf("fs.Parse: %w", err)
	}

	return f, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	f, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		slog.Error("parseFlags", logx.Error(err))
		os.Exit(2) //nolint:gocritic
	}

	handler, err := logx.NewHandler(os.Stderr, f.logLevel, false)
	if err != nil {
		slog.Error("logx.NewHandler", logx.Error(err))
		os.Exit(2)
	}

	log := slog.New(handler)
	ctx = contextx.WithLogger(ctx, log)

	if err = run(ctx, f, time.Now()); err != nil {
		log.Error("export failed", logx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, f flags, now time.Time) error {
	ds := &dataset.Dataset{Count: f.count}
	if f.seed != 0 {
		ds.Seed = &f.seed
	}

	service := lead.NewService(ds)

	query, err := service.ParseQuery(ctx, newQueryParams(f))
	if err != nil {
		return fmt.Errorf("service.ParseQuery: %w", err)
	}

	result, err := service.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("service.Query: %w", err)
	}

	path := filepath.Join(f.out, csvexport.FileName(now))

	if err = writeFile(path, result); err != nil {
		return fmt.Errorf("writeFile: %w", err)
	}

	summary := result.Summary

	contextx.LoggerFromContextOrDefault(ctx).Info("leads exported",
		slog.String("path", path),
		slog.Int(logx.FieldLeadMatched, summary.Total),
		slog.Int("total-delta", summary.TotalDelta),
		slog.Int("qualified", summary.Qualified),
		slog.Float64("qualification-rate", summary.QualificationRate),
		slog.Float64("mean-score", summary.MeanScore),
		slog.Float64("mean-budget-min", summary.MeanBudgetMin),
	)

	return nil
}

func writeFile(path string, result lead.Result) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("file.Close: %w", closeErr)
		}
	}()

	if err = csvexport.Write(file, result.Leads); err != nil {
		return fmt.Errorf("csvexport.Write: %w", err)
	}

	return nil
}

func newQueryParams(f flags) lead.QueryParams {
	params := lead.QueryParams{
		Query:         f.query,
		Qualification: &f.qualification,
		SortBy:        &f.sortBy,
		SortOrder:     &f.order,
	}

	if f.locations != "" {
		locations := splitList(f.locations)
		params.Locations = &locations
	}

	if f.timelines != "" {
		timelines := splitList(f.timelines)
		params.Timelines = &timelines
	}

	if f.budgetLow != unset {
		params.BudgetMinLow = &f.budgetLow
	}

	if f.budgetHigh != unset {
		params.BudgetMinHigh = &f.budgetHigh
	}

	return params
}

func splitList(s string) []string {
	return lox.Map(strings.Split(s, ","), strings.TrimSpace)
}
