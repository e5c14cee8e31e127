package lead

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"lead_qualifier/internal/domain/entity"
	"lead_qualifier/internal/domain/value"
	"lead_qualifier/pkg/contextx"
	"lead_qualifier/pkg/logx"
)

const (
	DefaultCacheTTL      = 5 * time.Minute
	cacheCleanupInterval = 10 * time.Minute
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Dataset interface {
	Leads(ctx context.Context) []entity.Lead
}

type Recorder interface {
	ObserveQuery(matched int, cached bool)
	ObserveInvalidQuery()
}

type nopRecorder struct{}

func (nopRecorder) ObserveQuery(int, bool) {}

func (nopRecorder) ObserveInvalidQuery() {}

// Query is a filter plus the table ordering of its result.
type Query struct {
	Filter    Filter
	SortField value.SortField
	SortOrder value.SortOrder
}

// Result is shared between callers through the cache and must not be modified.
type Result struct {
	Leads   []entity.Lead
	Summary Summary
}

type Service struct {
	dataset  Dataset
	results  *cache.Cache
	recorder Recorder
}

func NewService(dataset Dataset) *Service {
	return &Service{
		dataset:  dataset,
		results:  cache.New(DefaultCacheTTL, cacheCleanupInterval),
		recorder: nopRecorder{},
	}
}

func (s *Service) WithCacheTTL(ttl time.Duration) *Service {
	s.results = cache.New(ttl, cacheCleanupInterval)
	return s
}

func (s *Service) WithRecorder(recorder Recorder) *Service {
	s.recorder = recorder
	return s
}

// All returns the full dataset in generation order.
func (s *Service) All(ctx context.Context) []entity.Lead {
	return s.dataset.Leads(ctx)
}

func (s *Service) Options(ctx context.Context) entity.Options {
	return NewOptions(s.dataset.Leads(ctx))
}

// DefaultQuery selects the whole dataset ordered by score, highest first.
func (s *Service) DefaultQuery(ctx context.Context) Query {
	return Query{
		Filter:    NewFilter(s.dataset.Leads(ctx)),
		SortField: value.SortByScore,
		SortOrder: value.SortDescending,
	}
}

// ParseQuery overrides DefaultQuery with params. Rejected params count as
// invalid queries.
func (s *Service) ParseQuery(ctx context.Context, params QueryParams) (Query, error) {
	q, err := params.apply(s.DefaultQuery(ctx))
	if err != nil {
		s.recorder.ObserveInvalidQuery()
		return Query{}, fmt.Errorf("params.apply: %w", err)
	}

	return q, nil
}

// Query filters, sorts and summarizes the dataset. Search text makes the
// key space unbounded, such queries bypass the cache.
func (s *Service) Query(ctx context.Context, q Query) (Result, error) {
	if err := q.Validate(); err != nil {
		s.recorder.ObserveInvalidQuery()
		return Result{}, fmt.Errorf("query.Validate: %w", err)
	}

	key := q.key()
	cacheable := q.Filter.Query == ""

	if cacheable {
		if cached, ok := s.results.Get(key); ok {
			result := cached.(Result) //nolint:forcetypeassert

			s.recorder.ObserveQuery(result.Summary.Total, true)

			return result, nil
		}
	}

	full := s.dataset.Leads(ctx)
	filtered := Apply(full, q.Filter)

	result := Result{
		Leads:   Sort(filtered, q.SortField, q.SortOrder),
		Summary: Summarize(full, filtered),
	}

	if cacheable {
		s.results.SetDefault(key, result)
	}

	s.recorder.ObserveQuery(result.Summary.Total, false)

	logger(ctx).Debug("leads filtered",
		slog.Int(logx.FieldLeadMatched, result.Summary.Total),
		slog.Int(logx.FieldLeadCount, len(full)),
		slog.String("filter", q.Filter.Key()),
	)

	return result, nil
}

func (q Query) Validate() error {
	if err := q.Filter.Validate(); err != nil {
		return fmt.Errorf("filter.Validate: %w", err)
	}

	if _, err := value.ParseSortField(q.SortField.String()); err != nil {
		return fmt.Errorf("value.ParseSortField: %w", err)
	}

	if _, err := value.ParseSortOrder(q.SortOrder.String()); err != nil {
		return fmt.Errorf("value.ParseSortOrder: %w", err)
	}

	return nil
}

func (q Query) key() string {
	return q.Filter.Key() + "|sort=" + q.SortField.String() + "-" + q.SortOrder.String()
}
