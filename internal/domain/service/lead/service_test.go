package lead_test

import (
	"context"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"lead_qualifier/internal/domain/entity"
	"lead_qualifier/internal/domain/service/lead"
	"lead_qualifier/internal/domain/value"
)

type staticDataset struct {
	leads []entity.Lead
	calls int
}

func (d *staticDataset) Leads(context.Context) []entity.Lead {
	d.calls++
	return d.leads
}

type recorderSpy struct {
	queries []bool
	invalid int
}

func (r *recorderSpy) ObserveQuery(_ int, cached bool) {
	r.queries = append(r.queries, cached)
}

func (r *recorderSpy) ObserveInvalidQuery() {
	r.invalid++
}

func TestServiceQuery(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	dataset := &staticDataset{leads: testLeads()}
	recorder := &recorderSpy{}
	svc := lead.NewService(dataset).WithRecorder(recorder)

	q := svc.DefaultQuery(ctx)
	q.Filter.Qualification = value.QualificationQualified

	result, err := svc.Query(ctx, q)
	rq.NoError(err)
	rq.Len(result.Leads, 2)
	rq.Equal(89, result.Leads[0].Score)
	rq.Equal(72, result.Leads[1].Score)
	rq.Equal(2, result.Summary.Total)

	again, err := svc.Query(ctx, q)
	rq.NoError(err)
	rq.Equal(result, again)
	rq.Equal([]bool{false, true}, recorder.queries)

	full, err := svc.Query(ctx, svc.DefaultQuery(ctx))
	rq.NoError(err)
	rq.InDelta(0.5, full.Summary.QualificationRate, 1e-9)
}

func TestServiceQueryInvalid(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	recorder := &recorderSpy{}
	svc := lead.NewService(&staticDataset{leads: testLeads()}).WithRecorder(recorder)

	testCases := []struct {
		name   string
		modify func(q *lead.Query)
	}{
		{
			name:   "Unknown qualification",
			modify: func(q *lead.Query) { q.Filter.Qualification = "qualified" },
		},
		{
			name:   "Unknown sort field",
			modify: func(q *lead.Query) { q.SortField = "Email" },
		},
		{
			name:   "Unknown sort order",
			modify: func(q *lead.Query) { q.SortOrder = "Random" },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			q := svc.DefaultQuery(ctx)
			tc.modify(&q)

			_, err := svc.Query(ctx, q)
			rq.Error(err)
			rq.True(failure.IsInvalidArgumentError(err))
		})
	}

	rq.Equal(len(testCases), recorder.invalid)
	rq.Empty(recorder.queries)
}

func TestServiceOptions(t *testing.T) {
	rq := require.New(t)

	svc := lead.NewService(&staticDataset{leads: testLeads()})
	options := svc.Options(context.Background())

	rq.Equal([]value.Location{value.LocationSydney, value.LocationMelbourne, value.LocationPerth}, options.Locations)
	rq.Equal([]value.PropertyType{value.PropertyTypeHouse}, options.PropertyTypes)
	rq.Equal(200000, options.BudgetMinLow)
	rq.Equal(900000, options.BudgetMinHigh)
}

func TestServiceQuerySearchTextIsNotCached(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	recorder := &recorderSpy{}
	svc := lead.NewService(&staticDataset{leads: testLeads()}).WithRecorder(recorder)

	q := svc.DefaultQuery(ctx)
	q.Filter.Query = "client2"

	for range 3 {
		result, err := svc.Query(ctx, q)
		rq.NoError(err)
		rq.Len(result.Leads, 1)
	}

	rq.Equal([]bool{false, false, false}, recorder.queries)
}

func ptr[T any](v T) *T {
	return &v
}

func TestServiceParseQuery(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := lead.NewService(&staticDataset{leads: testLeads()})

	q, err := svc.ParseQuery(ctx, lead.QueryParams{})
	rq.NoError(err)
	rq.Equal(svc.DefaultQuery(ctx), q)

	q, err = svc.ParseQuery(ctx, lead.QueryParams{
		Query:         "Lead",
		Qualification: ptr("Unqualified"),
		Locations:     ptr([]string{"Perth"}),
		Timelines:     ptr([]string{}),
		BudgetMinLow:  ptr(100),
		BudgetMinHigh: ptr(500),
		SortBy:        ptr("Name"),
		SortOrder:     ptr("Ascending"),
	})
	rq.NoError(err)
	rq.Equal("Lead", q.Filter.Query)
	rq.Equal(value.QualificationUnqualified, q.Filter.Qualification)
	rq.Equal([]value.Location{value.LocationPerth}, q.Filter.Locations)
	rq.NotNil(q.Filter.Timelines)
	rq.Empty(q.Filter.Timelines)
	rq.Equal(value.BudgetRange{Low: 100, High: 500}, q.Filter.BudgetRange)
	rq.Equal(value.SortByName, q.SortField)
	rq.Equal(value.SortAscending, q.SortOrder)
}

func TestServiceParseQueryInvalid(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name   string
		params lead.QueryParams
	}{
		{name: "Unknown qualification", params: lead.QueryParams{Qualification: ptr("Maybe")}},
		{name: "Unknown location", params: lead.QueryParams{Locations: ptr([]string{"Hobart"})}},
		{name: "Unknown timeline", params: lead.QueryParams{Timelines: ptr([]string{"soon"})}},
		{name: "Unknown sort field", params: lead.QueryParams{SortBy: ptr("Email")}},
		{name: "Unknown sort order", params: lead.QueryParams{SortOrder: ptr("Random")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			recorder := &recorderSpy{}
			svc := lead.NewService(&staticDataset{leads: testLeads()}).WithRecorder(recorder)

			_, err := svc.ParseQuery(ctx, tc.params)
			rq.Error(err)
			rq.True(failure.IsInvalidArgumentError(err))
			rq.Equal(1, recorder.invalid)
		})
	}
}
