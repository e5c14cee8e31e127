package lead_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lead_qualifier/internal/domain/service/lead"
	"lead_qualifier/internal/domain/value"
)

func TestSummarize(t *testing.T) {
	rq := require.New(t)

	full := testLeads()

	f := lead.NewFilter(full)
	f.Qualification = value.QualificationQualified

	filtered := lead.Apply(full, f)
	summary := lead.Summarize(full, filtered)

	rq.Equal(2, summary.Total)
	rq.Equal(-2, summary.TotalDelta)
	rq.Equal(2, summary.Qualified)
	rq.InDelta(1.0, summary.QualificationRate, 1e-9)
	rq.InDelta(80.5, summary.MeanScore, 1e-9)
	rq.InDelta(80.5-64.0, summary.MeanScoreDelta, 1e-9)
	rq.InDelta(775000.0, summary.MeanBudgetMin, 1e-9)
	rq.InDelta(775000.0-512500.0, summary.MeanBudgetMinDelta, 1e-9)

	rq.Equal([]lead.CategoryCount{{Category: "Yes", Count: 2}}, summary.ByQualification)
	rq.Equal([]lead.CategoryCount{{Category: "Sydney", Count: 2}}, summary.ByLocation)
	rq.Equal([]lead.CategoryCount{
		{Category: "1-3 months", Count: 1},
		{Category: "12+ months", Count: 1},
	}, summary.ByTimeline)
	rq.Equal([]lead.DateCount{
		{Date: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), Count: 1},
		{Date: time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC), Count: 1},
	}, summary.ByDate)
}

func TestSummarizeFullSet(t *testing.T) {
	rq := require.New(t)

	full := testLeads()
	summary := lead.Summarize(full, full)

	rq.Equal(4, summary.Total)
	rq.Zero(summary.TotalDelta)
	rq.InDelta(0.5, summary.QualificationRate, 1e-9)
	rq.InDelta(0.0, summary.MeanScoreDelta, 1e-9)
	rq.Equal([]lead.CategoryCount{
		{Category: "Yes", Count: 2},
		{Category: "No", Count: 2},
	}, summary.ByQualification)
	rq.Equal([]lead.CategoryCount{
		{Category: "Sydney", Count: 2},
		{Category: "Melbourne", Count: 1},
		{Category: "Perth", Count: 1},
	}, summary.ByLocation)
	rq.Equal([]lead.CategoryCount{
		{Category: "1-3 months", Count: 1},
		{Category: "3-6 months", Count: 1},
		{Category: "6-12 months", Count: 1},
		{Category: "12+ months", Count: 1},
	}, summary.ByTimeline)
	rq.Len(summary.ScoreHistogram, lead.HistogramBins)
}

func TestSummarizeEmptySet(t *testing.T) {
	rq := require.New(t)

	full := testLeads()

	f := lead.NewFilter(full)
	f.Locations = nil

	summary := lead.Summarize(full, lead.Apply(full, f))

	rq.Zero(summary.Total)
	rq.Zero(summary.Qualified)
	rq.Zero(summary.QualificationRate)
	rq.True(math.IsNaN(summary.MeanScore))
	rq.True(math.IsNaN(summary.MeanScoreDelta))
	rq.True(math.IsNaN(summary.MeanBudgetMin))
	rq.True(math.IsNaN(summary.MeanBudgetMinDelta))
	rq.Empty(summary.ByLocation)
	rq.Empty(summary.ByTimeline)
	rq.Empty(summary.ByDate)
	rq.Empty(summary.ScoreHistogram)
}

func TestQualificationRate(t *testing.T) {
	rq := require.New(t)

	rq.Zero(lead.QualificationRate(nil))
	rq.InDelta(0.5, lead.QualificationRate(testLeads()), 1e-9)
}

func TestHistogram(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		values []int
		bins   int
		counts []int
	}{
		{
			name:   "Empty",
			values: nil,
			bins:   4,
			counts: nil,
		},
		{
			name:   "Single value",
			values: []int{5, 5, 5},
			bins:   4,
			counts: []int{3},
		},
		{
			name:   "Max lands in last bin",
			values: []int{0, 1, 2, 3, 4, 8},
			bins:   4,
			counts: []int{2, 2, 1, 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			bins := lead.Histogram(tc.values, tc.bins)

			var counts []int
			for _, b := range bins {
				counts = append(counts, b.Count)
			}

			rq.Equal(tc.counts, counts)
		})
	}
}
