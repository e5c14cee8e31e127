package lead

import (
	"math"
	"slices"
	"time"

	"github.com/samber/lo"

	"lead_qualifier/internal/domain/entity"
	"lead_qualifier/internal/domain/value"
)

// HistogramBins is the bin count of the score and budget histograms.
const HistogramBins = 20

type CategoryCount struct {
	Category string
	Count    int
}

type DateCount struct {
	Date  time.Time
	Count int
}

// Summary holds the metric card values and chart series of a filtered set.
// Means are NaN when the set they are computed over is empty.
type Summary struct {
	Total      int
	TotalDelta int

	Qualified         int
	QualificationRate float64

	MeanScore          float64
	MeanScoreDelta     float64
	MeanBudgetMin      float64
	MeanBudgetMinDelta float64

	ByQualification []CategoryCount
	ByLocation      []CategoryCount
	ByTimeline      []CategoryCount
	ByDate          []DateCount

	ScoreHistogram  []Bin
	BudgetHistogram []Bin
}

// Summarize computes statistics of filtered; deltas compare against full.
func Summarize(full, filtered []entity.Lead) Summary {
	qualified := lo.CountBy(filtered, func(l entity.Lead) bool { return l.Qualified })

	meanScore := MeanScore(filtered)
	meanBudget := MeanBudgetMin(filtered)

	return Summary{
		Total:              len(filtered),
		TotalDelta:         len(filtered) - len(full),
		Qualified:          qualified,
		QualificationRate:  QualificationRate(filtered),
		MeanScore:          meanScore,
		MeanScoreDelta:     meanScore - MeanScore(full),
		MeanBudgetMin:      meanBudget,
		MeanBudgetMinDelta: meanBudget - MeanBudgetMin(full),
		ByQualification:    countByQualification(filtered),
		ByLocation:         countByLocation(filtered),
		ByTimeline:         countByTimeline(filtered),
		ByDate:             countByDate(filtered),
		ScoreHistogram: Histogram(lo.Map(filtered, func(l entity.Lead, _ int) int {
			return l.Score
		}), HistogramBins),
		BudgetHistogram: Histogram(lo.Map(filtered, func(l entity.Lead, _ int) int {
			return l.BudgetMin
		}), HistogramBins),
	}
}

// QualificationRate is qualified/total, 0 for an empty set.
func QualificationRate(leads []entity.Lead) float64 {
	if len(leads) == 0 {
		return 0
	}

	qualified := lo.CountBy(leads, func(l entity.Lead) bool { return l.Qualified })

	return float64(qualified) / float64(len(leads))
}

func MeanScore(leads []entity.Lead) float64 {
	return mean(leads, func(l entity.Lead) int { return l.Score })
}

func MeanBudgetMin(leads []entity.Lead) float64 {
	return mean(leads, func(l entity.Lead) int { return l.BudgetMin })
}

func mean(leads []entity.Lead, field func(entity.Lead) int) float64 {
	if len(leads) == 0 {
		return math.NaN()
	}

	return float64(lo.SumBy(leads, field)) / float64(len(leads))
}

func countByQualification(leads []entity.Lead) []CategoryCount {
	counts := lo.CountValuesBy(leads, func(l entity.Lead) bool { return l.Qualified })

	result := make([]CategoryCount, 0, len(counts))

	for _, qualified := range []bool{true, false} {
		if n := counts[qualified]; n > 0 {
			result = append(result, CategoryCount{Category: value.QualifiedLabel(qualified), Count: n})
		}
	}

	return result
}

func countByLocation(leads []entity.Lead) []CategoryCount {
	counts := lo.CountValuesBy(leads, func(l entity.Lead) value.Location { return l.Location })

	return inCanonicalOrder(value.Locations(), counts)
}

func countByTimeline(leads []entity.Lead) []CategoryCount {
	counts := lo.CountValuesBy(leads, func(l entity.Lead) value.Timeline { return l.Timeline })

	return inCanonicalOrder(value.Timelines(), counts)
}

func inCanonicalOrder[T ~string](order []T, counts map[T]int) []CategoryCount {
	result := make([]CategoryCount, 0, len(counts))

	for _, category := range order {
		if n := counts[category]; n > 0 {
			result = append(result, CategoryCount{Category: string(category), Count: n})
		}
	}

	return result
}

func countByDate(leads []entity.Lead) []DateCount {
	counts := lo.CountValuesBy(leads, func(l entity.Lead) string { return l.Date() })

	result := lo.MapToSlice(counts, func(date string, n int) DateCount {
		return DateCount{Date: lo.Must(time.Parse(entity.DateLayout, date)), Count: n}
	})

	slices.SortFunc(result, func(a, b DateCount) int { return a.Date.Compare(b.Date) })

	return result
}
