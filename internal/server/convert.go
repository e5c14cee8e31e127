package server

import (
	"math"

	"lead_qualifier/internal/domain/entity"
	"lead_qualifier/internal/domain/service/lead"
	"lead_qualifier/internal/domain/value"
	"lead_qualifier/pkg/lox"
	"lead_qualifier/pkg/rest"
)

func newRESTLead(l entity.Lead) rest.Lead {
	return rest.Lead{
		ID:           l.ID,
		Name:         l.Name,
		Email:        l.Email,
		BudgetMin:    l.BudgetMin,
		BudgetMax:    l.BudgetMax,
		Location:     l.Location.String(),
		Timeline:     l.Timeline.String(),
		PropertyType: l.PropertyType.String(),
		Score:        l.Score,
		Qualified:    value.QualifiedLabel(l.Qualified),
		Urgency:      l.Urgency.String(),
		Date:         l.Date(),
	}
}

func newRESTLeads(leads []entity.Lead) []rest.Lead {
	return lox.Map(leads, newRESTLead)
}

func newRESTOptions(options entity.Options) rest.LeadOptions {
	return rest.LeadOptions{
		Locations:     lox.Stringify(options.Locations),
		Timelines:     lox.Stringify(options.Timelines),
		PropertyTypes: lox.Stringify(options.PropertyTypes),
		BudgetMin: rest.IntRange{
			Low:  options.BudgetMinLow,
			High: options.BudgetMinHigh,
		},
	}
}

func newRESTSummary(summary lead.Summary) rest.LeadSummary {
	return rest.LeadSummary{
		Total:              summary.Total,
		TotalDelta:         summary.TotalDelta,
		Qualified:          summary.Qualified,
		QualificationRate:  summary.QualificationRate,
		MeanScore:          nullable(summary.MeanScore),
		MeanScoreDelta:     nullable(summary.MeanScoreDelta),
		MeanBudgetMin:      nullable(summary.MeanBudgetMin),
		MeanBudgetMinDelta: nullable(summary.MeanBudgetMinDelta),
		ByQualification:    lox.Map(summary.ByQualification, newRESTCategoryCount),
		ByLocation:         lox.Map(summary.ByLocation, newRESTCategoryCount),
		ByTimeline:         lox.Map(summary.ByTimeline, newRESTCategoryCount),
		ByDate:             lox.Map(summary.ByDate, newRESTDateCount),
		ScoreHistogram:     lox.Map(summary.ScoreHistogram, newRESTHistogramBin),
		BudgetHistogram:    lox.Map(summary.BudgetHistogram, newRESTHistogramBin),
	}
}

func newRESTCategoryCount(c lead.CategoryCount) rest.CategoryCount {
	return rest.CategoryCount{Category: c.Category, Count: c.Count}
}

func newRESTDateCount(c lead.DateCount) rest.DateCount {
	return rest.DateCount{Date: c.Date.Format(entity.DateLayout), Count: c.Count}
}

func newRESTHistogramBin(b lead.Bin) rest.HistogramBin {
	return rest.HistogramBin{Low: b.Low, High: b.High, Count: b.Count}
}

// JSON has no NaN.
func nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

func newQueryParams(request rest.LeadQuery) lead.QueryParams {
	return lead.QueryParams{
		Query:         request.Query,
		Qualification: request.Qualification,
		Locations:     request.Locations,
		Timelines:     request.Timelines,
		BudgetMinLow:  request.BudgetMinLow,
		BudgetMinHigh: request.BudgetMinHigh,
		SortBy:        request.SortBy,
		SortOrder:     request.SortOrder,
	}
}
