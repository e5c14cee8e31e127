package lead

import (
	"github.com/samber/lo"

	"lead_qualifier/internal/domain/entity"
	"lead_qualifier/internal/domain/value"
)

// NewOptions collects the values present in leads, in canonical order.
func NewOptions(leads []entity.Lead) entity.Options {
	var options entity.Options

	locations := lo.SliceToMap(leads, func(l entity.Lead) (value.Location, struct{}) { return l.Location, struct{}{} })
	options.Locations = lo.Filter(value.Locations(), func(l value.Location, _ int) bool {
		return lo.HasKey(locations, l)
	})

	timelines := lo.SliceToMap(leads, func(l entity.Lead) (value.Timeline, struct{}) { return l.Timeline, struct{}{} })
	options.Timelines = lo.Filter(value.Timelines(), func(t value.Timeline, _ int) bool {
		return lo.HasKey(timelines, t)
	})

	types := lo.SliceToMap(leads, func(l entity.Lead) (value.PropertyType, struct{}) { return l.PropertyType, struct{}{} })
	options.PropertyTypes = lo.Filter(value.PropertyTypes(), func(p value.PropertyType, _ int) bool {
		return lo.HasKey(types, p)
	})

	if len(leads) > 0 {
		options.BudgetMinLow = lo.MinBy(leads, func(a, b entity.Lead) bool { return a.BudgetMin < b.BudgetMin }).BudgetMin
		options.BudgetMinHigh = lo.MaxBy(leads, func(a, b entity.Lead) bool { return a.BudgetMin > b.BudgetMin }).BudgetMin
	}

	return options
}
