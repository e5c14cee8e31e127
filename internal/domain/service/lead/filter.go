package lead

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"lead_qualifier/internal/domain/entity"
	"lead_qualifier/internal/domain/value"
)

// Filter is a conjunction of predicates over immutable lead fields.
// Empty Locations or Timelines match nothing.
type Filter struct {
	Query         string
	Qualification value.Qualification
	Locations     []value.Location
	Timelines     []value.Timeline
	BudgetRange   value.BudgetRange
}

// NewFilter returns the all-inclusive filter for the dataset: every present
// location and timeline and the full BudgetMin span.
func NewFilter(leads []entity.Lead) Filter {
	options := NewOptions(leads)

	return Filter{
		Qualification: value.QualificationAll,
		Locations:     options.Locations,
		Timelines:     options.Timelines,
		BudgetRange: value.BudgetRange{
			Low:  options.BudgetMinLow,
			High: options.BudgetMinHigh,
		},
	}
}

func (f Filter) Validate() error {
	if _, err := value.ParseQualification(f.Qualification.String()); err != nil {
		return fmt.Errorf("value.ParseQualification: %w", err)
	}

	for _, l := range f.Locations {
		if _, err := value.ParseLocation(l.String()); err != nil {
			return fmt.Errorf("value.ParseLocation: %w", err)
		}
	}

	for _, t := range f.Timelines {
		if _, err := value.ParseTimeline(t.String()); err != nil {
			return fmt.Errorf("value.ParseTimeline: %w", err)
		}
	}

	if _, err := value.NewBudgetRange(f.BudgetRange.Low, f.BudgetRange.High); err != nil {
		return fmt.Errorf("value.NewBudgetRange: %w", err)
	}

	return nil
}

func (f Filter) Match(lead entity.Lead) bool {
	return f.matchQuery(lead) &&
		f.Qualification.Match(lead.Qualified) &&
		lo.Contains(f.Locations, lead.Location) &&
		lo.Contains(f.Timelines, lead.Timeline) &&
		f.BudgetRange.Contains(lead.BudgetMin)
}

func (f Filter) matchQuery(lead entity.Lead) bool {
	if f.Query == "" {
		return true
	}

	query := strings.ToLower(f.Query)

	return strings.Contains(strings.ToLower(lead.Name), query) ||
		strings.Contains(strings.ToLower(lead.Email), query)
}

// Key identifies filters that select the same leads regardless of set order.
func (f Filter) Key() string {
	locations := lo.Uniq(f.Locations)
	slices.SortFunc(locations, func(a, b value.Location) int { return a.Rank() - b.Rank() })

	timelines := lo.Uniq(f.Timelines)
	slices.SortFunc(timelines, func(a, b value.Timeline) int { return a.Rank() - b.Rank() })

	return fmt.Sprintf("q=%q|qual=%s|loc=%v|tl=%v|budget=%d-%d",
		strings.ToLower(f.Query),
		f.Qualification,
		locations,
		timelines,
		f.BudgetRange.Low,
		f.BudgetRange.High,
	)
}

// Apply keeps leads matching the filter in their original order.
func Apply(leads []entity.Lead, f Filter) []entity.Lead {
	return lo.Filter(leads, func(lead entity.Lead, _ int) bool {
		return f.Match(lead)
	})
}
