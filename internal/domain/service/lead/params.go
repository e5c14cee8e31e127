package lead

import (
	"fmt"

	"lead_qualifier/internal/domain/value"
	"lead_qualifier/pkg/lox"
)

// QueryParams are unparsed query values as they arrive from a client. Nil
// fields keep the value of the default query, an empty Locations or
// Timelines slice selects nothing.
type QueryParams struct {
	Query         string
	Qualification *string
	Locations     *[]string
	Timelines     *[]string
	BudgetMinLow  *int
	BudgetMinHigh *int
	SortBy        *string
	SortOrder     *string
}

func (p QueryParams) apply(query Query) (Query, error) {
	query.Filter.Query = p.Query

	if p.Qualification != nil {
		qualification, err := value.ParseQualification(*p.Qualification)
		if err != nil {
			return Query{}, fmt.Errorf("value.ParseQualification: %w", err)
		}

		query.Filter.Qualification = qualification
	}

	if p.Locations != nil {
		locations, err := lox.MapErr(*p.Locations, value.ParseLocation)
		if err != nil {
			return Query{}, fmt.Errorf("value.ParseLocation: %w", err)
		}

		query.Filter.Locations = locations
	}

	if p.Timelines != nil {
		timelines, err := lox.MapErr(*p.Timelines, value.ParseTimeline)
		if err != nil {
			return Query{}, fmt.Errorf("value.ParseTimeline: %w", err)
		}

		query.Filter.Timelines = timelines
	}

	if p.BudgetMinLow != nil {
		query.Filter.BudgetRange.Low = *p.BudgetMinLow
	}

	if p.BudgetMinHigh != nil {
		query.Filter.BudgetRange.High = *p.BudgetMinHigh
	}

	if p.SortBy != nil {
		field, err := value.ParseSortField(*p.SortBy)
		if err != nil {
			return Query{}, fmt.Errorf("value.ParseSortField: %w", err)
		}

		query.SortField = field
	}

	if p.SortOrder != nil {
		order, err := value.ParseSortOrder(*p.SortOrder)
		if err != nil {
			return Query{}, fmt.Errorf("value.ParseSortOrder: %w", err)
		}

		query.SortOrder = order
	}

	return query, nil
}
