package entity

import "lead_qualifier/internal/domain/value"

// Options lists the filter choices a dataset offers.
type Options struct {
	Locations     []value.Location
	Timelines     []value.Timeline
	PropertyTypes []value.PropertyType
	BudgetMinLow  int
	BudgetMinHigh int
}
